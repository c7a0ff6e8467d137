// Package model defines the domain types used across the application.
package model

import "time"

// Category classifies a notification by the trigger that produced it.
type Category string

// Supported notification categories.
const (
	CategoryWelcome     Category = "welcome"
	CategoryWeather     Category = "weather"
	CategoryGameDay     Category = "gameday"
	CategorySafety      Category = "safety"
	CategoryTransport   Category = "transport"
	CategoryReminder    Category = "reminder"
	CategoryStadium     Category = "stadium"
	CategoryCurrency    Category = "currency"
	CategoryMatchResult Category = "matchResult"
	CategoryGeneral     Category = "general"
)

// Priority controls whether a notification is also pushed to the platform
// notification facility. Only high-priority notifications are pushed.
type Priority string

// Supported priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification is a single alert delivered to the in-app list.
// Only the Read flag is ever mutated after creation.
type Notification struct {
	ID           string            `json:"id"`
	Category     Category          `json:"category"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	CreatedAt    time.Time         `json:"createdAt"`
	Read         bool              `json:"read"`
	ActionTarget string            `json:"actionTarget,omitempty"`
	Payload      map[string]string `json:"payload,omitempty"`
}

// ReminderKind identifies one of the fixed pre-match reminder offsets.
type ReminderKind string

// Supported reminder kinds, in firing order.
const (
	ReminderPackBag    ReminderKind = "packBag"    // 24h before kickoff
	ReminderLeaveHotel ReminderKind = "leaveHotel" // 4h before kickoff
	ReminderGatesOpen  ReminderKind = "gatesOpen"  // 2h before kickoff
)

// Reminder is a scheduled absolute-time notification derived from a match
// kickoff time.
type Reminder struct {
	ID        string       `json:"id"`
	MatchID   int64        `json:"matchId"`
	Kind      ReminderKind `json:"kind"`
	TriggerAt time.Time    `json:"triggerAt"`
	Message   string       `json:"message"`
	Fired     bool         `json:"fired"`
	FiredAt   *time.Time   `json:"firedAt,omitempty"`
}

// WeatherObservation is the current-conditions shape returned by the weather
// data source.
type WeatherObservation struct {
	City         string  `json:"city"`
	TemperatureF float64 `json:"temperatureF"`
	FeelsLikeF   float64 `json:"feelsLikeF"`
	Humidity     float64 `json:"humidity"`
	Description  string  `json:"description"`
}

// MatchStatus is the lifecycle state reported by the match data source.
type MatchStatus string

// Match statuses. Only finished matches are actionable for result alerts.
const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchHalftime  MatchStatus = "halftime"
	MatchFinished  MatchStatus = "finished"
)

// MatchResult is a single match record from the results endpoint.
type MatchResult struct {
	MatchID   int64       `json:"matchId"`
	HomeTeam  string      `json:"homeTeam"`
	AwayTeam  string      `json:"awayTeam"`
	HomeScore int         `json:"homeScore"`
	AwayScore int         `json:"awayScore"`
	Status    MatchStatus `json:"status"`
	Venue     string      `json:"venue"`
}

// UpcomingMatch is a single record from the upcoming-matches endpoint.
// HoursUntilKickoff is reported at whole-hour granularity by the source.
type UpcomingMatch struct {
	ID                int64  `json:"id"`
	HomeTeam          string `json:"homeTeam"`
	AwayTeam          string `json:"awayTeam"`
	Venue             string `json:"venue"`
	City              string `json:"city"`
	DateTime          string `json:"dateTime"`
	HoursUntilKickoff int    `json:"hoursUntilKickoff"`
}
