// Package api exposes the local HTTP surface: notification reads, context
// updates (city, location), team follows, reminder management, and
// reference-data lookups.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"matchtrip/internal/api/respond"
	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/refdata"
	"matchtrip/internal/reminder"
	"matchtrip/internal/storage"
	"matchtrip/internal/trigger"
)

// Server bundles the handler dependencies.
type Server struct {
	center    *notify.Center
	manager   *trigger.Manager
	reminders *reminder.Scheduler
	store     storage.Storage
	log       *slog.Logger
}

// NewServer creates a Server.
func NewServer(center *notify.Center, manager *trigger.Manager, reminders *reminder.Scheduler, store storage.Storage, log *slog.Logger) *Server {
	return &Server{center: center, manager: manager, reminders: reminders, store: store, log: log}
}

// Options tune the HTTP middleware stack.
type Options struct {
	AllowedOrigins  []string
	RateLimit       int
	RateLimitWindow time.Duration
}

// Router builds the chi router with the full middleware stack and routes.
func (s *Server) Router(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	r.Use(c.Handler)

	if opts.RateLimit > 0 {
		r.Use(RateLimitMiddleware(opts.RateLimit, opts.RateLimitWindow))
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/notifications", s.handleListNotifications)
		r.Post("/notifications/{id}/read", s.handleMarkRead)
		r.Post("/notifications/read-all", s.handleMarkAllRead)
		r.Delete("/notifications", s.handleClearNotifications)

		r.Get("/status", s.handleStatus)

		r.Put("/context/city", s.handleSetCity)
		r.Put("/context/location", s.handleUpdateLocation)

		r.Get("/teams", s.handleListTeams)
		r.Post("/teams/{code}/follow", s.handleFollowTeam)
		r.Delete("/teams/{code}/follow", s.handleUnfollowTeam)

		r.Get("/reminders", s.handleListReminders)
		r.Post("/reminders", s.handleScheduleReminders)
		r.Delete("/reminders/{matchId}", s.handleCancelReminders)

		r.Get("/cities/{cityKey}/safety", s.handleCitySafety)
		r.Get("/cities/{cityKey}/currency", s.handleCityCurrency)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --------------------------------------------------------------------------
// Notifications
// --------------------------------------------------------------------------

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := s.center.List(r.Context())
	if err != nil {
		s.log.Error("list notifications", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to list notifications")
		return
	}
	if list == nil {
		list = []model.Notification{}
	}
	respond.WriteJSON(w, http.StatusOK, list)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.center.MarkRead(r.Context(), id); err != nil {
		s.log.Error("mark read", "id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to mark notification read")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := s.center.MarkAllRead(r.Context()); err != nil {
		s.log.Error("mark all read", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to mark notifications read")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := s.center.Clear(r.Context()); err != nil {
		s.log.Error("clear notifications", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to clear notifications")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------------------------------------------------------
// Status and context
// --------------------------------------------------------------------------

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.manager.Status(r.Context())
	if err != nil {
		s.log.Error("read status", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to read status")
		return
	}
	if status.FollowedTeams == nil {
		status.FollowedTeams = []string{}
	}
	respond.WriteJSON(w, http.StatusOK, status)
}

func (s *Server) handleSetCity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CityKey string `json:"cityKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Body must be JSON with a cityKey field")
		return
	}
	if req.CityKey != "" {
		if _, ok := refdata.CityByKey(req.CityKey); !ok {
			respond.WriteError(w, http.StatusBadRequest, "UNKNOWN_CITY", "Unknown city key")
			return
		}
	}
	s.manager.SetCurrentCity(r.Context(), req.CityKey)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Lat == nil || req.Lon == nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Body must be JSON with lat and lon fields")
		return
	}
	if *req.Lat < -90 || *req.Lat > 90 || *req.Lon < -180 || *req.Lon > 180 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_COORDINATES", "Coordinates out of range")
		return
	}
	s.manager.UpdateLocation(r.Context(), *req.Lat, *req.Lon)
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------------------------------------------------------
// Followed teams
// --------------------------------------------------------------------------

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.store.ListFollowedTeams(r.Context())
	if err != nil {
		s.log.Error("list teams", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to list teams")
		return
	}
	if teams == nil {
		teams = []string{}
	}
	respond.WriteJSON(w, http.StatusOK, teams)
}

func (s *Server) handleFollowTeam(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_CODE", "Team code is required")
		return
	}
	if err := s.store.FollowTeam(r.Context(), code); err != nil {
		s.log.Error("follow team", "code", code, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to follow team")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnfollowTeam(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := s.store.UnfollowTeam(r.Context(), code); err != nil {
		s.log.Error("unfollow team", "code", code, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to unfollow team")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------------------------------------------------------
// Reminders
// --------------------------------------------------------------------------

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	pending, err := s.reminders.Pending(r.Context())
	if err != nil {
		s.log.Error("list reminders", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to list reminders")
		return
	}
	if pending == nil {
		pending = []model.Reminder{}
	}
	respond.WriteJSON(w, http.StatusOK, pending)
}

func (s *Server) handleScheduleReminders(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MatchID  int64  `json:"matchId"`
		Kickoff  string `json:"kickoff"`
		HomeTeam string `json:"homeTeam"`
		AwayTeam string `json:"awayTeam"`
		Venue    string `json:"venue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MatchID == 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Body must be JSON with matchId and kickoff fields")
		return
	}
	kickoff, err := time.Parse(time.RFC3339, req.Kickoff)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_KICKOFF", "kickoff must be an RFC 3339 timestamp")
		return
	}

	scheduled, err := s.reminders.Schedule(r.Context(), req.MatchID, kickoff, req.HomeTeam, req.AwayTeam, req.Venue)
	if err != nil {
		s.log.Error("schedule reminders", "match_id", req.MatchID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to schedule reminders")
		return
	}
	if scheduled == nil {
		scheduled = []model.Reminder{}
	}
	respond.WriteJSON(w, http.StatusCreated, scheduled)
}

func (s *Server) handleCancelReminders(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.ParseInt(chi.URLParam(r, "matchId"), 10, 64)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "matchId must be an integer")
		return
	}
	if err := s.reminders.Cancel(r.Context(), matchID); err != nil {
		s.log.Error("cancel reminders", "match_id", matchID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to cancel reminders")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------------------------------------------------------
// Reference data
// --------------------------------------------------------------------------

func (s *Server) handleCitySafety(w http.ResponseWriter, r *http.Request) {
	cityKey := chi.URLParam(r, "cityKey")
	info, ok := refdata.SafetyForCity(cityKey)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_CITY", "No safety data for city")
		return
	}
	respond.WriteJSON(w, http.StatusOK, info)
}

func (s *Server) handleCityCurrency(w http.ResponseWriter, r *http.Request) {
	cityKey := chi.URLParam(r, "cityKey")
	cur, ok := refdata.CurrencyForCity(cityKey)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_CITY", "No currency data for city")
		return
	}
	respond.WriteJSON(w, http.StatusOK, cur)
}
