package trigger

import (
	"context"
	"fmt"
	"log/slog"

	"matchtrip/internal/feeds"
	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/refdata"
	"matchtrip/internal/storage"
)

// matchResultMaxKeys bounds the fired-key ledger for match results, which
// would otherwise grow with every finished match of the tournament.
const matchResultMaxKeys = 100

// MatchResult fires one win/loss/draw alert per finished match involving a
// followed team.
type MatchResult struct {
	store   storage.Storage
	center  *notify.Center
	matches *feeds.MatchClient
	log     *slog.Logger
}

// NewMatchResult creates the match-result trigger.
func NewMatchResult(store storage.Storage, center *notify.Center, matches *feeds.MatchClient, log *slog.Logger) *MatchResult {
	return &MatchResult{store: store, center: center, matches: matches, log: log}
}

// Name implements Source.
func (m *MatchResult) Name() string { return "matchResult" }

// Evaluate fetches recent results and alerts on finished matches involving a
// followed team that have not been alerted before. Fetch failures are
// no-data, not errors.
func (m *MatchResult) Evaluate(ctx context.Context, _ string) error {
	followed, err := m.store.ListFollowedTeams(ctx)
	if err != nil {
		return fmt.Errorf("list followed teams: %w", err)
	}
	if len(followed) == 0 {
		return nil
	}

	followedSet := make(map[string]bool, len(followed))
	for _, code := range followed {
		followedSet[code] = true
	}

	results, err := m.matches.Results(ctx)
	if err != nil {
		m.log.Debug("match results fetch failed", "error", err)
		return nil
	}

	for _, result := range results {
		if result.Status != model.MatchFinished {
			continue
		}

		key := fmt.Sprintf("matchResult:%d", result.MatchID)
		fired, err := m.store.HasFired(ctx, key)
		if err != nil {
			return fmt.Errorf("check result ledger: %w", err)
		}
		if fired {
			continue
		}

		homeCode := refdata.TeamCode(result.HomeTeam)
		awayCode := refdata.TeamCode(result.AwayTeam)

		followedCode := ""
		switch {
		case followedSet[homeCode]:
			followedCode = homeCode
		case followedSet[awayCode]:
			followedCode = awayCode
		default:
			continue
		}

		if err := m.fire(ctx, result, followedCode); err != nil {
			return err
		}
		if err := m.store.MarkFired(ctx, "matchResult", key, matchResultMaxKeys); err != nil {
			return fmt.Errorf("mark result fired: %w", err)
		}
	}
	return nil
}

func (m *MatchResult) fire(ctx context.Context, result model.MatchResult, followedCode string) error {
	homeCode := refdata.TeamCode(result.HomeTeam)
	followedIsHome := homeCode == followedCode

	followedScore, opponentScore := result.HomeScore, result.AwayScore
	opponentName := result.AwayTeam
	if !followedIsHome {
		followedScore, opponentScore = result.AwayScore, result.HomeScore
		opponentName = result.HomeTeam
	}

	scoreline := fmt.Sprintf("%s %d - %d %s",
		result.HomeTeam, result.HomeScore, result.AwayScore, result.AwayTeam)

	var title, body string
	switch {
	case followedScore > opponentScore:
		title = fmt.Sprintf("Victory! %s Wins!", followedCode)
		body = scoreline + ". Your team advances!"
	case followedScore < opponentScore:
		title = fmt.Sprintf("%s Lost", followedCode)
		body = scoreline + ". Better luck next time."
	default:
		title = fmt.Sprintf("Draw: %s vs %s", followedCode, refdata.TeamCode(opponentName))
		body = scoreline + ". The match ended in a draw."
	}

	_, err := m.center.Add(ctx, notify.Draft{
		Category: model.CategoryMatchResult,
		Title:    title,
		Body:     body,
		Priority: model.PriorityHigh,
		Payload: map[string]string{
			"matchId": fmt.Sprintf("%d", result.MatchID),
			"team":    followedCode,
		},
	})
	return err
}
