package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

// MatchService manages fixtures. Scheduling a match and finishing one emit
// notifications through the push pipeline.
type MatchService interface {
	CreateMatch(ctx context.Context, m *models.Match) error
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, tournamentID *uuid.UUID) ([]models.Match, error)
	UpdateMatch(ctx context.Context, m *models.Match) error
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

var _ MatchService = (*matchService)(nil)

type matchService struct {
	matches       interfaces.MatchRepository
	teams         interfaces.TeamRepository
	notifications NotificationService
	logger        *zap.Logger
}

func NewMatchService(
	matches interfaces.MatchRepository,
	teams interfaces.TeamRepository,
	notifications NotificationService,
	logger *zap.Logger,
) MatchService {
	return &matchService{
		matches:       matches,
		teams:         teams,
		notifications: notifications,
		logger:        logger.Named("MatchService"),
	}
}

var matchStatuses = map[string]bool{
	models.MatchStatusScheduled: true,
	models.MatchStatusLive:      true,
	models.MatchStatusFinished:  true,
	models.MatchStatusCancelled: true,
}

func (s *matchService) CreateMatch(ctx context.Context, m *models.Match) error {
	if m.Status == "" {
		m.Status = models.MatchStatusScheduled
	}
	if err := s.validateMatch(ctx, m); err != nil {
		return err
	}
	if err := s.matches.CreateMatch(ctx, m); err != nil {
		s.logger.Error("Failed to create match", zap.Error(err))
		return err
	}
	s.logger.Info("Match created", zap.String("matchID", m.ID.String()))

	if err := s.notifications.Broadcast(ctx,
		models.NotificationMatchScheduled,
		"Match scheduled",
		s.matchLine(ctx, m),
	); err != nil {
		s.logger.Warn("Failed to announce scheduled match", zap.Error(err), zap.String("matchID", m.ID.String()))
	}
	return nil
}

func (s *matchService) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return s.matches.GetMatchByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context, tournamentID *uuid.UUID) ([]models.Match, error) {
	return s.matches.ListMatches(ctx, tournamentID)
}

// UpdateMatch persists the new state and, when the match transitions into
// FINISHED, broadcasts the final score.
func (s *matchService) UpdateMatch(ctx context.Context, m *models.Match) error {
	if err := s.validateMatch(ctx, m); err != nil {
		return err
	}
	previous, err := s.matches.GetMatchByID(ctx, m.ID)
	if err != nil {
		return err
	}
	if err := s.matches.UpdateMatch(ctx, m); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to update match", zap.Error(err), zap.String("matchID", m.ID.String()))
		}
		return err
	}

	if m.Status == models.MatchStatusFinished && previous.Status != models.MatchStatusFinished {
		body := fmt.Sprintf("%s %d:%d", s.matchLine(ctx, m), m.HomeScore, m.AwayScore)
		if err := s.notifications.Broadcast(ctx, models.NotificationMatchResult, "Full time", body); err != nil {
			s.logger.Warn("Failed to announce match result", zap.Error(err), zap.String("matchID", m.ID.String()))
		}
	}
	return nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := s.matches.DeleteMatch(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to delete match", zap.Error(err), zap.String("matchID", id.String()))
		}
		return err
	}
	s.logger.Info("Match deleted", zap.String("matchID", id.String()))
	return nil
}

func (s *matchService) validateMatch(ctx context.Context, m *models.Match) error {
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("%w: a team cannot play itself", models.ErrInvalidInput)
	}
	if !matchStatuses[m.Status] {
		return fmt.Errorf("%w: unknown match status %q", models.ErrInvalidInput, m.Status)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("%w: scores cannot be negative", models.ErrInvalidInput)
	}
	for _, teamID := range []uuid.UUID{m.HomeTeamID, m.AwayTeamID} {
		if _, err := s.teams.GetTeamByID(ctx, teamID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return fmt.Errorf("%w: team %s does not exist", models.ErrInvalidInput, teamID)
			}
			return err
		}
	}
	return nil
}

// matchLine renders "Home vs Away" for notification bodies, falling back to
// team ids when a name lookup fails.
func (s *matchService) matchLine(ctx context.Context, m *models.Match) string {
	home, away := m.HomeTeamID.String(), m.AwayTeamID.String()
	if t, err := s.teams.GetTeamByID(ctx, m.HomeTeamID); err == nil {
		home = t.Name
	}
	if t, err := s.teams.GetTeamByID(ctx, m.AwayTeamID); err == nil {
		away = t.Name
	}
	return fmt.Sprintf("%s vs %s", home, away)
}
