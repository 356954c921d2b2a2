package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

// TournamentService manages tournaments.
type TournamentService interface {
	CreateTournament(ctx context.Context, t *models.Tournament) error
	GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, t *models.Tournament) error
	DeleteTournament(ctx context.Context, id uuid.UUID) error
}

var _ TournamentService = (*tournamentService)(nil)

type tournamentService struct {
	tournaments interfaces.TournamentRepository
	logger      *zap.Logger
}

func NewTournamentService(tournaments interfaces.TournamentRepository, logger *zap.Logger) TournamentService {
	return &tournamentService{tournaments: tournaments, logger: logger.Named("TournamentService")}
}

var tournamentStatuses = map[string]bool{
	models.TournamentStatusUpcoming: true,
	models.TournamentStatusActive:   true,
	models.TournamentStatusFinished: true,
}

func (s *tournamentService) CreateTournament(ctx context.Context, t *models.Tournament) error {
	if t.Status == "" {
		t.Status = models.TournamentStatusUpcoming
	}
	if err := validateTournament(t); err != nil {
		return err
	}
	if err := s.tournaments.CreateTournament(ctx, t); err != nil {
		s.logger.Error("Failed to create tournament", zap.Error(err), zap.String("name", t.Name))
		return err
	}
	s.logger.Info("Tournament created", zap.String("tournamentID", t.ID.String()), zap.String("name", t.Name))
	return nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	return s.tournaments.GetTournamentByID(ctx, id)
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	return s.tournaments.ListTournaments(ctx)
}

func (s *tournamentService) UpdateTournament(ctx context.Context, t *models.Tournament) error {
	if err := validateTournament(t); err != nil {
		return err
	}
	if err := s.tournaments.UpdateTournament(ctx, t); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to update tournament", zap.Error(err), zap.String("tournamentID", t.ID.String()))
		}
		return err
	}
	return nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id uuid.UUID) error {
	if err := s.tournaments.DeleteTournament(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to delete tournament", zap.Error(err), zap.String("tournamentID", id.String()))
		}
		return err
	}
	s.logger.Info("Tournament deleted", zap.String("tournamentID", id.String()))
	return nil
}

func validateTournament(t *models.Tournament) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: tournament name is required", models.ErrInvalidInput)
	}
	if !tournamentStatuses[t.Status] {
		return fmt.Errorf("%w: unknown tournament status %q", models.ErrInvalidInput, t.Status)
	}
	if !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: end date before start date", models.ErrInvalidInput)
	}
	return nil
}
