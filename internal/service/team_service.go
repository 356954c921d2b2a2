package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

// TeamService manages club teams.
type TeamService interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team *models.Team) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

var _ TeamService = (*teamService)(nil)

type teamService struct {
	teams  interfaces.TeamRepository
	logger *zap.Logger
}

func NewTeamService(teams interfaces.TeamRepository, logger *zap.Logger) TeamService {
	return &teamService{teams: teams, logger: logger.Named("TeamService")}
}

func (s *teamService) CreateTeam(ctx context.Context, team *models.Team) error {
	if err := validateTeam(team); err != nil {
		return err
	}
	if err := s.teams.CreateTeam(ctx, team); err != nil {
		s.logger.Error("Failed to create team", zap.Error(err), zap.String("name", team.Name))
		return err
	}
	s.logger.Info("Team created", zap.String("teamID", team.ID.String()), zap.String("name", team.Name))
	return nil
}

func (s *teamService) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return s.teams.GetTeamByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.teams.ListTeams(ctx)
}

func (s *teamService) UpdateTeam(ctx context.Context, team *models.Team) error {
	if err := validateTeam(team); err != nil {
		return err
	}
	if err := s.teams.UpdateTeam(ctx, team); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to update team", zap.Error(err), zap.String("teamID", team.ID.String()))
		}
		return err
	}
	return nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to delete team", zap.Error(err), zap.String("teamID", id.String()))
		}
		return err
	}
	s.logger.Info("Team deleted", zap.String("teamID", id.String()))
	return nil
}

func validateTeam(team *models.Team) error {
	if strings.TrimSpace(team.Name) == "" {
		return fmt.Errorf("%w: team name is required", models.ErrInvalidInput)
	}
	if team.FoundedYear != 0 && (team.FoundedYear < 1800 || team.FoundedYear > time.Now().Year()) {
		return fmt.Errorf("%w: founded year out of range", models.ErrInvalidInput)
	}
	return nil
}
