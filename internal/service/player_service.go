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

// PlayerService manages player records and their team assignment.
type PlayerService interface {
	CreatePlayer(ctx context.Context, player *models.Player) error
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayers(ctx context.Context, teamID *uuid.UUID) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, player *models.Player) error
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

var _ PlayerService = (*playerService)(nil)

type playerService struct {
	players interfaces.PlayerRepository
	teams   interfaces.TeamRepository
	logger  *zap.Logger
}

func NewPlayerService(players interfaces.PlayerRepository, teams interfaces.TeamRepository, logger *zap.Logger) PlayerService {
	return &playerService{players: players, teams: teams, logger: logger.Named("PlayerService")}
}

func (s *playerService) CreatePlayer(ctx context.Context, player *models.Player) error {
	if err := s.validatePlayer(ctx, player); err != nil {
		return err
	}
	if err := s.players.CreatePlayer(ctx, player); err != nil {
		s.logger.Error("Failed to create player", zap.Error(err))
		return err
	}
	s.logger.Info("Player created",
		zap.String("playerID", player.ID.String()),
		zap.String("lastName", player.LastName))
	return nil
}

func (s *playerService) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return s.players.GetPlayerByID(ctx, id)
}

func (s *playerService) ListPlayers(ctx context.Context, teamID *uuid.UUID) ([]models.Player, error) {
	return s.players.ListPlayers(ctx, teamID)
}

func (s *playerService) UpdatePlayer(ctx context.Context, player *models.Player) error {
	if err := s.validatePlayer(ctx, player); err != nil {
		return err
	}
	if err := s.players.UpdatePlayer(ctx, player); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to update player", zap.Error(err), zap.String("playerID", player.ID.String()))
		}
		return err
	}
	return nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if err := s.players.DeletePlayer(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to delete player", zap.Error(err), zap.String("playerID", id.String()))
		}
		return err
	}
	s.logger.Info("Player deleted", zap.String("playerID", id.String()))
	return nil
}

// validatePlayer checks field ranges and, when a team is assigned, that the
// team actually exists so a dangling FK surfaces as a validation error
// instead of a 500 from postgres.
func (s *playerService) validatePlayer(ctx context.Context, player *models.Player) error {
	if strings.TrimSpace(player.FirstName) == "" || strings.TrimSpace(player.LastName) == "" {
		return fmt.Errorf("%w: player name is required", models.ErrInvalidInput)
	}
	if player.JerseyNumber < 0 || player.JerseyNumber > 99 {
		return fmt.Errorf("%w: jersey number must be between 0 and 99", models.ErrInvalidInput)
	}
	if player.TeamID != nil {
		if _, err := s.teams.GetTeamByID(ctx, *player.TeamID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return fmt.Errorf("%w: team %s does not exist", models.ErrInvalidInput, player.TeamID)
			}
			return err
		}
	}
	return nil
}
