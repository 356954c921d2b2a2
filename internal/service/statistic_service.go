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

// StatisticService manages per-match player statistics.
type StatisticService interface {
	CreateStatistic(ctx context.Context, stat *models.PlayerStatistic) error
	GetStatistic(ctx context.Context, id uuid.UUID) (*models.PlayerStatistic, error)
	ListStatisticsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerStatistic, error)
	ListStatisticsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.PlayerStatistic, error)
	DeleteStatistic(ctx context.Context, id uuid.UUID) error
}

var _ StatisticService = (*statisticService)(nil)

type statisticService struct {
	statistics interfaces.StatisticRepository
	players    interfaces.PlayerRepository
	matches    interfaces.MatchRepository
	logger     *zap.Logger
}

func NewStatisticService(
	statistics interfaces.StatisticRepository,
	players interfaces.PlayerRepository,
	matches interfaces.MatchRepository,
	logger *zap.Logger,
) StatisticService {
	return &statisticService{
		statistics: statistics,
		players:    players,
		matches:    matches,
		logger:     logger.Named("StatisticService"),
	}
}

func (s *statisticService) CreateStatistic(ctx context.Context, stat *models.PlayerStatistic) error {
	if err := s.validateStatistic(ctx, stat); err != nil {
		return err
	}
	if err := s.statistics.CreateStatistic(ctx, stat); err != nil {
		s.logger.Error("Failed to create statistic", zap.Error(err),
			zap.String("playerID", stat.PlayerID.String()),
			zap.String("matchID", stat.MatchID.String()))
		return err
	}
	return nil
}

func (s *statisticService) GetStatistic(ctx context.Context, id uuid.UUID) (*models.PlayerStatistic, error) {
	return s.statistics.GetStatisticByID(ctx, id)
}

func (s *statisticService) ListStatisticsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerStatistic, error) {
	return s.statistics.ListStatisticsByPlayer(ctx, playerID)
}

func (s *statisticService) ListStatisticsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.PlayerStatistic, error) {
	return s.statistics.ListStatisticsByMatch(ctx, matchID)
}

func (s *statisticService) DeleteStatistic(ctx context.Context, id uuid.UUID) error {
	if err := s.statistics.DeleteStatistic(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to delete statistic", zap.Error(err), zap.String("statisticID", id.String()))
		}
		return err
	}
	return nil
}

func (s *statisticService) validateStatistic(ctx context.Context, stat *models.PlayerStatistic) error {
	if stat.Goals < 0 || stat.Assists < 0 || stat.YellowCards < 0 || stat.RedCards < 0 {
		return fmt.Errorf("%w: counters cannot be negative", models.ErrInvalidInput)
	}
	if stat.MinutesPlayed < 0 || stat.MinutesPlayed > 150 {
		return fmt.Errorf("%w: minutes played out of range", models.ErrInvalidInput)
	}
	if _, err := s.players.GetPlayerByID(ctx, stat.PlayerID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%w: player %s does not exist", models.ErrInvalidInput, stat.PlayerID)
		}
		return err
	}
	if _, err := s.matches.GetMatchByID(ctx, stat.MatchID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%w: match %s does not exist", models.ErrInvalidInput, stat.MatchID)
		}
		return err
	}
	return nil
}
