package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

var _ interfaces.StatisticRepository = (*pgStatisticRepository)(nil)

type pgStatisticRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgStatisticRepository creates a new PostgreSQL-backed StatisticRepository.
func NewPgStatisticRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.StatisticRepository {
	return &pgStatisticRepository{db: db, logger: logger.Named("PgStatisticRepo")}
}

const statisticColumns = `id, player_id, match_id, goals, assists, yellow_cards, red_cards, minutes_played, created_at`

func (r *pgStatisticRepository) CreateStatistic(ctx context.Context, s *models.PlayerStatistic) error {
	query := `INSERT INTO player_statistics (player_id, match_id, goals, assists, yellow_cards, red_cards, minutes_played)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		s.PlayerID, s.MatchID, s.Goals, s.Assists, s.YellowCards, s.RedCards, s.MinutesPlayed,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create statistic in postgres", zap.Error(err))
		return fmt.Errorf("failed to create statistic in postgres: %w", err)
	}
	return nil
}

func (r *pgStatisticRepository) GetStatisticByID(ctx context.Context, id uuid.UUID) (*models.PlayerStatistic, error) {
	query := `SELECT ` + statisticColumns + ` FROM player_statistics WHERE id = $1`
	s := &models.PlayerStatistic{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.PlayerID, &s.MatchID, &s.Goals, &s.Assists,
		&s.YellowCards, &s.RedCards, &s.MinutesPlayed, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get statistic from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get statistic from postgres: %w", err)
	}
	return s, nil
}

func (r *pgStatisticRepository) ListStatisticsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerStatistic, error) {
	query := `SELECT ` + statisticColumns + ` FROM player_statistics WHERE player_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, playerID)
}

func (r *pgStatisticRepository) ListStatisticsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.PlayerStatistic, error) {
	query := `SELECT ` + statisticColumns + ` FROM player_statistics WHERE match_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, matchID)
}

func (r *pgStatisticRepository) list(ctx context.Context, query string, arg any) ([]models.PlayerStatistic, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		r.logger.Error("Failed to query statistics from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query statistics: %w", err)
	}
	defer rows.Close()

	stats := make([]models.PlayerStatistic, 0)
	for rows.Next() {
		var s models.PlayerStatistic
		if err := rows.Scan(
			&s.ID, &s.PlayerID, &s.MatchID, &s.Goals, &s.Assists,
			&s.YellowCards, &s.RedCards, &s.MinutesPlayed, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan statistic row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statistic rows: %w", err)
	}
	return stats, nil
}

func (r *pgStatisticRepository) DeleteStatistic(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM player_statistics WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete statistic from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete statistic from postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
