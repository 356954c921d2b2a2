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

var _ interfaces.MatchRepository = (*pgMatchRepository)(nil)

type pgMatchRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgMatchRepository creates a new PostgreSQL-backed MatchRepository.
func NewPgMatchRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.MatchRepository {
	return &pgMatchRepository{db: db, logger: logger.Named("PgMatchRepo")}
}

const matchColumns = `id, tournament_id, home_team_id, away_team_id, scheduled_at, home_score, away_score, status, created_at, updated_at`

func (r *pgMatchRepository) CreateMatch(ctx context.Context, m *models.Match) error {
	query := `INSERT INTO matches (tournament_id, home_team_id, away_team_id, scheduled_at, home_score, away_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.ScheduledAt, m.HomeScore, m.AwayScore, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create match in postgres", zap.Error(err))
		return fmt.Errorf("failed to create match in postgres: %w", err)
	}
	return nil
}

func (r *pgMatchRepository) GetMatchByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m := &models.Match{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.TournamentID, &m.HomeTeamID, &m.AwayTeamID, &m.ScheduledAt,
		&m.HomeScore, &m.AwayScore, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get match from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get match from postgres: %w", err)
	}
	return m, nil
}

// ListMatches returns matches ordered by kickoff time, optionally filtered
// by tournament.
func (r *pgMatchRepository) ListMatches(ctx context.Context, tournamentID *uuid.UUID) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches`
	args := []any{}
	if tournamentID != nil {
		query += ` WHERE tournament_id = $1`
		args = append(args, *tournamentID)
	}
	query += ` ORDER BY scheduled_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query matches from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(
			&m.ID, &m.TournamentID, &m.HomeTeamID, &m.AwayTeamID, &m.ScheduledAt,
			&m.HomeScore, &m.AwayScore, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}
	return matches, nil
}

func (r *pgMatchRepository) UpdateMatch(ctx context.Context, m *models.Match) error {
	query := `UPDATE matches SET tournament_id = $2, home_team_id = $3, away_team_id = $4, scheduled_at = $5,
		home_score = $6, away_score = $7, status = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		m.ID, m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.ScheduledAt,
		m.HomeScore, m.AwayScore, m.Status,
	).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Failed to update match in postgres", zap.Error(err), zap.String("id", m.ID.String()))
		return fmt.Errorf("failed to update match in postgres: %w", err)
	}
	return nil
}

func (r *pgMatchRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete match from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete match from postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
