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

var _ interfaces.TournamentRepository = (*pgTournamentRepository)(nil)

type pgTournamentRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgTournamentRepository creates a new PostgreSQL-backed TournamentRepository.
func NewPgTournamentRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.TournamentRepository {
	return &pgTournamentRepository{db: db, logger: logger.Named("PgTournamentRepo")}
}

const tournamentColumns = `id, name, season, start_date, end_date, status, created_at, updated_at`

func (r *pgTournamentRepository) CreateTournament(ctx context.Context, t *models.Tournament) error {
	query := `INSERT INTO tournaments (name, season, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, t.Name, t.Season, t.StartDate, t.EndDate, t.Status).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create tournament in postgres", zap.Error(err), zap.String("name", t.Name))
		return fmt.Errorf("failed to create tournament in postgres: %w", err)
	}
	return nil
}

func (r *pgTournamentRepository) GetTournamentByID(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	t := &models.Tournament{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Season, &t.StartDate, &t.EndDate, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get tournament from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get tournament from postgres: %w", err)
	}
	return t, nil
}

func (r *pgTournamentRepository) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query tournaments from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Season, &t.StartDate, &t.EndDate, &t.Status,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tournament row: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tournament rows: %w", err)
	}
	return tournaments, nil
}

func (r *pgTournamentRepository) UpdateTournament(ctx context.Context, t *models.Tournament) error {
	query := `UPDATE tournaments SET name = $2, season = $3, start_date = $4, end_date = $5, status = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, t.ID, t.Name, t.Season, t.StartDate, t.EndDate, t.Status).
		Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Failed to update tournament in postgres", zap.Error(err), zap.String("id", t.ID.String()))
		return fmt.Errorf("failed to update tournament in postgres: %w", err)
	}
	return nil
}

func (r *pgTournamentRepository) DeleteTournament(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete tournament from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete tournament from postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
