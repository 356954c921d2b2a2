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

var _ interfaces.TeamRepository = (*pgTeamRepository)(nil)

type pgTeamRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgTeamRepository creates a new PostgreSQL-backed TeamRepository.
func NewPgTeamRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.TeamRepository {
	return &pgTeamRepository{db: db, logger: logger.Named("PgTeamRepo")}
}

const teamColumns = `id, name, city, founded_year, coach_name, created_at, updated_at`

func (r *pgTeamRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	query := `INSERT INTO teams (name, city, founded_year, coach_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, team.Name, team.City, team.FoundedYear, team.CoachName).
		Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create team in postgres", zap.Error(err), zap.String("name", team.Name))
		return fmt.Errorf("failed to create team in postgres: %w", err)
	}
	return nil
}

func (r *pgTeamRepository) GetTeamByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	team := &models.Team{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.City, &team.FoundedYear, &team.CoachName,
		&team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get team from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get team from postgres: %w", err)
	}
	return team, nil
}

func (r *pgTeamRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query teams from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(
			&team.ID, &team.Name, &team.City, &team.FoundedYear, &team.CoachName,
			&team.CreatedAt, &team.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}
	return teams, nil
}

func (r *pgTeamRepository) UpdateTeam(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET name = $2, city = $3, founded_year = $4, coach_name = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, team.ID, team.Name, team.City, team.FoundedYear, team.CoachName).
		Scan(&team.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Failed to update team in postgres", zap.Error(err), zap.String("id", team.ID.String()))
		return fmt.Errorf("failed to update team in postgres: %w", err)
	}
	return nil
}

func (r *pgTeamRepository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete team from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete team from postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
