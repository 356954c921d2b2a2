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

var _ interfaces.PlayerRepository = (*pgPlayerRepository)(nil)

type pgPlayerRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgPlayerRepository creates a new PostgreSQL-backed PlayerRepository.
func NewPgPlayerRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.PlayerRepository {
	return &pgPlayerRepository{db: db, logger: logger.Named("PgPlayerRepo")}
}

const playerColumns = `id, team_id, first_name, last_name, position, jersey_number, birth_date, created_at, updated_at`

func (r *pgPlayerRepository) CreatePlayer(ctx context.Context, player *models.Player) error {
	query := `INSERT INTO players (team_id, first_name, last_name, position, jersey_number, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		player.TeamID, player.FirstName, player.LastName, player.Position, player.JerseyNumber, player.BirthDate,
	).Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create player in postgres", zap.Error(err))
		return fmt.Errorf("failed to create player in postgres: %w", err)
	}
	return nil
}

func (r *pgPlayerRepository) GetPlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	player := &models.Player{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&player.ID, &player.TeamID, &player.FirstName, &player.LastName,
		&player.Position, &player.JerseyNumber, &player.BirthDate,
		&player.CreatedAt, &player.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get player from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get player from postgres: %w", err)
	}
	return player, nil
}

// ListPlayers returns all players, optionally filtered by team.
func (r *pgPlayerRepository) ListPlayers(ctx context.Context, teamID *uuid.UUID) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players`
	args := []any{}
	if teamID != nil {
		query += ` WHERE team_id = $1`
		args = append(args, *teamID)
	}
	query += ` ORDER BY last_name ASC, first_name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query players from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if err := rows.Scan(
			&player.ID, &player.TeamID, &player.FirstName, &player.LastName,
			&player.Position, &player.JerseyNumber, &player.BirthDate,
			&player.CreatedAt, &player.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}
	return players, nil
}

func (r *pgPlayerRepository) UpdatePlayer(ctx context.Context, player *models.Player) error {
	query := `UPDATE players SET team_id = $2, first_name = $3, last_name = $4, position = $5,
		jersey_number = $6, birth_date = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		player.ID, player.TeamID, player.FirstName, player.LastName,
		player.Position, player.JerseyNumber, player.BirthDate,
	).Scan(&player.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Failed to update player in postgres", zap.Error(err), zap.String("id", player.ID.String()))
		return fmt.Errorf("failed to update player in postgres: %w", err)
	}
	return nil
}

func (r *pgPlayerRepository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete player from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete player from postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
