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

var _ interfaces.TransactionRepository = (*pgTransactionRepository)(nil)

type pgTransactionRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgTransactionRepository creates a new PostgreSQL-backed TransactionRepository.
func NewPgTransactionRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.TransactionRepository {
	return &pgTransactionRepository{db: db, logger: logger.Named("PgTransactionRepo")}
}

const transactionColumns = `id, team_id, kind, amount_cents, category, description, occurred_at, created_at`

func (r *pgTransactionRepository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	query := `INSERT INTO transactions (team_id, kind, amount_cents, category, description, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		t.TeamID, t.Kind, t.AmountCents, t.Category, t.Description, t.OccurredAt,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create transaction in postgres", zap.Error(err))
		return fmt.Errorf("failed to create transaction in postgres: %w", err)
	}
	return nil
}

func (r *pgTransactionRepository) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t := &models.Transaction{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.TeamID, &t.Kind, &t.AmountCents, &t.Category,
		&t.Description, &t.OccurredAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get transaction from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get transaction from postgres: %w", err)
	}
	return t, nil
}

func (r *pgTransactionRepository) ListTransactionsByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE team_id = $1 ORDER BY occurred_at DESC`
	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		r.logger.Error("Failed to query transactions from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID, &t.TeamID, &t.Kind, &t.AmountCents, &t.Category,
			&t.Description, &t.OccurredAt, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

// SummarizeTeam aggregates income, expenses and balance for one team.
func (r *pgTransactionRepository) SummarizeTeam(ctx context.Context, teamID uuid.UUID) (*models.FinanceSummary, error) {
	query := `SELECT
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = $2), 0),
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = $3), 0),
		COUNT(*)
		FROM transactions WHERE team_id = $1`
	summary := &models.FinanceSummary{TeamID: teamID}
	err := r.db.QueryRow(ctx, query, teamID, models.TransactionIncome, models.TransactionExpense).
		Scan(&summary.IncomeCents, &summary.ExpenseCents, &summary.Transactions)
	if err != nil {
		r.logger.Error("Failed to summarize transactions in postgres", zap.Error(err), zap.String("teamID", teamID.String()))
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	summary.BalanceCents = summary.IncomeCents - summary.ExpenseCents
	return summary, nil
}

func (r *pgTransactionRepository) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete transaction from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete transaction from postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
