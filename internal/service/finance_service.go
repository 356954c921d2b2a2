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

// FinanceService manages team transactions and balance summaries.
type FinanceService interface {
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, teamID uuid.UUID) ([]models.Transaction, error)
	Summarize(ctx context.Context, teamID uuid.UUID) (*models.FinanceSummary, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

var _ FinanceService = (*financeService)(nil)

type financeService struct {
	transactions interfaces.TransactionRepository
	teams        interfaces.TeamRepository
	logger       *zap.Logger
}

func NewFinanceService(
	transactions interfaces.TransactionRepository,
	teams interfaces.TeamRepository,
	logger *zap.Logger,
) FinanceService {
	return &financeService{
		transactions: transactions,
		teams:        teams,
		logger:       logger.Named("FinanceService"),
	}
}

func (s *financeService) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t.Kind != models.TransactionIncome && t.Kind != models.TransactionExpense {
		return fmt.Errorf("%w: unknown transaction kind %q", models.ErrInvalidInput, t.Kind)
	}
	if t.AmountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive", models.ErrInvalidInput)
	}
	if _, err := s.teams.GetTeamByID(ctx, t.TeamID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%w: team %s does not exist", models.ErrInvalidInput, t.TeamID)
		}
		return err
	}
	if err := s.transactions.CreateTransaction(ctx, t); err != nil {
		s.logger.Error("Failed to create transaction", zap.Error(err), zap.String("teamID", t.TeamID.String()))
		return err
	}
	s.logger.Info("Transaction recorded",
		zap.String("transactionID", t.ID.String()),
		zap.String("kind", t.Kind),
		zap.Int64("amountCents", t.AmountCents))
	return nil
}

func (s *financeService) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return s.transactions.GetTransactionByID(ctx, id)
}

func (s *financeService) ListTransactions(ctx context.Context, teamID uuid.UUID) ([]models.Transaction, error) {
	return s.transactions.ListTransactionsByTeam(ctx, teamID)
}

func (s *financeService) Summarize(ctx context.Context, teamID uuid.UUID) (*models.FinanceSummary, error) {
	if _, err := s.teams.GetTeamByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.transactions.SummarizeTeam(ctx, teamID)
}

func (s *financeService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := s.transactions.DeleteTransaction(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to delete transaction", zap.Error(err), zap.String("transactionID", id.String()))
		}
		return err
	}
	return nil
}
