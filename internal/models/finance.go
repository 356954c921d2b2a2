package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction kinds.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

// Transaction represents a single financial movement on a team's account.
// Amount is stored in cents to avoid float drift.
type Transaction struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TeamID      uuid.UUID `db:"team_id" json:"teamId"`
	Kind        string    `db:"kind" json:"kind"`
	AmountCents int64     `db:"amount_cents" json:"amountCents"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	OccurredAt  time.Time `db:"occurred_at" json:"occurredAt"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// FinanceSummary aggregates a team's transactions.
type FinanceSummary struct {
	TeamID       uuid.UUID `json:"teamId"`
	IncomeCents  int64     `json:"incomeCents"`
	ExpenseCents int64     `json:"expenseCents"`
	BalanceCents int64     `json:"balanceCents"`
	Transactions int64     `json:"transactions"`
}
