package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction_type column.
type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionStatus mirrors the status column.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// WalletTransaction mirrors a row of the wallet_transactions table.
// Group/plan linkage is optional; amounts are signed.
type WalletTransaction struct {
	ID              int64             `db:"id"`
	UserID          int64             `db:"user_id"`
	Amount          decimal.Decimal   `db:"amount"`
	TransactionType TransactionType   `db:"transaction_type"`
	Description     string            `db:"description"`
	GroupID         *int64            `db:"group_id"`
	PlanID          *int64            `db:"plan_id"`
	Status          TransactionStatus `db:"status"`
	CreatedAt       time.Time         `db:"created_at"`

	// Joined display context, only populated by list queries.
	GroupName        *string `db:"group_name"`
	PlanTitle        *string `db:"plan_title"`
	ParticipantCount *int    `db:"participant_count"`
}

// BalanceRow is the projection returned by the balance query: the stored
// balance plus the pending/monthly aggregates computed by the store.
type BalanceRow struct {
	WalletBalance   decimal.Decimal `db:"wallet_balance"`
	PendingExpenses decimal.Decimal `db:"pending_expenses"`
	MonthlySpent    decimal.Decimal `db:"monthly_spent"`
}
