package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a wallet transaction.
type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionStatus represents the settlement state of a wallet transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// WalletTransaction is a single entry in a user's append-only wallet ledger.
// Amount is signed: deposits are positive, expenses negative. Entries are
// never deleted; only the status may move (pending -> completed).
type WalletTransaction struct {
	TransactionID int64
	UserID        int64
	Amount        decimal.Decimal
	Type          TransactionType
	Description   string
	GroupID       *int64
	PlanID        *int64
	Status        TransactionStatus
	CreatedAt     time.Time

	// Populated by list queries that join group/plan context.
	GroupName        *string
	PlanTitle        *string
	ParticipantCount *int
}

// BalanceSummary is the point-in-time wallet view returned by GetBalance.
type BalanceSummary struct {
	Balance            decimal.Decimal
	PendingRedemptions decimal.Decimal
	MonthlySpent       decimal.Decimal
}
