package repositories

import (
	"context"

	"github.com/meetmate/meetmate_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations over the wallet ledger.
type WalletReader interface {
	// GetBalanceSummary retrieves the stored balance plus the pending and
	// current-month aggregates for a user.
	GetBalanceSummary(ctx context.Context, userID int64) (*domain.BalanceSummary, error)

	// ListTransactions retrieves the user's most recent ledger entries,
	// newest first, bounded by limit, with group/plan display context joined in.
	ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.WalletTransaction, error)
}

// WalletWriter defines the append operations of the ledger. Both operations
// must apply the ledger insert and the relative balance update as a single
// all-or-nothing unit.
type WalletWriter interface {
	// Deposit appends a positive-amount entry and increments the user's
	// balance. It returns the stored entry and the new balance.
	Deposit(ctx context.Context, txn domain.WalletTransaction) (*domain.WalletTransaction, decimal.Decimal, error)

	// RecordExpense appends a negative-amount entry and decrements the
	// user's balance under a row lock, rejecting entries that would drive
	// the balance negative. It returns the stored entry and the new balance.
	RecordExpense(ctx context.Context, txn domain.WalletTransaction) (*domain.WalletTransaction, decimal.Decimal, error)
}

// WalletRepositoryFacade combines all wallet repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
