package services

import (
	"context"

	"github.com/meetmate/meetmate_backend/internal/dto"
)

// WalletReaderSvc defines read operations over a user's wallet.
type WalletReaderSvc interface {
	// GetBalance returns the balance summary plus the configured monthly budget.
	GetBalance(ctx context.Context, userID int64) (*dto.BalanceResponse, error)

	// ListTransactions returns up to limit display-ready ledger entries,
	// newest first. A non-positive limit falls back to the default of 10.
	ListTransactions(ctx context.Context, userID int64, limit int) ([]dto.TransactionResponse, error)
}

// WalletWriterSvc defines the mutating wallet operations.
type WalletWriterSvc interface {
	// Deposit atomically appends a completed deposit entry and increments
	// the balance. Validation failures occur before any write.
	Deposit(ctx context.Context, req dto.AddMoneyRequest) (*dto.WalletMutationResponse, error)

	// RecordExpense atomically appends a completed expense entry (stored
	// with a negative amount) and decrements the balance, rejecting
	// expenses the balance cannot cover.
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*dto.WalletMutationResponse, error)
}

// WalletSvcFacade combines all wallet service interfaces.
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
