package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meetmate/meetmate_backend/internal/apperrors"
	"github.com/meetmate/meetmate_backend/internal/core/domain"
	portsrepo "github.com/meetmate/meetmate_backend/internal/core/ports/repositories"
	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionLimit = 10

	// depositDescription is the stored description for add-money entries.
	depositDescription = "Added Money"
)

type walletService struct {
	walletRepo    portsrepo.WalletRepositoryFacade
	monthlyBudget decimal.Decimal
	now           func() time.Time
}

// WalletServiceOption configures optional wallet service dependencies.
type WalletServiceOption func(*walletService)

// WithWalletClock overrides the clock used for relative-date formatting.
func WithWalletClock(now func() time.Time) WalletServiceOption {
	return func(s *walletService) {
		s.now = now
	}
}

// NewWalletService creates the wallet ledger service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, monthlyBudget decimal.Decimal, opts ...WalletServiceOption) portssvc.WalletSvcFacade {
	s := &walletService{
		walletRepo:    walletRepo,
		monthlyBudget: monthlyBudget,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) GetBalance(ctx context.Context, userID int64) (*dto.BalanceResponse, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("missing user id")
	}

	summary, err := s.walletRepo.GetBalanceSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance summary for user %d: %w", userID, err)
	}

	resp := dto.ToBalanceResponse(*summary, s.monthlyBudget)
	return &resp, nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID int64, limit int) ([]dto.TransactionResponse, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("missing user id")
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	txns, err := s.walletRepo.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}

	now := s.now()
	views := make([]dto.TransactionResponse, len(txns))
	for i, txn := range txns {
		views[i] = dto.ToTransactionResponse(now, txn)
	}
	return views, nil
}

func (s *walletService) Deposit(ctx context.Context, req dto.AddMoneyRequest) (*dto.WalletMutationResponse, error) {
	if req.UserID <= 0 {
		return nil, apperrors.NewValidationError("missing user id")
	}
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	txn := domain.WalletTransaction{
		UserID:      req.UserID,
		Amount:      amount,
		Type:        domain.TransactionTypeDeposit,
		Description: depositDescription,
		Status:      domain.TransactionStatusCompleted,
	}

	created, newBalance, err := s.walletRepo.Deposit(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to record deposit for user %d: %w", req.UserID, err)
	}

	resp := dto.ToWalletMutationResponse(*created, newBalance)
	return &resp, nil
}

func (s *walletService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*dto.WalletMutationResponse, error) {
	if req.UserID <= 0 {
		return nil, apperrors.NewValidationError("missing user id")
	}
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("missing description")
	}

	// Expenses are stored with negative amounts; the ledger's sign convention.
	txn := domain.WalletTransaction{
		UserID:      req.UserID,
		Amount:      amount.Neg(),
		Type:        domain.TransactionTypeExpense,
		Description: req.Description,
		GroupID:     req.GroupID,
		PlanID:      req.PlanID,
		Status:      domain.TransactionStatusCompleted,
	}

	created, newBalance, err := s.walletRepo.RecordExpense(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to record expense for user %d: %w", req.UserID, err)
	}

	resp := dto.ToWalletMutationResponse(*created, newBalance)
	return &resp, nil
}
