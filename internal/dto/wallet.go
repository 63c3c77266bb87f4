package dto

import (
	"time"

	"github.com/meetmate/meetmate_backend/internal/core/domain"
	"github.com/meetmate/meetmate_backend/internal/utils/display"
	"github.com/shopspring/decimal"
)

// BalanceParams defines query parameters for the balance endpoint.
type BalanceParams struct {
	UserID int64 `form:"userId" binding:"required"`
}

// BalanceResponse is the wallet summary returned by GET /api/wallet/balance.
type BalanceResponse struct {
	Balance            float64 `json:"balance"`
	PendingRedemptions float64 `json:"pendingRedemptions"`
	MonthlySpent       float64 `json:"monthlySpent"`
	MonthlyBudget      float64 `json:"monthlyBudget"`
}

// ToBalanceResponse converts a domain balance summary, attaching the
// configured monthly budget (not per-user in this data model).
func ToBalanceResponse(s domain.BalanceSummary, monthlyBudget decimal.Decimal) BalanceResponse {
	return BalanceResponse{
		Balance:            s.Balance.InexactFloat64(),
		PendingRedemptions: s.PendingRedemptions.InexactFloat64(),
		MonthlySpent:       s.MonthlySpent.InexactFloat64(),
		MonthlyBudget:      monthlyBudget.InexactFloat64(),
	}
}

// ListTransactionsParams defines query parameters for the transaction feed.
type ListTransactionsParams struct {
	UserID int64 `form:"userId" binding:"required"`
	Limit  int   `form:"limit,default=10"`
}

// TransactionResponse is a display-ready ledger entry. GroupName and
// Participants are null unless the entry links to a group or plan.
type TransactionResponse struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	GroupName    *string `json:"groupName"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Participants *int    `json:"participants"`
}

// ToTransactionResponse converts a ledger entry to its display view: the
// type collapses to income/expense, the title prefers the linked plan's
// title over the stored description, and the amount is shown unsigned.
func ToTransactionResponse(now time.Time, txn domain.WalletTransaction) TransactionResponse {
	txnType := "expense"
	if txn.Type == domain.TransactionTypeDeposit {
		txnType = "income"
	}
	title := txn.Description
	if txn.PlanTitle != nil && *txn.PlanTitle != "" {
		title = *txn.PlanTitle
	}
	return TransactionResponse{
		ID:           txn.TransactionID,
		Type:         txnType,
		Title:        title,
		GroupName:    txn.GroupName,
		Amount:       txn.Amount.Abs().InexactFloat64(),
		Date:         display.RelativeTime(now, txn.CreatedAt),
		Status:       string(txn.Status),
		Participants: txn.ParticipantCount,
	}
}

// AddMoneyRequest is the body of POST /api/wallet/add-money.
type AddMoneyRequest struct {
	UserID int64   `json:"userId" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// RecordExpenseRequest is the body of POST /api/wallet/expense. Amount is the
// positive magnitude of the expense; group/plan linkage is optional.
type RecordExpenseRequest struct {
	UserID      int64   `json:"userId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	GroupID     *int64  `json:"groupId"`
	PlanID      *int64  `json:"planId"`
}

// CreatedTransaction echoes the ledger entry created by a wallet mutation.
type CreatedTransaction struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WalletMutationResponse is returned by add-money and expense: the created
// entry plus the balance after the mutation committed.
type WalletMutationResponse struct {
	Success     bool               `json:"success"`
	Transaction CreatedTransaction `json:"transaction"`
	NewBalance  float64            `json:"newBalance"`
}

// ToWalletMutationResponse converts a stored ledger entry and resulting balance.
func ToWalletMutationResponse(txn domain.WalletTransaction, newBalance decimal.Decimal) WalletMutationResponse {
	return WalletMutationResponse{
		Success: true,
		Transaction: CreatedTransaction{
			ID:          txn.TransactionID,
			Amount:      txn.Amount.InexactFloat64(),
			Description: txn.Description,
			CreatedAt:   txn.CreatedAt,
		},
		NewBalance: newBalance.InexactFloat64(),
	}
}
