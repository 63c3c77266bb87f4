package mapping

import (
	"github.com/meetmate/meetmate_backend/internal/core/domain"
	"github.com/meetmate/meetmate_backend/internal/models"
)

// ToModelTransaction converts a domain WalletTransaction to a model WalletTransaction.
func ToModelTransaction(d domain.WalletTransaction) models.WalletTransaction {
	return models.WalletTransaction{
		ID:              d.TransactionID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.Type),
		Description:     d.Description,
		GroupID:         d.GroupID,
		PlanID:          d.PlanID,
		Status:          models.TransactionStatus(d.Status),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model WalletTransaction to a domain WalletTransaction.
func ToDomainTransaction(m models.WalletTransaction) domain.WalletTransaction {
	return domain.WalletTransaction{
		TransactionID:    m.ID,
		UserID:           m.UserID,
		Amount:           m.Amount,
		Type:             domain.TransactionType(m.TransactionType),
		Description:      m.Description,
		GroupID:          m.GroupID,
		PlanID:           m.PlanID,
		Status:           domain.TransactionStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		GroupName:        m.GroupName,
		PlanTitle:        m.PlanTitle,
		ParticipantCount: m.ParticipantCount,
	}
}

// ToDomainTransactionSlice converts a slice of model WalletTransactions.
func ToDomainTransactionSlice(ms []models.WalletTransaction) []domain.WalletTransaction {
	ds := make([]domain.WalletTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainBalanceSummary converts a balance projection to its domain view.
// Pending expenses are stored negative; the summary exposes their absolute value.
func ToDomainBalanceSummary(m models.BalanceRow) domain.BalanceSummary {
	return domain.BalanceSummary{
		Balance:            m.WalletBalance,
		PendingRedemptions: m.PendingExpenses.Abs(),
		MonthlySpent:       m.MonthlySpent,
	}
}
