package pgsql

import (
	"context"
	"errors"

	"github.com/meetmate/meetmate_backend/internal/apperrors"
	"github.com/meetmate/meetmate_backend/internal/core/domain"
	portsrepo "github.com/meetmate/meetmate_backend/internal/core/ports/repositories"
	"github.com/meetmate/meetmate_backend/internal/models"
	"github.com/meetmate/meetmate_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for the wallet ledger.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// GetBalanceSummary retrieves the stored balance together with the pending
// and current-calendar-month aggregates, computed by the store so the three
// values come from one consistent snapshot.
func (r *PgxWalletRepository) GetBalanceSummary(ctx context.Context, userID int64) (*domain.BalanceSummary, error) {
	query := `
		SELECT wallet_balance,
		       (SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions
		        WHERE user_id = $1 AND status = 'pending' AND amount < 0) AS pending_expenses,
		       (SELECT COALESCE(SUM(ABS(amount)), 0) FROM wallet_transactions
		        WHERE user_id = $1 AND transaction_type = 'expense'
		        AND EXTRACT(MONTH FROM created_at) = EXTRACT(MONTH FROM CURRENT_DATE)
		        AND EXTRACT(YEAR FROM created_at) = EXTRACT(YEAR FROM CURRENT_DATE)) AS monthly_spent
		FROM users
		WHERE id = $1;
	`
	var row models.BalanceRow
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&row.WalletBalance,
		&row.PendingExpenses,
		&row.MonthlySpent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query balance summary", err)
	}

	summary := mapping.ToDomainBalanceSummary(row)
	return &summary, nil
}

// ListTransactions retrieves the user's most recent ledger entries with
// group/plan display context. The participant count is a correlated subquery
// so plan-linked rows are not duplicated by the join.
func (r *PgxWalletRepository) ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.WalletTransaction, error) {
	query := `
		SELECT wt.id, wt.user_id, wt.amount, wt.transaction_type, wt.description,
		       wt.group_id, wt.plan_id, wt.status, wt.created_at,
		       g.name AS group_name,
		       mp.title AS plan_title,
		       CASE WHEN wt.plan_id IS NOT NULL THEN
		           (SELECT COUNT(*) FROM plan_participants pp WHERE pp.plan_id = wt.plan_id)
		       END AS participant_count
		FROM wallet_transactions wt
		LEFT JOIN groups g ON wt.group_id = g.id
		LEFT JOIN meetup_plans mp ON wt.plan_id = mp.id
		WHERE wt.user_id = $1
		ORDER BY wt.created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query wallet transactions", err)
	}
	defer rows.Close()

	transactions := []models.WalletTransaction{}
	for rows.Next() {
		var t models.WalletTransaction
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Amount,
			&t.TransactionType,
			&t.Description,
			&t.GroupID,
			&t.PlanID,
			&t.Status,
			&t.CreatedAt,
			&t.GroupName,
			&t.PlanTitle,
			&t.ParticipantCount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan wallet transaction row", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating wallet transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}

// Deposit appends the ledger entry and applies the balance increment inside
// one database transaction. The balance update is relative
// (wallet_balance + amount, evaluated by the store) so concurrent deposits
// serialize without a read-modify-write race at the application layer.
func (r *PgxWalletRepository) Deposit(ctx context.Context, txn domain.WalletTransaction) (*domain.WalletTransaction, decimal.Decimal, error) {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	var newBalance decimal.Decimal
	err = tx.QueryRow(ctx, `
		UPDATE users
		SET wallet_balance = wallet_balance + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING wallet_balance;
	`, m.Amount, m.UserID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, decimal.Zero, apperrors.ErrNotFound
		}
		return nil, decimal.Zero, apperrors.NewAppError(500, "failed to update wallet balance", err)
	}

	if err := r.insertTransaction(ctx, tx, &m); err != nil {
		return nil, decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, decimal.Zero, err
	}

	created := mapping.ToDomainTransaction(m)
	return &created, newBalance, nil
}

// RecordExpense appends a negative-amount entry and applies the decrement
// under a row lock, so the non-negative balance invariant holds even with
// concurrent expenses against the same user.
func (r *PgxWalletRepository) RecordExpense(ctx context.Context, txn domain.WalletTransaction) (*domain.WalletTransaction, decimal.Decimal, error) {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE id = $1 FOR UPDATE;`, m.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, decimal.Zero, apperrors.ErrNotFound
		}
		return nil, decimal.Zero, apperrors.NewAppError(500, "failed to lock wallet balance", err)
	}

	newBalance := balance.Add(m.Amount)
	if newBalance.IsNegative() {
		return nil, decimal.Zero, apperrors.NewValidationError("insufficient balance")
	}

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET wallet_balance = wallet_balance + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2;
	`, m.Amount, m.UserID)
	if err != nil {
		return nil, decimal.Zero, apperrors.NewAppError(500, "failed to update wallet balance", err)
	}

	if err := r.insertTransaction(ctx, tx, &m); err != nil {
		return nil, decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, decimal.Zero, err
	}

	created := mapping.ToDomainTransaction(m)
	return &created, newBalance, nil
}

// insertTransaction appends a ledger row within tx, filling the generated ID
// and creation timestamp back into m.
func (r *PgxWalletRepository) insertTransaction(ctx context.Context, tx pgx.Tx, m *models.WalletTransaction) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO wallet_transactions (user_id, amount, transaction_type, description, group_id, plan_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`,
		m.UserID,
		m.Amount,
		m.TransactionType,
		m.Description,
		m.GroupID,
		m.PlanID,
		m.Status,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert wallet transaction", err)
	}
	return nil
}
