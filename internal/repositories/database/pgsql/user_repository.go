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
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, name, age, avatar_url, bio, interests, location, wallet_balance, created_at, updated_at
		FROM users
		WHERE id = $1;
	`
	var m models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.ID,
		&m.Name,
		&m.Age,
		&m.AvatarURL,
		&m.Bio,
		&m.Interests,
		&m.Location,
		&m.WalletBalance,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID", err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

// ListDiscoveryCandidates returns a randomized page of users eligible for
// the discovery feed. excludeUserID of zero matches no rows in either
// exclusion clause, so anonymous callers get an unfiltered feed.
func (r *PgxUserRepository) ListDiscoveryCandidates(ctx context.Context, excludeUserID int64, limit int) ([]domain.DiscoveryCandidate, error) {
	query := `
		SELECT u.id, u.name, u.age, u.avatar_url, u.bio, u.interests, u.location,
		       u.wallet_balance, u.created_at, u.updated_at,
		       COALESCE(ug.group_count, 0) AS group_count
		FROM users u
		LEFT JOIN (
		    SELECT user_id, COUNT(*) AS group_count
		    FROM group_members
		    GROUP BY user_id
		) ug ON u.id = ug.user_id
		WHERE u.id <> $1
		AND u.id NOT IN (
		    SELECT CASE WHEN user1_id = $1 THEN user2_id ELSE user1_id END
		    FROM user_connections
		    WHERE (user1_id = $1 OR user2_id = $1)
		      AND status IN ('connected', 'pending')
		)
		ORDER BY RANDOM()
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, excludeUserID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query discovery candidates", err)
	}
	defer rows.Close()

	candidates := []models.DiscoveryRow{}
	for rows.Next() {
		var m models.DiscoveryRow
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Age,
			&m.AvatarURL,
			&m.Bio,
			&m.Interests,
			&m.Location,
			&m.WalletBalance,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.GroupCount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan discovery candidate row", err)
		}
		candidates = append(candidates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating discovery candidate rows", err)
	}

	return mapping.ToDomainDiscoveryCandidateSlice(candidates), nil
}
