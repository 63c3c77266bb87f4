package repositories

import (
	"context"

	"github.com/meetmate/meetmate_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListDiscoveryCandidates retrieves up to limit users in random order,
	// excluding excludeUserID and anyone connected or pending-connected to
	// them. excludeUserID may be zero when the caller is anonymous.
	ListDiscoveryCandidates(ctx context.Context, excludeUserID int64, limit int) ([]domain.DiscoveryCandidate, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
}
