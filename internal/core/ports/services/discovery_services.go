package services

import (
	"context"

	"github.com/meetmate/meetmate_backend/internal/dto"
)

// DiscoverySvcFacade exposes the randomized discovery feed.
type DiscoverySvcFacade interface {
	// DiscoverUsers returns up to limit candidate cards in random order,
	// excluding the caller and their existing/pending connections. The
	// filler fields (distance, group size, activity, budget) are generated
	// per call and are not persisted.
	DiscoverUsers(ctx context.Context, userID int64, limit int) ([]dto.DiscoveryUserResponse, error)
}
