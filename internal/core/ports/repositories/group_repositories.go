package repositories

import (
	"context"

	"github.com/meetmate/meetmate_backend/internal/core/domain"
)

// GroupListOptions narrows a group summary listing.
type GroupListOptions struct {
	// UserID scopes the my-groups filter; ignored for other filters.
	UserID int64
	Filter domain.GroupFilter
	// StrictAvailable makes the available filter additionally require
	// member_count < max_members.
	StrictAvailable bool
}

// GroupReader defines read operations for the group read model.
type GroupReader interface {
	// ListGroupSummaries retrieves display-ready group aggregates
	// (member counts, avatars, next meetup date), newest group first.
	ListGroupSummaries(ctx context.Context, opts GroupListOptions) ([]domain.GroupSummary, error)
}

// GroupRepositoryFacade combines all group repository interfaces.
type GroupRepositoryFacade interface {
	GroupReader
}
