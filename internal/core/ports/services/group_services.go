package services

import (
	"context"

	"github.com/meetmate/meetmate_backend/internal/dto"
)

// GroupSvcFacade exposes the group read model.
type GroupSvcFacade interface {
	// ListGroups returns display-ready group summaries, newest group first.
	// filter is one of all, my-groups, active, available; unrecognised
	// values fall back to all. my-groups requires a userID.
	ListGroups(ctx context.Context, userID int64, filter string) ([]dto.GroupSummaryResponse, error)
}
