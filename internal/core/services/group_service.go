package services

import (
	"context"
	"fmt"
	"time"

	"github.com/meetmate/meetmate_backend/internal/apperrors"
	"github.com/meetmate/meetmate_backend/internal/core/domain"
	portsrepo "github.com/meetmate/meetmate_backend/internal/core/ports/repositories"
	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/dto"
)

type groupService struct {
	groupRepo       portsrepo.GroupRepositoryFacade
	strictAvailable bool
	now             func() time.Time
}

// GroupServiceOption configures optional group service dependencies.
type GroupServiceOption func(*groupService)

// WithStrictAvailableFilter makes the available filter require free capacity
// in addition to active status.
func WithStrictAvailableFilter(strict bool) GroupServiceOption {
	return func(s *groupService) {
		s.strictAvailable = strict
	}
}

// WithGroupClock overrides the clock used for next-meetup formatting.
func WithGroupClock(now func() time.Time) GroupServiceOption {
	return func(s *groupService) {
		s.now = now
	}
}

// NewGroupService creates the group read model service.
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade, opts ...GroupServiceOption) portssvc.GroupSvcFacade {
	s := &groupService{
		groupRepo: groupRepo,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

func (s *groupService) ListGroups(ctx context.Context, userID int64, filter string) ([]dto.GroupSummaryResponse, error) {
	f := domain.GroupFilter(filter)
	if !f.Valid() {
		// Unrecognised or empty filters list everything.
		f = domain.GroupFilterAll
	}
	if f == domain.GroupFilterMyGroups && userID <= 0 {
		return nil, apperrors.NewValidationError("user id is required for my-groups filter")
	}

	summaries, err := s.groupRepo.ListGroupSummaries(ctx, portsrepo.GroupListOptions{
		UserID:          userID,
		Filter:          f,
		StrictAvailable: s.strictAvailable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list group summaries: %w", err)
	}

	return dto.ToGroupSummaryResponseSlice(s.now(), summaries), nil
}
