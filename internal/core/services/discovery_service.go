package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/meetmate/meetmate_backend/internal/core/domain"
	portsrepo "github.com/meetmate/meetmate_backend/internal/core/ports/repositories"
	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/dto"
)

const defaultDiscoverLimit = 10

// discoveryActivities is the pool of activity labels shown on candidate cards.
var discoveryActivities = []string{
	"Coffee & Chat",
	"Braai & Rugby",
	"Hiking Adventure",
	"Wine Tasting",
	"Art Gallery Visit",
	"Food Market Tour",
	"Beach Volleyball",
	"Photography Walk",
}

// defaultInterests fills in for users who have not set any.
var defaultInterests = []string{"Coffee", "Meeting new people"}

const defaultLocation = "Cape Town, WC"

type discoveryService struct {
	userRepo portsrepo.UserRepositoryFacade

	// rng drives the per-call filler fields. Guarded by mu: handlers call
	// DiscoverUsers concurrently and rand.Rand is not safe for that.
	mu  sync.Mutex
	rng *rand.Rand
}

// DiscoveryServiceOption configures optional discovery service dependencies.
type DiscoveryServiceOption func(*discoveryService)

// WithRand overrides the randomness source so tests can pin a seed.
func WithRand(rng *rand.Rand) DiscoveryServiceOption {
	return func(s *discoveryService) {
		s.rng = rng
	}
}

// NewDiscoveryService creates the discovery feed service.
func NewDiscoveryService(userRepo portsrepo.UserRepositoryFacade, opts ...DiscoveryServiceOption) portssvc.DiscoverySvcFacade {
	s := &discoveryService{
		userRepo: userRepo,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.DiscoverySvcFacade = (*discoveryService)(nil)

func (s *discoveryService) DiscoverUsers(ctx context.Context, userID int64, limit int) ([]dto.DiscoveryUserResponse, error) {
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}

	candidates, err := s.userRepo.ListDiscoveryCandidates(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list discovery candidates: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]dto.DiscoveryUserResponse, len(candidates))
	for i, c := range candidates {
		views[i] = s.decorate(c)
	}
	return views, nil
}

// decorate fills the synthetic card fields. The values are generated fresh on
// every call; two calls for the same user may differ. Callers must hold s.mu.
func (s *discoveryService) decorate(c domain.DiscoveryCandidate) dto.DiscoveryUserResponse {
	interests := c.Interests
	if len(interests) == 0 {
		interests = defaultInterests
	}
	location := c.Location
	if location == "" {
		location = defaultLocation
	}

	return dto.DiscoveryUserResponse{
		ID:        c.UserID,
		Name:      c.Name,
		Age:       c.Age,
		Distance:  fmt.Sprintf("%.1f km from you", s.rng.Float64()*4+0.5),
		Image:     c.AvatarURL,
		Interests: interests,
		GroupSize: s.rng.Intn(4) + 2,
		Activity:  discoveryActivities[s.rng.Intn(len(discoveryActivities))],
		Location:  location,
		Budget:    fmt.Sprintf("R%d", s.rng.Intn(300)+50),
	}
}
