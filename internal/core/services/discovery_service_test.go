package services_test

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/meetmate/meetmate_backend/internal/core/domain"
	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListDiscoveryCandidates(ctx context.Context, excludeUserID int64, limit int) ([]domain.DiscoveryCandidate, error) {
	args := m.Called(ctx, excludeUserID, limit)
	var candidates []domain.DiscoveryCandidate
	if args.Get(0) != nil {
		candidates = args.Get(0).([]domain.DiscoveryCandidate)
	}
	return candidates, args.Error(1)
}

// --- Test Suite ---
type DiscoveryServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.DiscoverySvcFacade
}

func (suite *DiscoveryServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewDiscoveryService(
		suite.mockUserRepo,
		services.WithRand(rand.New(rand.NewSource(42))),
	)
}

var (
	distancePattern = regexp.MustCompile(`^(\d+\.\d) km from you$`)
	budgetPattern   = regexp.MustCompile(`^R(\d+)$`)
)

func (suite *DiscoveryServiceTestSuite) TestDiscoverUsers_FillerRanges() {
	ctx := context.Background()
	candidates := []domain.DiscoveryCandidate{
		{
			UserID:    2,
			Name:      "Lerato K",
			Age:       27,
			AvatarURL: "https://cdn.example.com/a/2.jpg",
			Interests: []string{"Hiking", "Wine"},
			Location:  "Stellenbosch, WC",
		},
		{UserID: 3, Name: "Pieter V", Age: 31},
		{UserID: 4, Name: "Ayesha D", Age: 24, Interests: []string{"Photography"}},
	}

	suite.mockUserRepo.On("ListDiscoveryCandidates", ctx, int64(1), 3).Return(candidates, nil).Once()

	resp, err := suite.service.DiscoverUsers(ctx, 1, 3)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 3)

	activities := map[string]bool{
		"Coffee & Chat":     true,
		"Braai & Rugby":     true,
		"Hiking Adventure":  true,
		"Wine Tasting":      true,
		"Art Gallery Visit": true,
		"Food Market Tour":  true,
		"Beach Volleyball":  true,
		"Photography Walk":  true,
	}

	for _, card := range resp {
		dm := distancePattern.FindStringSubmatch(card.Distance)
		suite.Require().NotNil(dm, "distance %q should match pattern", card.Distance)
		km, parseErr := strconv.ParseFloat(dm[1], 64)
		suite.Require().NoError(parseErr)
		suite.GreaterOrEqual(km, 0.5)
		suite.LessOrEqual(km, 4.5)

		suite.GreaterOrEqual(card.GroupSize, 2)
		suite.LessOrEqual(card.GroupSize, 5)

		bm := budgetPattern.FindStringSubmatch(card.Budget)
		suite.Require().NotNil(bm, "budget %q should match pattern", card.Budget)
		budget, parseErr := strconv.Atoi(bm[1])
		suite.Require().NoError(parseErr)
		suite.GreaterOrEqual(budget, 50)
		suite.LessOrEqual(budget, 349)

		suite.True(activities[card.Activity], "unexpected activity %q", card.Activity)
	}

	// Stored profile fields pass through untouched.
	suite.Equal(int64(2), resp[0].ID)
	suite.Equal("Lerato K", resp[0].Name)
	suite.Equal(27, resp[0].Age)
	suite.Equal([]string{"Hiking", "Wine"}, resp[0].Interests)
	suite.Equal("Stellenbosch, WC", resp[0].Location)

	// Empty profile fields get the defaults.
	suite.Equal([]string{"Coffee", "Meeting new people"}, resp[1].Interests)
	suite.Equal("Cape Town, WC", resp[1].Location)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *DiscoveryServiceTestSuite) TestDiscoverUsers_SeededDeterminism() {
	ctx := context.Background()
	candidates := []domain.DiscoveryCandidate{{UserID: 2, Name: "Lerato K", Age: 27}}

	first := services.NewDiscoveryService(suite.mockUserRepo, services.WithRand(rand.New(rand.NewSource(7))))
	second := services.NewDiscoveryService(suite.mockUserRepo, services.WithRand(rand.New(rand.NewSource(7))))

	suite.mockUserRepo.On("ListDiscoveryCandidates", ctx, int64(1), 1).Return(candidates, nil).Twice()

	a, err := first.DiscoverUsers(ctx, 1, 1)
	suite.Require().NoError(err)
	b, err := second.DiscoverUsers(ctx, 1, 1)
	suite.Require().NoError(err)

	suite.Equal(a[0].Distance, b[0].Distance)
	suite.Equal(a[0].GroupSize, b[0].GroupSize)
	suite.Equal(a[0].Activity, b[0].Activity)
	suite.Equal(a[0].Budget, b[0].Budget)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *DiscoveryServiceTestSuite) TestDiscoverUsers_DefaultLimit() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListDiscoveryCandidates", ctx, int64(1), 10).
		Return([]domain.DiscoveryCandidate{}, nil).Once()

	resp, err := suite.service.DiscoverUsers(ctx, 1, 0)

	suite.Require().NoError(err)
	suite.Empty(resp)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *DiscoveryServiceTestSuite) TestDiscoverUsers_RepositoryError() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListDiscoveryCandidates", ctx, int64(1), 10).
		Return(nil, errors.New("connection refused")).Once()

	resp, err := suite.service.DiscoverUsers(ctx, 1, 10)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.True(strings.Contains(err.Error(), "failed to list discovery candidates"))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestDiscoveryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiscoveryServiceTestSuite))
}
