package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/meetmate/meetmate_backend/internal/apperrors"
	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/dto"
	"github.com/meetmate/meetmate_backend/internal/handlers"
	"github.com/meetmate/meetmate_backend/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GroupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockGroupSvc *MockGroupService
}

func (suite *GroupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockGroupSvc = new(MockGroupService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Wallet:    new(MockWalletService),
		Group:     suite.mockGroupSvc,
		Discovery: new(MockDiscoveryService),
	})
}

func (suite *GroupHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *GroupHandlerTestSuite) TestListGroups_Success() {
	groups := []dto.GroupSummaryResponse{
		{
			ID:            1,
			Name:          "Weekend Hikers",
			Activity:      "Hiking",
			Category:      "Outdoor",
			Members:       4,
			MaxMembers:    5,
			NextMeetup:    "Tomorrow, 2:00 PM",
			Location:      "Table Mountain",
			Budget:        "R450",
			Host:          dto.GroupHost{Name: "Thandi M", Avatar: "https://cdn.example.com/a/1.jpg"},
			MemberAvatars: []string{"a1", "a2"},
			Status:        "active",
		},
	}

	suite.mockGroupSvc.On("ListGroups", mock.Anything, int64(42), "all").Return(groups, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/groups/list?userId=42", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.GroupSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Weekend Hikers", resp[0].Name)
	suite.Equal("R450", resp[0].Budget)
	suite.Equal("Thandi M", resp[0].Host.Name)
	suite.mockGroupSvc.AssertExpectations(suite.T())
}

func (suite *GroupHandlerTestSuite) TestListGroups_DefaultsFilterToAll() {
	suite.mockGroupSvc.On("ListGroups", mock.Anything, int64(0), "all").
		Return([]dto.GroupSummaryResponse{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/groups/list", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
	suite.mockGroupSvc.AssertExpectations(suite.T())
}

func (suite *GroupHandlerTestSuite) TestListGroups_ForwardsFilter() {
	suite.mockGroupSvc.On("ListGroups", mock.Anything, int64(7), "my-groups").
		Return([]dto.GroupSummaryResponse{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/groups/list?userId=7&filter=my-groups", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockGroupSvc.AssertExpectations(suite.T())
}

func (suite *GroupHandlerTestSuite) TestListGroups_MyGroupsWithoutUser() {
	suite.mockGroupSvc.On("ListGroups", mock.Anything, int64(0), "my-groups").
		Return(nil, apperrors.NewValidationError("user id is required for my-groups filter")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/groups/list?filter=my-groups", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error": "user id is required for my-groups filter"}`, w.Body.String())
	suite.mockGroupSvc.AssertExpectations(suite.T())
}

func (suite *GroupHandlerTestSuite) TestListGroups_InvalidUserID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/groups/list?userId=abc", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error": "Invalid query parameters"}`, w.Body.String())
	suite.mockGroupSvc.AssertNotCalled(suite.T(), "ListGroups")
}

func (suite *GroupHandlerTestSuite) TestListGroups_InternalError() {
	suite.mockGroupSvc.On("ListGroups", mock.Anything, int64(42), "all").
		Return(nil, errors.New("connection refused")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/groups/list?userId=42", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error": "Failed to fetch groups"}`, w.Body.String())
	suite.mockGroupSvc.AssertExpectations(suite.T())
}

func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
