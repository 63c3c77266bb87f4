package handlers

import (
	"net/http"

	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// groupHandler handles HTTP requests for the group read model.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

// newGroupHandler creates a new groupHandler.
func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{
		groupService: gs,
	}
}

// registerGroupRoutes registers all group-related routes.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade) {
	h := newGroupHandler(groupService)

	groups := rg.Group("/groups")
	{
		groups.GET("/list", h.listGroups)
	}
}

// listGroups returns display-ready group summaries, newest group first.
// filter is one of all, my-groups, active, available (default all); userId
// is required only for my-groups.
func (h *groupHandler) listGroups(c *gin.Context) {
	var params dto.ListGroupsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	groups, err := h.groupService.ListGroups(c.Request.Context(), params.UserID, params.Filter)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch groups")
		return
	}

	c.JSON(http.StatusOK, groups)
}
