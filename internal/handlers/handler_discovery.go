package handlers

import (
	"net/http"

	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// discoveryHandler handles HTTP requests for the discovery feed.
type discoveryHandler struct {
	discoveryService portssvc.DiscoverySvcFacade
}

// newDiscoveryHandler creates a new discoveryHandler.
func newDiscoveryHandler(ds portssvc.DiscoverySvcFacade) *discoveryHandler {
	return &discoveryHandler{
		discoveryService: ds,
	}
}

// registerDiscoveryRoutes registers all discovery-related routes.
func registerDiscoveryRoutes(rg *gin.RouterGroup, discoveryService portssvc.DiscoverySvcFacade) {
	h := newDiscoveryHandler(discoveryService)

	users := rg.Group("/users")
	{
		users.GET("/discover", h.discoverUsers)
	}
}

// discoverUsers returns a randomized page of candidate cards, excluding the
// caller and their existing or pending connections. The distance, group
// size, activity and budget fields are generated per call.
func (h *discoveryHandler) discoverUsers(c *gin.Context) {
	var params dto.DiscoverUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	users, err := h.discoveryService.DiscoverUsers(c.Request.Context(), params.UserID, params.Limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}
