package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/meetmate/meetmate_backend/internal/apperrors"
	portssvc "github.com/meetmate/meetmate_backend/internal/core/ports/services"
	"github.com/meetmate/meetmate_backend/internal/middleware"
	"github.com/meetmate/meetmate_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	// Delegate route registration to specific handlers, passing required services
	registerWalletRoutes(api, services.Wallet)
	registerGroupRoutes(api, services.Group)
	registerDiscoveryRoutes(api, services.Discovery)
}

// respondServiceError maps a service error onto the wire contract:
// validation failures become 400 with the human-readable message, missing
// users become 404, everything else is logged in full and surfaced as a
// generic 500 so query internals never leak to the caller.
func respondServiceError(c *gin.Context, err error, fallbackMessage string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		msg := "Invalid request"
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		logger.Warn("Request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		logger.Error(fallbackMessage, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
	}
}
