package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds all dependency checks of one /health request.
const healthCheckTimeout = 3 * time.Second

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

// getHealth godoc
// @Summary Show the status of the server
// @Description Runs every registered dependency check. Any failure answers 503.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func getHealth(checks map[string]HealthCheck) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(names))
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				middleware.GetLoggerFromCtx(ctx).Warn("Health check failed", slog.String("check", name), slog.String("error", err.Error()))
				results[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "up"
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		c.JSON(status, gin.H{"status": overall, "checks": results})
	}
}

// sidebarHandler handles the sidebar summary.
type sidebarHandler struct {
	sidebarService portssvc.SidebarSvc
}

// registerSidebarRoutes registers the sidebar route.
func registerSidebarRoutes(rg *gin.RouterGroup, sidebarService portssvc.SidebarSvc) {
	h := &sidebarHandler{sidebarService: sidebarService}
	rg.GET("/sidebar", h.getSidebar)
}

// getSidebar godoc
// @Summary Sidebar summary
// @Description Projects and banks with letter and credit counts, plus the active currencies.
// @Tags sidebar
// @Produce json
// @Success 200 {object} dto.SidebarResponse
// @Failure 500 {object} map[string]string "Failed to build sidebar"
// @Router /sidebar [get]
func (h *sidebarHandler) getSidebar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sidebarService.GetSidebar(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "build sidebar")
		return
	}

	c.JSON(http.StatusOK, res)
}
