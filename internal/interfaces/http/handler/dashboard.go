package handler

import (
	"github.com/gin-gonic/gin"

	dashboardapp "github.com/yummin/backend/internal/application/dashboard"
)

// DashboardHandler serves the owner analytics snapshot
type DashboardHandler struct {
	BaseHandler
	dashboards *dashboardapp.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboards *dashboardapp.Service) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// RegisterRoutes registers dashboard routes on the given group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Get)
}

// Get recomputes and returns the full dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	h.Success(c, h.dashboards.Build(c.Request.Context()))
}
