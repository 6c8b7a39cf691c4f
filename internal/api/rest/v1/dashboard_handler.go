package v1

import (
	"net/http"

	"github.com/Khaledaun/LVJAPP/internal/domain/dashboard"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the portal's data endpoints
type DashboardHandler interface {
	Overview(ctx *gin.Context)
	RouteAccess(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.DashboardService
	presenter        presenter
	skipAuth         bool
	logger           logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.DashboardService, trafficLight, skipAuth bool, logger logger.Logger) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
		presenter:        presenter{trafficLight: trafficLight},
		skipAuth:         skipAuth,
		logger:           logger,
	}
}

// Overview handles GET /dashboard
func (handler *dashboardHandler) Overview(ctx *gin.Context) {
	overview, err := handler.dashboardService.Overview(ctx, actorFrom(ctx))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, handler.presenter.dashboard(overview))
}

// RouteAccess handles GET /route-access?path=/x
func (handler *dashboardHandler) RouteAccess(ctx *gin.Context) {
	path := ctx.DefaultQuery("path", "/")
	actor := actorFrom(ctx)

	var role users.Role
	if actor != nil {
		role = actor.Role
	}

	ctx.JSON(http.StatusOK, RouteAccessResponse{
		Path:    path,
		Allowed: users.CanAccessRoute(role, path, handler.skipAuth),
	})
}
