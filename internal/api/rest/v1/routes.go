package v1

import (
	"net/http"

	"github.com/Khaledaun/LVJAPP/internal/app"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes.
func SetupRoutes(r *gin.Engine, services *app.Services, cfg *config.RestConfig, log logger.Logger) {
	trafficLight := cfg.Features.TrafficLightEnabled()
	skipAuth := cfg.Features.SkipAuthEnabled()

	r.Use(RequestID())
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticator := NewAuthenticator(services.Auth, cfg.Auth.CookieName, skipAuth, log)
	asStaff := authenticator.Require(users.DevCaseActor)
	asAdmin := authenticator.Require(users.DevAdminActor)
	managersOnly := RequireRole(users.Role.CanManageCases, app.MsgNotAuthorized)
	adminsOnly := RequireRole(users.Role.IsAdmin, app.MsgServiceTypeAdminOnly)

	v1 := r.Group(BasePath) // lookup in version file

	// Cases Routes
	caseHandler := NewCaseHandler(services.Cases, trafficLight, log)
	v1.GET("/cases", asStaff, caseHandler.List)
	v1.POST("/cases", asStaff, managersOnly, caseHandler.Create)
	v1.GET("/cases/:id", asStaff, caseHandler.GetByID)
	v1.PATCH("/cases/:id/status", asStaff, caseHandler.UpdateStatus)
	v1.GET("/cases/:id/history", asStaff, caseHandler.History)

	// Service Types Routes
	serviceTypeHandler := NewServiceTypeHandler(services.ServiceTypes, log)
	v1.GET("/service-types", serviceTypeHandler.List)
	v1.GET("/service-types/:id", serviceTypeHandler.GetByID)
	v1.POST("/service-types", asAdmin, adminsOnly, serviceTypeHandler.Create)
	v1.PUT("/service-types/:id", asAdmin, adminsOnly, serviceTypeHandler.Update)
	v1.DELETE("/service-types/:id", asAdmin, adminsOnly, serviceTypeHandler.DeleteByID)

	// Partner Roles Routes
	partnerRoleHandler := NewPartnerRoleHandler(services.PartnerRoles, log)
	v1.GET("/partner-roles", authenticator.Optional(), partnerRoleHandler.List)

	// Portal Routes
	dashboardHandler := NewDashboardHandler(services.Dashboard, trafficLight, skipAuth, log)
	v1.GET("/dashboard", asStaff, dashboardHandler.Overview)
	v1.GET("/route-access", asStaff, dashboardHandler.RouteAccess)
}
