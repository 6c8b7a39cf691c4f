package v1

import (
	"net/http"

	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PartnerRoleHandler serves the partner role catalog
type PartnerRoleHandler interface {
	List(ctx *gin.Context)
}

type partnerRoleHandler struct {
	partnerRoleService partnerroles.PartnerRoleService
	logger             logger.Logger
}

// NewPartnerRoleHandler creates a new PartnerRoleHandler
func NewPartnerRoleHandler(partnerRoleService partnerroles.PartnerRoleService, logger logger.Logger) PartnerRoleHandler {
	return &partnerRoleHandler{partnerRoleService: partnerRoleService, logger: logger}
}

func (handler *partnerRoleHandler) List(ctx *gin.Context) {
	roles, err := handler.partnerRoleService.List(ctx, actorFrom(ctx))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"roles": partnerRoleResponses(roles)})
}
