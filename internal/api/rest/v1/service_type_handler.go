package v1

import (
	"net/http"

	"github.com/Khaledaun/LVJAPP/internal/app"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ServiceTypeHandler defines the interface for handling service type operations
type ServiceTypeHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type serviceTypeHandler struct {
	serviceTypeService servicetypes.ServiceTypeService
	logger             logger.Logger
}

// NewServiceTypeHandler creates a new ServiceTypeHandler
func NewServiceTypeHandler(serviceTypeService servicetypes.ServiceTypeService, logger logger.Logger) ServiceTypeHandler {
	return &serviceTypeHandler{serviceTypeService: serviceTypeService, logger: logger}
}

func (handler *serviceTypeHandler) List(ctx *gin.Context) {
	list, err := handler.serviceTypeService.List(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	out := make([]ServiceTypeResponse, 0, len(list))
	for _, st := range list {
		out = append(out, serviceTypeResponse(st))
	}
	ctx.JSON(http.StatusOK, gin.H{"serviceTypes": out})
}

// bind decodes and validates the request body, writing a 400 on failure.
func (handler *serviceTypeHandler) bind(ctx *gin.Context) (*ServiceTypeRequest, bool) {
	var request ServiceTypeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidRequestBody})
		return nil, false
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidField})
		return nil, false
	}
	return &request, true
}

func (handler *serviceTypeHandler) Create(ctx *gin.Context) {
	request, ok := handler.bind(ctx)
	if !ok {
		return
	}

	st, err := handler.serviceTypeService.Create(ctx, actorFrom(ctx), request.toInput())
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"serviceType": serviceTypeResponse(st)})
}

func (handler *serviceTypeHandler) GetByID(ctx *gin.Context) {
	st, err := handler.serviceTypeService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"serviceType": serviceTypeResponse(st)})
}

func (handler *serviceTypeHandler) Update(ctx *gin.Context) {
	request, ok := handler.bind(ctx)
	if !ok {
		return
	}

	st, err := handler.serviceTypeService.Update(ctx, actorFrom(ctx), ctx.Param("id"), request.toInput())
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"serviceType": serviceTypeResponse(st)})
}

func (handler *serviceTypeHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.serviceTypeService.DeleteByID(ctx, actorFrom(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: app.MsgServiceTypeDeleted})
}
