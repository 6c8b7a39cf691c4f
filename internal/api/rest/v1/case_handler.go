package v1

import (
	"net/http"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CaseHandler defines the interface for handling case-related operations
type CaseHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	History(ctx *gin.Context)
}

type caseHandler struct {
	caseService cases.CaseService
	presenter   presenter
	logger      logger.Logger
}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler(caseService cases.CaseService, trafficLight bool, logger logger.Logger) CaseHandler {
	return &caseHandler{
		caseService: caseService,
		presenter:   presenter{trafficLight: trafficLight},
		logger:      logger,
	}
}

// List handles GET /cases and returns the cases visible to the caller
func (handler *caseHandler) List(ctx *gin.Context) {
	list, err := handler.caseService.List(ctx, actorFrom(ctx))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cases": handler.presenter.caseList(list)})
}

// Create handles POST /cases
func (handler *caseHandler) Create(ctx *gin.Context) {
	var request CreateCaseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidRequestBody})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidEmail})
		return
	}

	c, err := handler.caseService.Create(ctx, actorFrom(ctx), request.toInput())
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"case": handler.presenter.caseResponse(c)})
}

// GetByID handles GET /cases/:id
func (handler *caseHandler) GetByID(ctx *gin.Context) {
	detail, err := handler.caseService.GetByID(ctx, actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"case": handler.presenter.caseDetail(detail)})
}

// UpdateStatus handles PATCH /cases/:id/status.
// An undecodable body leaves the status empty so the service reports the valid values.
func (handler *caseHandler) UpdateStatus(ctx *gin.Context) {
	var request UpdateStatusRequest
	_ = ctx.ShouldBindJSON(&request)

	res, err := handler.caseService.UpdateStatus(ctx, actorFrom(ctx), ctx.Param("id"), cases.OverallStatus(request.Status))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, handler.presenter.statusUpdate(res))
}

// History handles GET /cases/:id/history
func (handler *caseHandler) History(ctx *gin.Context) {
	history, err := handler.caseService.History(ctx, actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"history": statusChangeResponses(history)})
}
