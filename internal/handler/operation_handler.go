// internal/handler/operation_handler.go
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/model"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
)

// OperationHandler handles operation audit HTTP requests
type OperationHandler struct {
	operationService *service.OperationService
	logger           *utils.ServiceLogger
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(operationService *service.OperationService, logger *zap.Logger) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
		logger:           utils.NewServiceLogger(logger, "operation-handler"),
	}
}

// GetOperation handles single operation lookup requests
// @Summary Get operation details
// @Description Get a recorded encode operation by its ID
// @Tags Operations
// @Produce json
// @Param operation_id path string true "Operation ID"
// @Success 200 {object} utils.APIResponse{data=model.EncodeOperation} "Operation retrieved"
// @Failure 400 {object} utils.APIResponse "Invalid operation ID"
// @Failure 404 {object} utils.APIResponse "Operation not found"
// @Router /operations/{operation_id} [get]
func (h *OperationHandler) GetOperation(c *gin.Context) {
	operationID, err := uuid.Parse(c.Param("operation_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid operation ID", err)
		return
	}

	operation, err := h.operationService.GetOperation(c.Request.Context(), operationID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Operation not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operation retrieved", operation)
}

// ListOperations handles operation list requests
// @Summary List operations
// @Description Get recorded encode operations with filtering and pagination
// @Tags Operations
// @Produce json
// @Param kind query string false "Filter by encode kind"
// @Param dialect query string false "Filter by dialect"
// @Param status query string false "Filter by status" Enums(SUCCESS, FAILED)
// @Param correlation_id query string false "Filter by correlation ID"
// @Param start_date query string false "Operations created after (RFC3339)"
// @Param end_date query string false "Operations created before (RFC3339)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param sort_by query string false "Sort field" default(created_at)
// @Param sort_order query string false "Sort order" Enums(asc, desc) default(desc)
// @Success 200 {object} utils.APIResponse "Operations retrieved"
// @Router /operations [get]
func (h *OperationHandler) ListOperations(c *gin.Context) {
	filter := &service.OperationFilter{
		Page:      1,
		PerPage:   20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	if kindStr := c.Query("kind"); kindStr != "" {
		kind := model.EncodeKind(strings.ToUpper(kindStr))
		filter.Kind = &kind
	}

	if dialectStr := c.Query("dialect"); dialectStr != "" {
		filter.Dialect = &dialectStr
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := model.OperationStatus(strings.ToUpper(statusStr))
		filter.Status = &status
	}

	if correlationStr := c.Query("correlation_id"); correlationStr != "" {
		if correlationID, err := uuid.Parse(correlationStr); err == nil {
			filter.CorrelationID = &correlationID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse(time.RFC3339, startDateStr); err == nil {
			filter.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse(time.RFC3339, endDateStr); err == nil {
			filter.EndDate = &endDate
		}
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}

	if perPageStr := c.Query("per_page"); perPageStr != "" {
		if perPage, err := strconv.Atoi(perPageStr); err == nil && perPage > 0 && perPage <= 100 {
			filter.PerPage = perPage
		}
	}

	if sortBy := c.Query("sort_by"); sortBy != "" {
		filter.SortBy = sortBy
	}

	if sortOrder := c.Query("sort_order"); sortOrder != "" {
		filter.SortOrder = sortOrder
	}

	operations, pagination, err := h.operationService.ListOperations(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list operations", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list operations", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operations retrieved", gin.H{
		"operations": operations,
		"pagination": pagination,
	})
}
