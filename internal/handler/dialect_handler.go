// internal/handler/dialect_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"escpos-service/internal/service"
	"escpos-service/internal/utils"
)

// DialectHandler handles dialect-related HTTP requests
type DialectHandler struct {
	dialectService *service.DialectService
	logger         *utils.ServiceLogger
}

// NewDialectHandler creates a new dialect handler
func NewDialectHandler(dialectService *service.DialectService, logger *zap.Logger) *DialectHandler {
	return &DialectHandler{
		dialectService: dialectService,
		logger:         utils.NewServiceLogger(logger, "dialect-handler"),
	}
}

// ListDialects handles dialect list requests
// @Summary List dialects
// @Description Get all registered dialects with their symbol counts
// @Tags Dialects
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]service.DialectInfo} "Dialects retrieved"
// @Router /dialects [get]
func (h *DialectHandler) ListDialects(c *gin.Context) {
	dialects := h.dialectService.ListDialects()
	utils.SuccessResponse(c, http.StatusOK, "Dialects retrieved", dialects)
}

// GetDialect handles single dialect detail requests
// @Summary Get dialect details
// @Description Get a dialect with its full symbol to opcode mapping
// @Tags Dialects
// @Produce json
// @Param name path string true "Dialect name"
// @Success 200 {object} utils.APIResponse{data=service.DialectDetail} "Dialect retrieved"
// @Failure 404 {object} utils.APIResponse "Dialect not found"
// @Router /dialects/{name} [get]
func (h *DialectHandler) GetDialect(c *gin.Context) {
	name := c.Param("name")

	detail, err := h.dialectService.GetDialect(name)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Dialect not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dialect retrieved", detail)
}

// GetSymbols handles dialect symbol list requests
// @Summary List dialect symbols
// @Description Get the sorted symbolic command names a dialect defines
// @Tags Dialects
// @Produce json
// @Param name path string true "Dialect name"
// @Success 200 {object} utils.APIResponse{data=[]string} "Symbols retrieved"
// @Failure 404 {object} utils.APIResponse "Dialect not found"
// @Router /dialects/{name}/symbols [get]
func (h *DialectHandler) GetSymbols(c *gin.Context) {
	name := c.Param("name")

	symbols, err := h.dialectService.GetSymbols(name)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Dialect not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Symbols retrieved", symbols)
}

// RegisterDialect handles dialect registration requests
// @Summary Register a dialect
// @Description Register a new dialect from a symbol to hex sequence mapping, optionally extending an existing base
// @Tags Dialects
// @Accept json
// @Produce json
// @Param request body service.RegisterDialectRequest true "Dialect definition"
// @Success 201 {object} utils.APIResponse{data=service.DialectInfo} "Dialect registered"
// @Failure 400 {object} utils.APIResponse "Invalid dialect definition"
// @Router /dialects [post]
func (h *DialectHandler) RegisterDialect(c *gin.Context) {
	var req service.RegisterDialectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	info, err := h.dialectService.RegisterDialect(&req)
	if err != nil {
		h.logger.Warn("Dialect registration failed",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to register dialect", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Dialect registered", info)
}
