// internal/handler/encode_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/model"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
)

// EncodeHandler handles encode-related HTTP requests
type EncodeHandler struct {
	encodeService *service.EncodeService
	logger        *utils.ServiceLogger
}

// NewEncodeHandler creates a new encode handler
func NewEncodeHandler(encodeService *service.EncodeService, logger *zap.Logger) *EncodeHandler {
	return &EncodeHandler{
		encodeService: encodeService,
		logger:        utils.NewServiceLogger(logger, "encode-handler"),
	}
}

// execute runs a request through the encode service and writes the response
func (h *EncodeHandler) execute(c *gin.Context, req *model.EncodeRequest, message string) {
	result, err := h.encodeService.Encode(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("Encode request failed",
			zap.String("kind", string(req.Kind)),
			zap.Error(err),
		)
		utils.EncodeErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Encode handles generic encode requests
// @Summary Encode a command sequence
// @Description Encode a semantic request of any kind into an ESC/POS byte sequence
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body EncodeRequestBody true "Encode request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode [post]
func (h *EncodeHandler) Encode(c *gin.Context) {
	var req EncodeRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data := req.Data
	if data == nil {
		data = model.JSONObject{}
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKind(req.Kind),
		Dialect:       req.Dialect,
		Data:          data,
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Encode completed")
}

// FormatText handles text style encode requests
// @Summary Encode styled text
// @Description Wrap a text payload in style opcodes with a trailing style reset
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body FormatTextRequest true "Format text request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/text [post]
func (h *EncodeHandler) FormatText(c *gin.Context) {
	var req FormatTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data := model.JSONObject{"text": *req.Text}
	if req.Style != "" {
		data["style"] = req.Style
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindFormatText,
		Dialect:       req.Dialect,
		Data:          data,
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Text encoded")
}

// Align handles alignment encode requests
// @Summary Encode aligned text
// @Description Wrap a text payload in alignment opcodes with a trailing reset to left
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body AlignRequest true "Align request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/align [post]
func (h *EncodeHandler) Align(c *gin.Context) {
	var req AlignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.execute(c, &model.EncodeRequest{
		Kind:    model.EncodeKindAlign,
		Dialect: req.Dialect,
		Data: model.JSONObject{
			"text":      *req.Text,
			"alignment": req.Alignment,
		},
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Text encoded")
}

// Color handles print color encode requests
// @Summary Encode colored text
// @Description Wrap a text payload in color opcodes with a trailing reset to black
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body ColorRequest true "Color request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/color [post]
func (h *EncodeHandler) Color(c *gin.Context) {
	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.execute(c, &model.EncodeRequest{
		Kind:    model.EncodeKindColor,
		Dialect: req.Dialect,
		Data: model.JSONObject{
			"text":  *req.Text,
			"color": req.Color,
		},
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Text encoded")
}

// Barcode handles barcode encode requests
// @Summary Encode a barcode
// @Description Encode barcode data with format, size and label position arguments
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body BarcodeRequest true "Barcode request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/barcode [post]
func (h *EncodeHandler) Barcode(c *gin.Context) {
	var req BarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data := model.JSONObject{
		"data":   req.Data,
		"format": req.Format,
	}
	if req.Height != nil {
		data["height"] = *req.Height
	}
	if req.Width != nil {
		data["width"] = *req.Width
	}
	if req.TextPosition != "" {
		data["text_position"] = req.TextPosition
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindBarcode,
		Dialect:       req.Dialect,
		Data:          data,
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Barcode encoded")
}

// Cut handles paper cut encode requests
// @Summary Encode a paper cut
// @Description Encode a full or partial paper cut command
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body CutRequest false "Cut request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/cut [post]
func (h *EncodeHandler) Cut(c *gin.Context) {
	var req CutRequest
	if err := h.bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data := model.JSONObject{}
	if req.Mode != "" {
		data["mode"] = req.Mode
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindCut,
		Dialect:       req.Dialect,
		Data:          data,
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Cut encoded")
}

// Charset handles code page selection encode requests
// @Summary Encode a code page switch
// @Description Encode the command sequence that switches the printer code page
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body CharsetRequest true "Charset request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/charset [post]
func (h *EncodeHandler) Charset(c *gin.Context) {
	var req CharsetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindCharset,
		Dialect:       req.Dialect,
		Data:          model.JSONObject{"charset": req.Charset},
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Code page switch encoded")
}

// Reencode handles text re-encoding requests
// @Summary Re-encode text
// @Description Re-encode UTF-8 text into a target code page byte stream
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body ReencodeRequest true "Reencode request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request or unsupported charset"
// @Router /encode/reencode [post]
func (h *EncodeHandler) Reencode(c *gin.Context) {
	var req ReencodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data := model.JSONObject{"text": *req.Text}
	if req.Charset != "" {
		data["charset"] = req.Charset
	}
	if req.InvalidPolicy != "" {
		data["invalid_policy"] = req.InvalidPolicy
	}
	if req.UndefinedPolicy != "" {
		data["undefined_policy"] = req.UndefinedPolicy
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindReencode,
		Dialect:       req.Dialect,
		Data:          data,
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Text re-encoded")
}

// Feed handles paper feed encode requests
// @Summary Encode a paper feed
// @Description Encode a feed of one to 255 lines
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body FeedRequest false "Feed request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/feed [post]
func (h *EncodeHandler) Feed(c *gin.Context) {
	var req FeedRequest
	if err := h.bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data := model.JSONObject{}
	if req.Lines != nil {
		data["lines"] = *req.Lines
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindFeed,
		Dialect:       req.Dialect,
		Data:          data,
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Feed encoded")
}

// OpenDrawer handles cash drawer encode requests
// @Summary Encode a drawer kick
// @Description Encode the cash drawer kick command for pin 2 or pin 5
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body OpenDrawerRequest false "Open drawer request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/open-drawer [post]
func (h *EncodeHandler) OpenDrawer(c *gin.Context) {
	var req OpenDrawerRequest
	if err := h.bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data := model.JSONObject{}
	if req.Pin != nil {
		data["pin"] = *req.Pin
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindOpenDrawer,
		Dialect:       req.Dialect,
		Data:          data,
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Drawer kick encoded")
}

// Initialize handles printer reset encode requests
// @Summary Encode a printer reset
// @Description Encode the hardware initialize command
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body InitializeRequest false "Initialize request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/init [post]
func (h *EncodeHandler) Initialize(c *gin.Context) {
	var req InitializeRequest
	if err := h.bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindInitialize,
		Dialect:       req.Dialect,
		Data:          model.JSONObject{},
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Initialize encoded")
}

// Document handles multi-step document encode requests
// @Summary Encode a document
// @Description Encode an ordered list of steps and concatenate their sequences
// @Tags Encode
// @Accept json
// @Produce json
// @Param request body DocumentRequest true "Document request"
// @Success 200 {object} utils.APIResponse{data=model.EncodeResult} "Encode completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Dialect has no opcode for request"
// @Router /encode/document [post]
func (h *EncodeHandler) Document(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	steps := make([]interface{}, len(req.Steps))
	for i, step := range req.Steps {
		steps[i] = map[string]interface{}{
			"kind": string(step.Kind),
			"data": map[string]interface{}(step.Data),
		}
	}

	h.execute(c, &model.EncodeRequest{
		Kind:          model.EncodeKindDocument,
		Dialect:       req.Dialect,
		Data:          model.JSONObject{"steps": steps},
		CorrelationID: parseCorrelationID(req.CorrelationID),
	}, "Document encoded")
}

// bindOptionalJSON binds a JSON body when one is present. Endpoints whose
// arguments all have defaults accept an empty body.
func (h *EncodeHandler) bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(obj)
}

// parseCorrelationID parses an optional correlation ID string
func parseCorrelationID(raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	if id, err := uuid.Parse(*raw); err == nil {
		return &id
	}
	return nil
}

// Request DTOs for encoding

// EncodeRequestBody represents a generic encode request
type EncodeRequestBody struct {
	Kind          string           `json:"kind" binding:"required"`
	Dialect       string           `json:"dialect,omitempty"`
	Data          model.JSONObject `json:"data"`
	CorrelationID *string          `json:"correlation_id,omitempty"`
}

// FormatTextRequest represents a styled text encode request. Text is a
// pointer so an explicitly empty payload still binds.
type FormatTextRequest struct {
	Text          *string `json:"text" binding:"required"`
	Style         string  `json:"style,omitempty"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// AlignRequest represents an aligned text encode request
type AlignRequest struct {
	Text          *string `json:"text" binding:"required"`
	Alignment     string  `json:"alignment" binding:"required"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// ColorRequest represents a colored text encode request
type ColorRequest struct {
	Text          *string `json:"text" binding:"required"`
	Color         string  `json:"color" binding:"required"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// BarcodeRequest represents a barcode encode request
type BarcodeRequest struct {
	Data          string  `json:"data" binding:"required"`
	Format        string  `json:"format" binding:"required"`
	Height        *int    `json:"height,omitempty"`
	Width         *int    `json:"width,omitempty"`
	TextPosition  string  `json:"text_position,omitempty"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// CutRequest represents a paper cut encode request
type CutRequest struct {
	Mode          string  `json:"mode,omitempty"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// CharsetRequest represents a code page switch encode request
type CharsetRequest struct {
	Charset       string  `json:"charset" binding:"required"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// ReencodeRequest represents a text re-encoding request
type ReencodeRequest struct {
	Text            *string `json:"text" binding:"required"`
	Charset         string  `json:"charset,omitempty"`
	InvalidPolicy   string  `json:"invalid_policy,omitempty"`
	UndefinedPolicy string  `json:"undefined_policy,omitempty"`
	Dialect         string  `json:"dialect,omitempty"`
	CorrelationID   *string `json:"correlation_id,omitempty"`
}

// FeedRequest represents a paper feed encode request
type FeedRequest struct {
	Lines         *int    `json:"lines,omitempty"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// OpenDrawerRequest represents a cash drawer encode request
type OpenDrawerRequest struct {
	Pin           *int    `json:"pin,omitempty"`
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// InitializeRequest represents a printer reset encode request
type InitializeRequest struct {
	Dialect       string  `json:"dialect,omitempty"`
	CorrelationID *string `json:"correlation_id,omitempty"`
}

// DocumentRequest represents a multi-step document encode request
type DocumentRequest struct {
	Steps         []model.DocumentStep `json:"steps" binding:"required"`
	Dialect       string               `json:"dialect,omitempty"`
	CorrelationID *string              `json:"correlation_id,omitempty"`
}
