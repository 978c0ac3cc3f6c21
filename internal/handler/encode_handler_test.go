// internal/handler/encode_handler_test.go
package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/dialect"
	"escpos-service/internal/service"
	"escpos-service/pkg/codec"
	"escpos-service/pkg/escpos"
)

func testConfig() *config.Config {
	return &config.Config{
		Encoder: config.EncoderConfig{
			DefaultDialect: escpos.DefaultDialectName,
			DefaultCharset: "PC437",
			Barcode: config.BarcodeDefaultsConfig{
				Height:       50,
				Width:        3,
				TextPosition: "off",
			},
		},
	}
}

func newEncodeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	registry := dialect.NewRegistry(logger)
	encodeService := service.NewEncodeService(registry, codec.NewCharmapCodec(), nil, testConfig(), logger)
	encodeHandler := NewEncodeHandler(encodeService, logger)

	router := gin.New()
	encode := router.Group("/api/v1/encode")
	{
		encode.POST("", encodeHandler.Encode)
		encode.POST("/text", encodeHandler.FormatText)
		encode.POST("/barcode", encodeHandler.Barcode)
		encode.POST("/cut", encodeHandler.Cut)
		encode.POST("/reencode", encodeHandler.Reencode)
		encode.POST("/init", encodeHandler.Initialize)
		encode.POST("/document", encodeHandler.Document)
	}
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

// sequenceFromResponse extracts the encoded byte sequence from a response
// envelope. Sequences travel as base64 in JSON.
func sequenceFromResponse(t *testing.T, recorder *httptest.ResponseRecorder) []byte {
	t.Helper()

	response := decodeResponse(t, recorder)
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object")
	encoded, ok := data["sequence"].(string)
	require.True(t, ok, "data has no sequence")

	sequence, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	return sequence
}

func TestFormatTextEndpoint(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/text", gin.H{
		"text":  "WORLD",
		"style": "bold",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, []byte("\x1bE\x01WORLD\x1b!\x00"), sequenceFromResponse(t, recorder))
}

func TestFormatTextEndpointEmptyText(t *testing.T) {
	router := newEncodeRouter(t)

	// Empty text is valid, the framing opcodes are still emitted
	recorder := postJSON(t, router, "/api/v1/encode/text", gin.H{"text": ""})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []byte("\x1b!\x00\x1b!\x00"), sequenceFromResponse(t, recorder))
}

func TestFormatTextEndpointMissingText(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/text", gin.H{"style": "bold"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid request body", response["message"])
}

func TestGenericEncodeEndpoint(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode", gin.H{
		"kind": "cut",
		"data": gin.H{"mode": "partial"},
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []byte("\x1dV\x01"), sequenceFromResponse(t, recorder))
}

func TestGenericEncodeEndpointUnknownKind(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode", gin.H{"kind": "teleport"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Equal(t, "Invalid encode request", response["message"])
}

func TestBarcodeEndpoint(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/barcode", gin.H{
		"data":   "4006381333931",
		"format": "ean13",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	expected := []byte("\x1dH\x00\x1dw\x03\x1dh\x32\x1dk\x024006381333931")
	assert.Equal(t, expected, sequenceFromResponse(t, recorder))
}

func TestBarcodeEndpointUnknownFormat(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/barcode", gin.H{
		"data":   "123",
		"format": "maxicode",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Equal(t, "Dialect has no opcode for request", response["message"])
}

func TestBarcodeEndpointInvalidHeight(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/barcode", gin.H{
		"data":   "123",
		"format": "ean13",
		"height": 300,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Equal(t, "Invalid encode request", response["message"])
}

func TestCutEndpointEmptyBody(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/cut", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []byte("\x1dV\x00"), sequenceFromResponse(t, recorder))
}

func TestReencodeEndpointFailure(t *testing.T) {
	router := newEncodeRouter(t)

	// The euro sign has no mapping in the default code page
	recorder := postJSON(t, router, "/api/v1/encode/reencode", gin.H{"text": "€"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Equal(t, "Text re-encoding failed", response["message"])
}

func TestInitializeEndpointEmptyBody(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/init", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []byte("\x1b@"), sequenceFromResponse(t, recorder))
}

func TestDocumentEndpoint(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/document", gin.H{
		"steps": []gin.H{
			{"kind": "initialize"},
			{"kind": "format_text", "data": gin.H{"text": "TOTAL", "style": "bold"}},
			{"kind": "cut"},
		},
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	expected := []byte("\x1b@" + "\x1bE\x01TOTAL\x1b!\x00" + "\x1dV\x00")
	assert.Equal(t, expected, sequenceFromResponse(t, recorder))
}

func TestDocumentEndpointStepFailure(t *testing.T) {
	router := newEncodeRouter(t)

	recorder := postJSON(t, router, "/api/v1/encode/document", gin.H{
		"steps": []gin.H{
			{"kind": "barcode", "data": gin.H{"format": "ean13"}},
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Equal(t, "Invalid encode request", response["message"])
}

func TestEncodeEndpointCorrelationID(t *testing.T) {
	router := newEncodeRouter(t)
	correlationID := uuid.New().String()

	recorder := postJSON(t, router, "/api/v1/encode/text", gin.H{
		"text":           "x",
		"correlation_id": correlationID,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	response := decodeResponse(t, recorder)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, correlationID, data["correlation_id"])
}
