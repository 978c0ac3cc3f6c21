// internal/handler/websocket_handler_test.go
package handler

import (
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"escpos-service/internal/dialect"
	"escpos-service/internal/service"
	"escpos-service/pkg/codec"
)

func newWebSocketServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	registry := dialect.NewRegistry(logger)
	encodeService := service.NewEncodeService(registry, codec.NewCharmapCodec(), nil, testConfig(), logger)
	wsHandler := NewWebSocketHandler(encodeService, logger)

	router := gin.New()
	router.GET("/ws/encode", wsHandler.HandleEncodeConnection)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func dialEncodeSocket(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/encode"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func TestWebSocketEncodeRoundTrip(t *testing.T) {
	server := newWebSocketServer(t)
	conn := dialEncodeSocket(t, server)

	require.NoError(t, conn.WriteJSON(WebSocketMessage{
		Type:      "encode",
		RequestID: "req-1",
		Data:      map[string]interface{}{"kind": "cut"},
	}))

	var reply WebSocketMessage
	require.NoError(t, conn.ReadJSON(&reply))

	assert.Equal(t, "encode_result", reply.Type)
	assert.Equal(t, "req-1", reply.RequestID)

	result, ok := reply.Data.(map[string]interface{})
	require.True(t, ok, "result payload is not an object")
	assert.Equal(t, "CUT", result["kind"])

	encoded, ok := result["sequence"].(string)
	require.True(t, ok, "result has no sequence")
	sequence, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1dV\x00"), sequence)
}

func TestWebSocketEncodeMissingKind(t *testing.T) {
	server := newWebSocketServer(t)
	conn := dialEncodeSocket(t, server)

	require.NoError(t, conn.WriteJSON(WebSocketMessage{
		Type:      "encode",
		RequestID: "req-2",
		Data:      map[string]interface{}{},
	}))

	var reply WebSocketMessage
	require.NoError(t, conn.ReadJSON(&reply))

	assert.Equal(t, "error", reply.Type)
	assert.Equal(t, "req-2", reply.RequestID)

	payload, ok := reply.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "kind is required", payload["error"])
}

func TestWebSocketEncodeFailureReportsError(t *testing.T) {
	server := newWebSocketServer(t)
	conn := dialEncodeSocket(t, server)

	require.NoError(t, conn.WriteJSON(WebSocketMessage{
		Type:      "encode",
		RequestID: "req-3",
		Data: map[string]interface{}{
			"kind": "barcode",
			"data": map[string]interface{}{"data": "123", "format": "maxicode"},
		},
	}))

	var reply WebSocketMessage
	require.NoError(t, conn.ReadJSON(&reply))

	assert.Equal(t, "error", reply.Type)
	assert.Equal(t, "req-3", reply.RequestID)

	payload, ok := reply.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, payload["error"], "BARCODE_MAXICODE")
}

func TestWebSocketPing(t *testing.T) {
	server := newWebSocketServer(t)
	conn := dialEncodeSocket(t, server)

	require.NoError(t, conn.WriteJSON(WebSocketMessage{
		Type:      "ping",
		RequestID: "req-4",
	}))

	var reply WebSocketMessage
	require.NoError(t, conn.ReadJSON(&reply))

	assert.Equal(t, "pong", reply.Type)
	assert.Equal(t, "req-4", reply.RequestID)
}
