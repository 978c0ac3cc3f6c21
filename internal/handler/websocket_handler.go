// internal/handler/websocket_handler.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"escpos-service/internal/model"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
)

// WebSocketHandler manages WebSocket connections for streaming encode requests
type WebSocketHandler struct {
	upgrader      websocket.Upgrader
	connections   *ConnectionManager
	encodeService *service.EncodeService
	logger        *utils.ServiceLogger
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(encodeService *service.EncodeService, logger *zap.Logger) *WebSocketHandler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// In production, implement proper origin checking
			return true
		},
	}

	return &WebSocketHandler{
		upgrader:      upgrader,
		connections:   NewConnectionManager(),
		encodeService: encodeService,
		logger:        utils.NewServiceLogger(logger, "websocket-handler"),
	}
}

// HandleEncodeConnection handles streaming encode WebSocket connections
func (h *WebSocketHandler) HandleEncodeConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	client := &Client{
		ID:          uuid.New().String(),
		Connection:  conn,
		Send:        make(chan []byte, 256),
		UserAgent:   c.Request.UserAgent(),
		RemoteAddr:  c.Request.RemoteAddr,
		ConnectedAt: time.Now(),
	}

	h.connections.Register(client)
	h.logger.Info("Encode WebSocket client connected",
		zap.String("client_id", client.ID),
		zap.String("remote_addr", client.RemoteAddr),
	)

	go h.handleClientRead(client)
	go h.handleClientWrite(client)
}

// handleClientRead handles reading messages from WebSocket client
func (h *WebSocketHandler) handleClientRead(client *Client) {
	defer func() {
		h.connections.Unregister(client)
		client.Connection.Close()
	}()

	// Set read deadline and pong handler
	client.Connection.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Connection.SetPongHandler(func(string) error {
		client.Connection.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, messageBytes, err := client.Connection.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error",
					zap.Error(err),
					zap.String("client_id", client.ID),
				)
			}
			break
		}

		// Parse message
		var message WebSocketMessage
		if err := json.Unmarshal(messageBytes, &message); err != nil {
			h.logger.Error("Failed to parse WebSocket message",
				zap.Error(err),
				zap.String("client_id", client.ID),
			)
			continue
		}

		// Handle message
		h.handleClientMessage(client, &message)
	}
}

// handleClientWrite handles writing messages to WebSocket client
func (h *WebSocketHandler) handleClientWrite(client *Client) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		client.Connection.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Connection.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Connection.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Connection.WriteMessage(websocket.TextMessage, message); err != nil {
				h.logger.Error("WebSocket write error",
					zap.Error(err),
					zap.String("client_id", client.ID),
				)
				return
			}

		case <-ticker.C:
			client.Connection.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleClientMessage handles incoming client messages
func (h *WebSocketHandler) handleClientMessage(client *Client, message *WebSocketMessage) {
	switch message.Type {
	case "encode":
		h.handleEncodeMessage(client, message)
	case "ping":
		h.sendMessage(client, &WebSocketMessage{
			Type:      "pong",
			RequestID: message.RequestID,
			Timestamp: time.Now(),
		})
	default:
		h.logger.Warn("Unknown message type",
			zap.String("type", message.Type),
			zap.String("client_id", client.ID),
		)
	}
}

// handleEncodeMessage handles encode request messages
func (h *WebSocketHandler) handleEncodeMessage(client *Client, message *WebSocketMessage) {
	data, ok := message.Data.(map[string]interface{})
	if !ok {
		h.sendError(client, message.RequestID, "invalid encode data")
		return
	}

	kind, ok := data["kind"].(string)
	if !ok {
		h.sendError(client, message.RequestID, "kind is required")
		return
	}

	go h.executeEncode(client, message.RequestID, kind, data)
}

// executeEncode runs an encode request and sends the result back to the client
func (h *WebSocketHandler) executeEncode(client *Client, requestID, kind string, data map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := &model.EncodeRequest{
		Kind: model.EncodeKind(kind),
		Data: model.JSONObject{},
	}

	if dialectName, ok := data["dialect"].(string); ok {
		req.Dialect = dialectName
	}
	if payload, ok := data["data"].(map[string]interface{}); ok {
		req.Data = model.JSONObject(payload)
	}
	if correlation, ok := data["correlation_id"].(string); ok {
		req.CorrelationID = parseCorrelationID(&correlation)
	}

	result, err := h.encodeService.Encode(ctx, req)
	if err != nil {
		h.sendError(client, requestID, err.Error())
		return
	}

	h.sendMessage(client, &WebSocketMessage{
		Type:      "encode_result",
		Data:      result,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// sendMessage sends a message to a client
func (h *WebSocketHandler) sendMessage(client *Client, message *WebSocketMessage) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("Failed to marshal WebSocket message", zap.Error(err))
		return
	}

	select {
	case client.Send <- messageBytes:
	default:
		h.logger.Warn("Client send channel full, dropping message",
			zap.String("client_id", client.ID),
		)
	}
}

// sendError sends an error message to a client
func (h *WebSocketHandler) sendError(client *Client, requestID, errorMsg string) {
	message := &WebSocketMessage{
		Type: "error",
		Data: map[string]interface{}{
			"error": errorMsg,
		},
		RequestID: requestID,
		Timestamp: time.Now(),
	}
	h.sendMessage(client, message)
}

// GetConnectionStats returns connection statistics
func (h *WebSocketHandler) GetConnectionStats() *ConnectionStats {
	return h.connections.GetStats()
}
