package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // configure an allowlist before exposing this beyond localhost
	},
}

// WSMessage is a client request over the WebSocket connection.
type WSMessage struct {
	Type    string          `json:"type"` // "value", "action", "ping"
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// WSResponse is a server reply over the WebSocket connection.
type WSResponse struct {
	Type    string      `json:"type"` // "result", "error", "pong"
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// wsClient is a connected WebSocket client with a separate read pump and
// write pump goroutine.
type wsClient struct {
	conn     *websocket.Conn
	handlers *Handlers
	sendChan chan WSResponse
	mu       sync.Mutex
}

// WebSocket upgrades the connection and serves value/action queries over
// it for the life of the socket.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	client := &wsClient{conn: conn, handlers: h, sendChan: make(chan WSResponse, 256)}
	go client.writePump()
	client.readPump()
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *wsClient) readPump() {
	defer func() {
		close(c.sendChan)
		c.conn.Close()
	}()
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.handleMessage(msg)
	}
}

func (c *wsClient) handleMessage(msg WSMessage) {
	switch msg.Type {
	case "ping":
		c.sendChan <- WSResponse{Type: "pong", ID: msg.ID}
	case "value":
		var req ValueRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
			return
		}
		v, err := c.handlers.solver.Value(req.State)
		if err != nil {
			c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
			return
		}
		c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: ValueResponse{State: req.State, Value: v}}
	case "action":
		var req ActionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
			return
		}
		action, err := c.handlers.solver.BestAction(req.State, req.Hand, req.RerollsRemaining)
		if err != nil {
			c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
			return
		}
		c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: ActionResponse{
			IsHold:   action.IsHold,
			HoldMask: action.HoldMask,
			Category: action.Category,
			Value:    action.Value,
		}}
	default:
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "unknown message type: " + msg.Type}
	}
}
