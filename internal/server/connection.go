package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/pokerodds/internal/protocol"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Queries a single connection may run at once
	maxInflight = 4
)

// Connection represents a WebSocket client sending msgpack odds requests
type Connection struct {
	conn      *websocket.Conn
	server    *Server
	send      chan []byte
	inflight  chan struct{}
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, server *Server) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:     conn,
		server:   server,
		send:     make(chan []byte, 64),
		inflight: make(chan struct{}, maxInflight),
		logger:   server.logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection and cancels its running queries
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() {
		_ = c.Close() // Ignore close errors during cleanup
		c.wg.Wait()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		if messageType != websocket.BinaryMessage {
			c.sendError("", protocol.CodeInvalidRequest, "expected binary msgpack frame")
			continue
		}
		c.handleMessage(data)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := c.server.clock.NewTicker(pingPeriod, "conn", "ping")
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// handleMessage decodes one frame and answers it asynchronously
func (c *Connection) handleMessage(data []byte) {
	typ, err := protocol.PeekType(data)
	if err != nil {
		c.sendError("", protocol.CodeInvalidRequest, "malformed message")
		return
	}
	if typ != protocol.TypeOddsRequest {
		c.sendError("", protocol.CodeInvalidRequest, "unknown message type: "+typ)
		return
	}

	var req protocol.OddsRequest
	if err := protocol.Unmarshal(data, &req); err != nil {
		c.sendError("", protocol.CodeInvalidRequest, "malformed odds request")
		return
	}
	c.logger.Debug("Received odds request", "id", req.ID, "hole", req.Hole, "community", req.Community, "players", req.Players)

	select {
	case c.inflight <- struct{}{}:
	case <-c.ctx.Done():
		return
	}
	c.wg.Add(1)
	go func() {
		defer func() {
			<-c.inflight
			c.wg.Done()
		}()
		c.answer(&req)
	}()
}

func (c *Connection) answer(req *protocol.OddsRequest) {
	result, err := c.server.Odds(c.ctx, Query{
		Hole:      req.Hole,
		Community: req.Community,
		Players:   req.Players,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuery):
			c.sendError(req.ID, protocol.CodeInvalidRequest, err.Error())
		case errors.Is(err, ErrQueryTimeout):
			c.sendError(req.ID, protocol.CodeTimeout, err.Error())
		case errors.Is(err, context.Canceled):
			// connection closed
		default:
			c.logger.Error("Odds query failed", "id", req.ID, "error", err)
			c.sendError(req.ID, protocol.CodeInternal, "internal error")
		}
		return
	}

	c.sendMessage(&protocol.OddsResponse{
		Type:          protocol.TypeOddsResponse,
		ID:            req.ID,
		Win:           result.Odds.Win,
		Tie:           result.Odds.Tie,
		HandTypeRates: result.Odds.HandRate[:],
		ElapsedMS:     result.Elapsed.Milliseconds(),
		Cached:        result.Cached,
	})
}

func (c *Connection) sendError(id, code, message string) {
	c.sendMessage(&protocol.Error{
		Type:    protocol.TypeError,
		ID:      id,
		Code:    code,
		Message: message,
	})
}

// sendMessage queues a message for the write pump
func (c *Connection) sendMessage(msg any) {
	data, err := protocol.Marshal(msg)
	if err != nil {
		c.logger.Error("Failed to marshal message", "error", err)
		return
	}

	select {
	case c.send <- data:
	case <-c.ctx.Done():
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close() // Ignore close errors
	}
}
