// Package server exposes odds queries over HTTP and a msgpack websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru"
)

// Server represents the odds HTTP and WebSocket server
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock

	workers        int
	defaultPlayers int
	queryTimeout   time.Duration
	cacheSize      int

	stagesMu sync.Mutex
	stages   *lru.Cache // canonical stage key -> *odds.Stage

	mu          sync.Mutex
	connections map[*Connection]bool
	httpServer  *http.Server
}

// Option configures a Server
type Option func(*Server)

// WithClock sets the clock used for timing and timeouts
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// WithWorkers limits the goroutines used per query; 0 means GOMAXPROCS
func WithWorkers(n int) Option {
	return func(s *Server) { s.workers = n }
}

// WithDefaultPlayers sets the player count used when a request omits it
func WithDefaultPlayers(n int) Option {
	return func(s *Server) { s.defaultPlayers = n }
}

// WithQueryTimeout bounds how long a single query may enumerate
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Server) { s.queryTimeout = d }
}

// WithCacheSize sets how many stages keep their enumerated populations
func WithCacheSize(n int) Option {
	return func(s *Server) { s.cacheSize = n }
}

// NewServer creates a new odds server
func NewServer(addr string, logger *log.Logger, opts ...Option) (*Server, error) {
	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:         logger.WithPrefix("server"),
		clock:          quartz.NewReal(),
		defaultPlayers: 2,
		queryTimeout:   30 * time.Second,
		cacheSize:      1024,
		connections:    make(map[*Connection]bool),
	}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.New(s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage cache: %w", err)
	}
	s.stages = cache
	return s, nil
}

// Handler returns the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/odds", s.handleOdds)
	mux.HandleFunc("/winrate", s.handleWinRate)
	return mux
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting odds server", "addr", s.addr, "cache", s.cacheSize, "timeout", s.queryTimeout)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and closes open websockets
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	conns := make([]*Connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close() // Ignore close errors during shutdown
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) register(conn *Connection) {
	s.mu.Lock()
	s.connections[conn] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)
}

func (s *Server) unregister(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "total", total)
}

// ConnectionCount returns the number of open websocket connections
func (s *Server) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.connections)
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s)
	s.register(client)
	client.Start()

	go func() {
		<-client.ctx.Done()
		s.unregister(client)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}
