package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// DebugServer exposes a runner's state and frame timings over HTTP:
//
//	GET /health   liveness
//	GET /state    latest RootSnapshot
//	GET /frames   FrameTimeline
//	GET /picture  drawing operations of the last paint
//
// Handlers only read snapshots, the last picture and the trace buffer, so
// they never touch the render object from the server goroutine.
type DebugServer struct {
	runner *Runner
	logger *slog.Logger
	router *gin.Engine

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewDebugServer creates a server for runner. It does not listen until
// Start is called.
func NewDebugServer(runner *Runner, logger *slog.Logger) *DebugServer {
	if logger == nil {
		logger = slog.Default()
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	s := &DebugServer{runner: runner, logger: logger, router: router}
	router.GET("/health", s.handleHealth)
	router.GET("/state", s.handleState)
	router.GET("/frames", s.handleFrames)
	router.GET("/picture", s.handlePicture)
	return s
}

// Router returns the HTTP handler, for tests and custom listeners.
func (s *DebugServer) Router() http.Handler {
	return s.router
}

// Start listens on addr and serves in the background. It returns the bound
// address, which differs from addr when addr asks for an ephemeral port.
func (s *DebugServer) Start(addr string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String(), nil
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("debug server listen: %w", err)
	}
	server := &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}
	s.server, s.listener = server, listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("debug server stopped", "error", err)
		}
	}()
	s.logger.Info("debug server listening", "addr", listener.Addr().String())
	return listener.Addr().String(), nil
}

// Close shuts the server down, waiting for in-flight requests until ctx
// expires.
func (s *DebugServer) Close(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.server, s.listener = nil, nil
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (s *DebugServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *DebugServer) handleState(c *gin.Context) {
	snap := s.runner.Snapshot()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no state published"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *DebugServer) handleFrames(c *gin.Context) {
	c.JSON(http.StatusOK, s.runner.Trace().Timeline())
}

func (s *DebugServer) handlePicture(c *gin.Context) {
	picture := s.runner.LastPicture()
	if picture == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "nothing painted yet"})
		return
	}
	size := picture.Size()
	c.JSON(http.StatusOK, gin.H{
		"size": SafeSize{Width: SafeFloat(size.Width), Height: SafeFloat(size.Height)},
		"ops":  SerializeDisplayList(picture),
	})
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("debug request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
