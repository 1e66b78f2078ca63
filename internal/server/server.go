package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wires the detection pipeline to gin HTTP routes.
type Server struct {
	cfg     *Config
	engine  *gin.Engine
	version string
}

// New creates a server with all routes registered. It does not start
// listening; pass Handler() to an http.Server.
func New(cfg *Config, version string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestSizeLimiter(cfg.MaxUploadBytes))

	s := &Server{
		cfg:     cfg,
		engine:  engine,
		version: version,
	}
	s.routes()
	return s
}

// Handler returns the root http.Handler for the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestSizeLimiter caps request bodies before any handler reads them.
// Multipart overhead gets a small allowance on top of the image limit.
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	const multipartSlack = 16 * 1024
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartSlack)
		c.Next()
	}
}
