// Package gin exposes the concurso scraper over HTTP using the gin framework.
package gin

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/concursos"
	"github.com/gin-gonic/gin"
)

// Handler serves the state registry and per-state listings.
type Handler struct {
	service concursos.ConcursoService
}

// NewHandler creates a new Handler backed by service.
func NewHandler(service concursos.ConcursoService) *Handler {
	return &Handler{service: service}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/states", h.ListStates)
	api.GET("/concursos/:state", h.GetConcursos)
	r.GET("/health", h.Health)
}

// ListStates handles GET /api/states.
func (h *Handler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, concursos.States())
}

// GetConcursos handles GET /api/concursos/:state.
func (h *Handler) GetConcursos(c *gin.Context) {
	state := c.Param("state")

	data, err := h.service.Scrape(c.Request.Context(), state)
	if err != nil {
		_ = c.Error(err)
		c.JSON(statusFor(err), gin.H{"error": concursos.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, data)
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func statusFor(err error) int {
	var scrapeErr *concursos.ScrapeError
	switch {
	case errors.As(err, &scrapeErr):
		return http.StatusBadGateway
	case concursos.ErrorCode(err) == concursos.EINVALID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewRouter creates a gin engine with panic recovery, request logging and the
// API routes. A nil logger disables request logging.
func NewRouter(h *Handler, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(LoggerMiddleware(logger))
	}
	h.Register(router)
	return router
}

// LoggerMiddleware logs method, path, status and duration of every request.
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		attrs := []any{
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.Errors())
		}

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.Request.Context(), level, "request", attrs...)
	}
}
