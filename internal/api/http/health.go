package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusUp       = "up"
	StatusDown     = "down"
	StatusDisabled = "disabled"
	StatusMemory   = "memory"
)

// Pinger is satisfied by *sql.DB and by small adapters around other clients.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db"`
	Cache     string    `json:"cache"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          Pinger
	cache       Pinger
	inMemory    bool
}

// NewHealthHandler reports db as "memory" when inMemory is set; a nil cache
// reports "disabled".
func NewHealthHandler(serviceName, version string, db Pinger, inMemory bool, cache Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		cache:       cache,
		inMemory:    inMemory,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := StatusDisabled
	switch {
	case h.inMemory:
		dbStatus = StatusMemory
	case h.db != nil:
		dbStatus = ping(c.Request.Context(), h.db)
	}

	cacheStatus := StatusDisabled
	if h.cache != nil {
		cacheStatus = ping(c.Request.Context(), h.cache)
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Cache:     cacheStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}

func ping(ctx context.Context, p Pinger) string {
	pingCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := p.PingContext(pingCtx); err != nil {
		return StatusDown
	}
	return StatusUp
}
