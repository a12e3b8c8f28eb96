package bootstrap

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
	portfoliohttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Logger      zerolog.Logger
	Stores      *Stores

	// Redis is optional; without it listings are served uncached.
	Redis *redis.Client
	Cache cache.Cache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestIDMiddleware(dep.Logger),
		// Metrics wraps Recovery so recovered panics count as 500s.
		middleware.Metrics(),
		middleware.Recovery(),
		cors.New(corsConfig(dep.CORSOrigins)),
	)

	var cachePinger httpapi.Pinger
	if dep.Redis != nil {
		cachePinger = httpapi.PingFunc(func(ctx context.Context) error {
			return dep.Redis.Ping(ctx).Err()
		})
	}
	var dbPinger httpapi.Pinger
	if dep.Stores.DB != nil {
		dbPinger = dep.Stores.DB
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dbPinger, dep.Stores.InMemory(), cachePinger)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	c := dep.Cache
	if c == nil {
		c = cache.Noop{}
	}
	handler := portfoliohttp.New(
		service.NewProfileService(dep.Stores.Profiles, c, dep.Logger),
		service.NewProjectService(dep.Stores.Projects, c, dep.Logger),
		service.NewExperienceService(dep.Stores.Experiences, c, dep.Logger),
	)
	handler.Register(r)
	handler.Register(r.Group("/api"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
