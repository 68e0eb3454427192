package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mishasvintus/mergington_activities/internal/handler"
	"github.com/mishasvintus/mergington_activities/internal/logger"
)

// Options configures the engine beyond the API handlers.
type Options struct {
	StaticDir string
	Logger    *zap.Logger
	Gatherer  prometheus.Gatherer
}

// SetupRoutes configures all routes.
func SetupRoutes(activityHandler *handler.ActivityHandler, opts Options) *gin.Engine {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}

	r := gin.New()
	r.Use(logger.GinMiddleware(l), gin.Recovery())

	r.GET("/", handler.RedirectToIndex)

	// Activity endpoints
	r.GET("/activities", activityHandler.ListActivities)
	r.POST("/activities/:activity_name/signup", activityHandler.Signup)
	r.DELETE("/activities/:activity_name/signup", activityHandler.Unregister)

	// Front-end
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	// Operational endpoints
	r.GET("/healthz", handler.Healthz)
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return r
}
