// Package httpapi is the HTTP/JSON surface of the exercise tracker, built on
// gin.
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/metrics"
	"github.com/gin-gonic/gin"
)

// Options wires the router. Ready backs /readyz and may be nil.
type Options struct {
	Users         UserService
	Logs          LogService
	Logger        logging.Logger
	AllowedOrigin string
	Ready         func(context.Context) error
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(o Options) *gin.Engine {
	h := &handler{users: o.Users, logs: o.Logs, ready: o.Ready}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(o.Logger.With("module", "http_server")))
	r.Use(metrics.Middleware())
	r.Use(CORS(o.AllowedOrigin))

	r.GET("/healthz", h.healthz)
	r.GET("/readyz", h.readyz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.GET("/clear", h.clear)
	api.GET("/users", h.listUsers)
	api.POST("/users", h.createUser)

	user := api.Group("/users/:_id", trimID)
	user.GET("", h.getUser)
	user.POST("/exercises", h.addExercise)
	user.GET("/logs", h.getLog)
	user.GET("/logs/export", h.exportLog)

	return r
}
