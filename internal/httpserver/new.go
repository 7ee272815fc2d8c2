package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-sync/config"
	collectionHTTP "todo-sync/internal/collection/delivery/http"
	"todo-sync/internal/middleware"
	"todo-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Collection domain
	collectionHandler collectionHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Collection domain
	CollectionHandler collectionHTTP.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		collectionHandler: cfg.CollectionHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.mw == (middleware.Middleware{}) {
		srv.mw = middleware.New(logger, config.RateLimitConfig{})
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
