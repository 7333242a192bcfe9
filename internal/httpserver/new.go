package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"catalog-api/internal/middleware"
	"catalog-api/internal/model"
	"catalog-api/pkg/log"
	"catalog-api/pkg/storage"
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

	// Persistence
	db      *sqlx.DB
	storage storage.Storage

	// List endpoints
	queryOpts     model.QueryOptions
	maxUploadSize int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB      *sqlx.DB
	Storage storage.Storage

	Query          model.QueryOptions
	RequestsPerMin int
	MaxUploadSize  int64
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            middleware.New(logger, cfg.RequestsPerMin),
		db:            cfg.DB,
		storage:       cfg.Storage,
		queryOpts:     cfg.Query,
		maxUploadSize: cfg.MaxUploadSize,
	}

	if err := srv.validate(); err != nil {
		return nil, err
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	return nil
}
