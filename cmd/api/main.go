package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog-api/config"
	_ "catalog-api/docs" // Swagger docs
	"catalog-api/internal/httpserver"
	"catalog-api/internal/model"
	"catalog-api/pkg/database"
	"catalog-api/pkg/datemath"
	"catalog-api/pkg/log"
	"catalog-api/pkg/storage"
)

// @title       Catalog API
// @description CRUD catalog of countries, companies, products and files with a shared filter, sort and paging query string.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Catalog API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Connect(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Connected to %s", cfg.Database.Driver)

	if cfg.Database.Migrate {
		if err := database.Migrate(db); err != nil {
			logger.Error(ctx, "Failed to run migrations: ", err)
			return
		}
		logger.Info(ctx, "Migrations applied")
	}

	// 4. Blob storage (optional)
	st, err := storage.New(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}
	if st.Enabled() {
		if err := storage.EnsureBucket(ctx, st); err != nil {
			logger.Warnf(ctx, "Bucket %q not available: %v", cfg.Storage.Bucket, err)
		}
	} else {
		logger.Warn(ctx, "Storage endpoint not configured, file uploads are disabled")
	}

	dates, err := datemath.NewResolver(cfg.Query.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to initialize date resolver: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Storage:     st,
		Query: model.QueryOptions{
			DefaultLimit:  cfg.Query.DefaultLimit,
			MaxLimit:      cfg.Query.MaxLimit,
			CaseSensitive: cfg.Query.CaseSensitive,
			LogRejections: cfg.Query.LogRejections,
			Dates:         dates,
		},
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		MaxUploadSize:  cfg.Storage.MaxUploadSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
