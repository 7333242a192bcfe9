package main

import (
	"context"
	"fmt"
	"os"

	"catalog-api/config"
	"catalog-api/pkg/database"
	"catalog-api/pkg/log"
)

// main applies the embedded schema migrations and exits. Useful when the API
// runs with database.migrate disabled.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	db, err := database.Connect(ctx, database.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error(ctx, "Migration failed: ", err)
		db.Close()
		os.Exit(1)
	}
	logger.Infof(ctx, "Schema for %s is up to date", cfg.Database.Driver)
}
