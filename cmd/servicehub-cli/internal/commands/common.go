package commands

import (
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the configuration named by the inherited --config flag
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return cfg, nil
}

// openRepositories connects to the configured database and builds every repository.
// Callers close the returned connection with persistence.CloseDB.
func openRepositories(cfg *config.RestConfig, log logger.Logger) (*gorm.DB, *persistence.Repositories, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, err
	}
	return db, repos, nil
}
