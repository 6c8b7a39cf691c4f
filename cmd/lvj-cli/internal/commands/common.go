package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Khaledaun/LVJAPP/internal/app"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/bootstrap"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/notifier"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// environment lazily loads the configuration and logger shared by all commands.
type environment struct {
	configPath string
	cfg        *config.RestConfig
	log        logger.Logger
}

func (e *environment) load() error {
	if e.cfg != nil {
		return nil
	}

	path := e.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger instance: %w", err)
	}

	e.cfg = cfg
	e.log = log
	return nil
}

func (e *environment) openStorage(ctx context.Context) (*bootstrap.Storage, error) {
	if err := e.load(); err != nil {
		return nil, err
	}
	return bootstrap.OpenStorage(ctx, e.cfg, e.log)
}

// services builds the application services. Notices are only logged from the CLI.
func (e *environment) services(ctx context.Context) (*app.Services, *bootstrap.Storage, error) {
	storage, err := e.openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	services, err := app.NewServices(storage.Repos, notifier.NewLogNotifier(e.log), e.cfg, e.log)
	if err != nil {
		_ = storage.Close()
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	return services, storage, nil
}

func closeStorage(storage *bootstrap.Storage, log logger.Logger) {
	if err := storage.Close(); err != nil {
		log.Warn("Failed to close storage: ", err)
	}
}

// InitCommands registers every command group on rootCmd.
func InitCommands(rootCmd *cobra.Command) error {
	env := &environment{}
	rootCmd.PersistentFlags().StringVar(&env.configPath, "config", "", "Path to the YAML configuration file")

	initMigrateCommands(rootCmd, env)
	initSeedCommands(rootCmd, env)
	initSessionCommands(rootCmd, env)
	initConfigCommands(rootCmd, env)
	initServiceTypeCommands(rootCmd, env)
	return nil
}
