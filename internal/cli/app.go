// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/panedrawer/internal/application/usecase"
	"github.com/bnema/panedrawer/internal/cli/styles"
	"github.com/bnema/panedrawer/internal/domain/build"
	"github.com/bnema/panedrawer/internal/infrastructure/config"
	"github.com/bnema/panedrawer/internal/logging"
)

// Options selects how the App is wired.
type Options struct {
	// ConfigPath overrides the XDG config lookup.
	ConfigPath string
	// LogToFile sends logs to the state directory instead of stderr. Commands
	// that own the terminal set it.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	SimulateUC     *usecase.SimulatePaneUseCase
	GetConfigSchUC *usecase.GetConfigSchemaUseCase

	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads configuration and builds the logger and use cases.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.ConfigFromEnv(cfg.Logging.LoggerConfig())
	if opts.LogToFile {
		if logCfg.File, err = config.GetLogFile(); err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
	}
	logger, closer, err := logging.NewFile(logCfg)
	if err != nil {
		return nil, fmt.Errorf("open logger: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("level", logCfg.Level.String()).
		Msg("cli initialized")

	return &App{
		Config:         cfg,
		Manager:        mgr,
		Theme:          styles.NewTheme(),
		SimulateUC:     usecase.NewSimulatePaneUseCase(),
		GetConfigSchUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:            ctx,
		logCloser:      closer,
	}, nil
}

func newManager(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerForFile(path), nil
	}
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	return mgr, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
