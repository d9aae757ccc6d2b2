// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/infra/config"
	"github.com/runoshun/depgraph/internal/infra/executor"
	"github.com/runoshun/depgraph/internal/infra/graphviz"
	"github.com/runoshun/depgraph/internal/infra/logging"
	"github.com/runoshun/depgraph/internal/infra/taskfile"
	"github.com/runoshun/depgraph/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir         string // Directory the command runs in
	GlobalConfigDir string // Path to global config directory (e.g., ~/.config/depgraph)
}

// newConfig creates a new Config for the given working directory.
func newConfig(dir string) Config {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	cfg := Config{WorkDir: dir}
	if configHome != "" {
		cfg.GlobalConfigDir = domain.GlobalConfigDir(configHome)
	}
	return cfg
}

// Options are settings given on the command line.
type Options struct {
	Stderr     io.Writer // Log destination when no log file is configured
	ConfigPath string    // Local config file to use instead of ./.depgraph.toml
	LogLevel   string    // Overrides [log] level
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	TaskSource    domain.TaskSource
	Engine        domain.GraphEngine
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	logFile   *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// The graph engine is created by Setup once the configuration is known.
func New(dir string) *Container {
	cfg := newConfig(dir)
	return &Container{
		TaskSource:    taskfile.New(),
		Executor:      executor.NewClient(),
		ConfigLoader:  config.NewLoaderWithPaths(domain.LocalConfigPath(dir), cfg.GlobalConfigDir),
		ConfigManager: config.NewManagerWithPaths(domain.LocalConfigPath(dir), cfg.GlobalConfigDir),
		Logger:        slog.New(slog.DiscardHandler),
		Config:        cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, source domain.TaskSource, engine domain.GraphEngine, loader domain.ConfigLoader, logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Container{
		TaskSource:   source,
		Engine:       engine,
		ConfigLoader: loader,
		Logger:       logger,
		Config:       cfg,
	}
}

// Setup loads the configuration and creates the logger and graph engine.
// It returns the configuration warnings.
func (c *Container) Setup(opts Options) ([]string, error) {
	if opts.ConfigPath != "" {
		c.ConfigLoader = config.NewLoaderWithPaths(opts.ConfigPath, c.Config.GlobalConfigDir)
		c.ConfigManager = config.NewManagerWithPaths(opts.ConfigPath, c.Config.GlobalConfigDir)
	}

	cfg, err := c.ConfigLoader.Load()
	if err != nil {
		return nil, err
	}
	c.AppConfig = cfg

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	if cfg.Log.File != "" || opts.Stderr != nil {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		logger, err := logging.Open(cfg.Log.File, logging.ParseLevel(level), stderr)
		if err != nil {
			return nil, err
		}
		c.logFile = logger
		c.Logger = logger.Logger
	}

	if c.Engine == nil {
		runner := c.Executor
		if runner == nil {
			runner = executor.NewClient()
		}
		c.Engine = graphviz.NewEngine(runner, cfg.Render.DotPath)
	}

	return cfg.Warnings, nil
}

// Close releases the log file, if any.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// UseCase factory methods

// RenderGraphUseCase returns a new RenderGraph use case.
func (c *Container) RenderGraphUseCase() *usecase.RenderGraph {
	return usecase.NewRenderGraph(c.TaskSource, c.Engine, c.AppConfig, c.Logger)
}

// ListFormatsUseCase returns a new ListFormats use case.
func (c *Container) ListFormatsUseCase() *usecase.ListFormats {
	return usecase.NewListFormats(c.Engine, c.AppConfig)
}

// ShowTreeUseCase returns a new ShowTree use case.
func (c *Container) ShowTreeUseCase() *usecase.ShowTree {
	return usecase.NewShowTree(c.TaskSource)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
