package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/gmc/internal/builder"
	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/definitions"
	"github.com/specialistvlad/gmc/internal/gmhcl"
	"github.com/specialistvlad/gmc/internal/pistar"
	"github.com/specialistvlad/gmc/internal/registry"
	"github.com/specialistvlad/gmc/internal/resultstore"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	builder  *builder.Builder
	defs     *definitions.Set
	loaders  map[string]config.Loader
	results  resultstore.Store
}

// NewApp is the constructor for the main application. Goal model reports
// are written to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.NewDefault()
	reg.StrictTypes = cfg.StrictTypes
	if err := reg.Extend(ctx, cfg.Vocabulary); err != nil {
		return nil, fmt.Errorf("failed to extend vocabulary: %w", err)
	}

	var defs *definitions.Set
	if cfg.DefinitionsPath != "" {
		var err error
		defs, err = definitions.NewLoader(reg.Types).Load(ctx, cfg.DefinitionsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load definitions: %w", err)
		}
	}

	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.", "domain_types", reg.Types.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		builder:  builder.New(reg, builder.WithWorkers(cfg.Workers)),
		defs:     defs,
		loaders: map[string]config.Loader{
			".json": pistar.NewLoader(),
			".hcl":  gmhcl.NewLoader(),
		},
		results: resultstore.NewMemory(),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Extensions lists the document extensions the app can load.
func (a *App) Extensions() []string {
	return []string{".json", ".hcl"}
}

func (a *App) loaderFor(path string) (config.Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := a.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("no loader for %q files", ext)
	}
	return l, nil
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
