package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/fsutil"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/validator"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of compiling one document. Graph and Order are set
// only when the document passed validation.
type Result struct {
	Path        string
	Graph       *model.Graph
	Order       []int
	Fingerprint string
	Findings    []validator.Finding
	Err         error
}

// OK reports whether the document compiled and validated.
func (r Result) OK() bool {
	return r.Err == nil
}

// Compile loads, builds and validates the document at path. Failures are
// reported in the result, never returned.
func (a *App) Compile(ctx context.Context, path string) Result {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx).With("path", path)
	ctx = ctxlog.WithLogger(ctx, logger)
	res := Result{Path: path}
	reject := func(err error) Result {
		res.Err = err
		attrs := []any{"error", err}
		if code, ok := gmerr.CodeOf(err); ok {
			kind, _ := gmerr.KindOf(err)
			attrs = append(attrs, "code", code, "kind", kind.String())
		}
		logger.Warn("Goal model rejected.", attrs...)
		return res
	}

	loader, err := a.loaderFor(path)
	if err != nil {
		return reject(err)
	}
	tree, err := loader.Load(ctx, path)
	if err != nil {
		return reject(err)
	}

	g, err := a.builder.Build(ctx, tree)
	if err != nil {
		return reject(fmt.Errorf("build failed: %w", err))
	}

	order, err := validator.Structural(ctx, g)
	if err != nil {
		return reject(fmt.Errorf("structural validation failed: %w", err))
	}

	if a.defs != nil {
		if err := validator.Semantic(ctx, g, a.defs.Tasks, a.defs.Sorts); err != nil {
			return reject(fmt.Errorf("semantic validation failed: %w", err))
		}
	} else {
		logger.Debug("No definitions configured, semantic validation skipped.")
	}
	res.Graph, res.Order = g, order

	if a.config.Lint {
		res.Findings = validator.Lint(ctx, g)
		for _, f := range res.Findings {
			logger.Warn("Lint finding.", "vertex", f.Vertex, "key", f.Key, "message", f.Message)
		}
	}

	res.Fingerprint, err = model.Fingerprint(g)
	if err != nil {
		return reject(err)
	}

	logger.Info("Goal model compiled.", "node_count", g.Len(), "edge_count", g.EdgeCount(), "fingerprint", res.Fingerprint)
	return res
}

// CompileAll compiles every document found under paths concurrently. The
// results follow the resolved file order. Only path resolution errors are
// returned.
func (a *App) CompileAll(ctx context.Context, paths []string) ([]Result, error) {
	files, err := fsutil.ResolvePaths(paths, a.Extensions()...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Documents resolved.", "count", len(files))

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(a.withLogger(ctx))
	g.SetLimit(a.config.Workers)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Path: file, Err: err}
				return nil
			}
			results[i] = a.Compile(gctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
