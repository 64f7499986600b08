package builder

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/model"
)

// Build constructs the ordered graph for a document.
func (b *Builder) Build(ctx context.Context, tree *config.Tree) (*model.Graph, error) {
	if tree == nil {
		return nil, errors.New("build: nil tree")
	}

	logger := ctxlog.FromContext(ctx).With("build_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Build: Starting graph construction.", "node_count", len(tree.Nodes), "link_count", len(tree.Links))

	vertices, err := b.ParseNodes(ctx, tree.Nodes)
	if err != nil {
		logger.Debug("Build: Node ingest failed.", "error", err)
		return nil, err
	}
	logger.Debug("Build: Node ingest complete.", "node_count", len(vertices))

	edges, err := b.ParseEdges(ctx, tree.Links, vertices)
	if err != nil {
		logger.Debug("Build: Edge resolution failed.", "error", err)
		return nil, err
	}
	logger.Debug("Build: Edge resolution complete.", "edge_count", len(edges))

	vertices, edges = canonicalOrder(vertices, edges)
	logger.Debug("Build: Canonical ordering complete.")

	g := model.New(vertices, edges)
	logger.Info("Build: Graph construction successful.", "node_count", g.Len(), "edge_count", g.EdgeCount())
	return g, nil
}
