package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
)

// ParseEdges resolves links against vertices and records the parent/child
// relations of refinement links on them. Refinement links are written child
// to parent; the resulting edge points from the parent to the child.
func (b *Builder) ParseEdges(ctx context.Context, links []config.RawLink, vertices []model.Vertex) ([]model.Edge, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting edge resolution pass.", "link_count", len(links))

	byID := make(map[string]int, len(vertices))
	for i, v := range vertices {
		if _, ok := byID[v.ID]; !ok {
			byID[v.ID] = i
		}
	}

	edges := make([]model.Edge, 0, len(links))
	for i, link := range links {
		subject := link.ID
		if subject == "" {
			subject = fmt.Sprintf("links[%d]", i)
		}
		linkLogger := logger.With("link_id", subject)

		if err := b.validate.Struct(link); err != nil {
			return nil, gmerr.NewMalformedNode(subject, describeValidation(err), err)
		}

		kind, err := b.reg.LinkKind(link.Type)
		if err != nil {
			return nil, withSubject(err, subject)
		}

		src, ok := byID[link.Source]
		if !ok {
			return nil, gmerr.NewReference(gmerr.ErrCodeUnresolvedReference, subject, link.Source)
		}
		tgt, ok := byID[link.Target]
		if !ok {
			return nil, gmerr.NewReference(gmerr.ErrCodeUnresolvedReference, subject, link.Target)
		}
		if src == tgt {
			return nil, gmerr.NewRule(gmerr.ErrCodeSelfLink, subject, "no-self-link",
				fmt.Sprintf("link connects node %q to itself", link.Source))
		}

		edge := model.Edge{
			ID:     link.ID,
			Type:   link.Type,
			Kind:   kind,
			Source: link.Source,
			Target: link.Target,
			From:   src,
			To:     tgt,
		}

		if kind.Hierarchical() {
			child, parent := src, tgt
			if vertices[child].HasParent() {
				return nil, gmerr.NewRule(gmerr.ErrCodeMultipleParents, vertices[child].ID, "single-parent",
					fmt.Sprintf("node already refines %q, link %q adds %q", vertices[vertices[child].Parent].ID, subject, vertices[parent].ID))
			}
			vertices[child].Parent = parent
			vertices[parent].Children = append(vertices[parent].Children, child)
			edge.From, edge.To = parent, child
			linkLogger.Debug("Linked refinement.", "parent", vertices[parent].Name, "child", vertices[child].Name)
		} else {
			linkLogger.Debug("Linked dependency.", "from", vertices[src].Name, "to", vertices[tgt].Name)
		}

		edges = append(edges, edge)
	}

	logger.Debug("Finished edge resolution pass.", "edge_count", len(edges))
	return edges, nil
}
