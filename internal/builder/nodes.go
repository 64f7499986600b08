package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/gmexpr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/nodeid"
	"golang.org/x/sync/errgroup"
)

// ParseNodes ingests raw node records in document order. The returned
// vertices have no parent or children yet.
func (b *Builder) ParseNodes(ctx context.Context, nodes []config.RawNode) ([]model.Vertex, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting node ingest pass.", "workers", b.workers)

	vertices := make([]model.Vertex, len(nodes))
	errs := make([]error, len(nodes))

	if b.workers > 1 && len(nodes) > 1 {
		var g errgroup.Group
		g.SetLimit(b.workers)
		for i := range nodes {
			g.Go(func() error {
				vertices[i], errs[i] = b.parseNode(i, nodes[i])
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range nodes {
			vertices[i], errs[i] = b.parseNode(i, nodes[i])
			if errs[i] != nil {
				break
			}
		}
	}

	// The first failure in document order wins, whatever the scheduling was.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if err := checkUnique(vertices); err != nil {
		return nil, err
	}

	logger.Debug("Finished node ingest pass.", "node_count", len(vertices))
	return vertices, nil
}

func (b *Builder) parseNode(i int, raw config.RawNode) (model.Vertex, error) {
	subject := raw.ID
	if subject == "" {
		subject = fmt.Sprintf("nodes[%d]", i)
	}

	if err := b.validate.Struct(raw); err != nil {
		return model.Vertex{}, gmerr.NewMalformedNode(subject, describeValidation(err), err)
	}

	kind, err := b.reg.NodeKind(raw.Type)
	if err != nil {
		return model.Vertex{}, withSubject(err, subject)
	}

	name := nodeid.ShortID(raw.Text)
	if name == "" {
		return model.Vertex{}, gmerr.NewMalformedNode(subject, "label has no identifier", nil)
	}

	v := model.NewVertex(raw.ID, name, raw.Text, kind)
	v.X, v.Y = raw.X, raw.Y

	if err := b.classifier.Classify(&v, raw.Properties); err != nil {
		return model.Vertex{}, gmerr.NewMalformedNode(subject, "invalid annotation", err)
	}

	// Record fields take precedence over annotations of the same name.
	if raw.Periodic != nil {
		v.Periodic = *raw.Periodic
	}
	if raw.Period != nil {
		v.Period = *raw.Period
	}
	if raw.Deadline != nil {
		v.Deadline = *raw.Deadline
	}
	if raw.Group != nil {
		v.Group = *raw.Group
	}
	if raw.Divisible != nil {
		v.Divisible = *raw.Divisible
	}
	if strings.TrimSpace(raw.RobotNumber) != "" {
		rc, err := gmexpr.ParseRobotNumber(raw.RobotNumber)
		if err != nil {
			return model.Vertex{}, gmerr.NewMalformedNode(subject, "invalid robot number", err)
		}
		v.RobotCount = &rc
	}

	return v, nil
}

// checkUnique rejects duplicated document ids and short names. Short names
// that spell the same address, such as "G1" and "G01", count as duplicates.
func checkUnique(vertices []model.Vertex) error {
	ids := make(map[string]struct{}, len(vertices))
	names := make(map[string]string, len(vertices))
	for _, v := range vertices {
		if _, dup := ids[v.ID]; dup {
			return gmerr.NewRule(gmerr.ErrCodeDuplicateID, v.ID, "unique-id",
				fmt.Sprintf("node id %q is used more than once", v.ID))
		}
		ids[v.ID] = struct{}{}

		key := nameKey(v.Name)
		if other, dup := names[key]; dup {
			return gmerr.NewRule(gmerr.ErrCodeDuplicateID, v.ID, "unique-name",
				fmt.Sprintf("name %q is already used by node %q", v.Name, other))
		}
		names[key] = v.ID
	}
	return nil
}

// nameKey returns the canonical spelling of a short name, or the name itself
// when it does not parse.
func nameKey(name string) string {
	if addr, err := nodeid.Parse(name); err == nil {
		return addr.String()
	}
	return name
}

// describeValidation turns struct validation failures into a message naming
// the offending fields.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// withSubject attaches subject to a structured error that has none.
func withSubject(err error, subject string) error {
	var gerr *gmerr.Error
	if errors.As(err, &gerr) && gerr.Subject == "" {
		gerr.Subject = subject
	}
	return err
}
