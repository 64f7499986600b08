package builder

import (
	"github.com/go-playground/validator/v10"
	"github.com/specialistvlad/gmc/internal/classify"
	"github.com/specialistvlad/gmc/internal/registry"
)

// Builder turns raw document records into a graph. It is safe for
// concurrent use by independent builds.
type Builder struct {
	reg        *registry.Registry
	classifier *classify.Classifier
	validate   *validator.Validate
	workers    int
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers sets the number of goroutines used to ingest nodes. Values
// below 2 keep ingest sequential.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = n
	}
}

// New creates a Builder resolving tokens and types through reg.
func New(reg *registry.Registry, opts ...Option) *Builder {
	b := &Builder{
		reg:        reg,
		classifier: classify.New(reg),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		workers:    1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
