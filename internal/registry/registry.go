package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/vartype"
)

const (
	parserNodeType = "node-type"
	parserLinkType = "link-type"
)

// Registry holds the token vocabulary and the domain type registry for a
// single compiler instance. It is read-only once a build starts.
type Registry struct {
	nodeKinds map[string]model.Kind
	linkKinds map[string]model.EdgeKind

	// Types canonicalizes variable types.
	Types *vartype.Registry

	// StrictTypes makes the classifier canonicalize declared variable types
	// and fail on unknown ones.
	StrictTypes bool
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		nodeKinds: make(map[string]model.Kind),
		linkKinds: make(map[string]model.EdgeKind),
		Types:     vartype.NewRegistry(),
	}
}

// NewDefault creates a Registry holding the builtin goal-model vocabulary.
func NewDefault() *Registry {
	r := New()
	for token, kind := range builtinNodeTypes {
		r.RegisterNodeType(token, kind)
	}
	for token, kind := range builtinLinkTypes {
		r.RegisterLinkType(token, kind)
	}
	return r
}

// RegisterNodeType maps a node type token to a vertex kind. Tokens are
// matched case-insensitively. It panics if the token is already registered.
func (r *Registry) RegisterNodeType(token string, kind model.Kind) {
	if err := r.addNodeType(token, kind); err != nil {
		panic(err.Error())
	}
}

// RegisterLinkType maps a link type token to an edge kind. Tokens are
// matched case-insensitively. It panics if the token is already registered.
func (r *Registry) RegisterLinkType(token string, kind model.EdgeKind) {
	if err := r.addLinkType(token, kind); err != nil {
		panic(err.Error())
	}
}

func (r *Registry) addNodeType(token string, kind model.Kind) error {
	key := normalizeToken(token)
	if _, exists := r.nodeKinds[key]; exists {
		return fmt.Errorf("node type '%s' already registered", token)
	}
	slog.Debug("Registering node type.", "token", token, "kind", kind)
	r.nodeKinds[key] = kind
	return nil
}

func (r *Registry) addLinkType(token string, kind model.EdgeKind) error {
	key := normalizeToken(token)
	if _, exists := r.linkKinds[key]; exists {
		return fmt.Errorf("link type '%s' already registered", token)
	}
	slog.Debug("Registering link type.", "token", token, "kind", kind)
	r.linkKinds[key] = kind
	return nil
}

// NodeKind resolves a node type token.
func (r *Registry) NodeKind(token string) (model.Kind, error) {
	kind, ok := r.nodeKinds[normalizeToken(token)]
	if !ok {
		return 0, gmerr.NewUnknownType(parserNodeType, token)
	}
	return kind, nil
}

// LinkKind resolves a link type token.
func (r *Registry) LinkKind(token string) (model.EdgeKind, error) {
	kind, ok := r.linkKinds[normalizeToken(token)]
	if !ok {
		return 0, gmerr.NewUnknownType(parserLinkType, token)
	}
	return kind, nil
}

// CanonicalType returns the canonical spelling of a declared variable type
// when strict typing is on, and the trimmed token otherwise.
func (r *Registry) CanonicalType(token string) (string, error) {
	if !r.StrictTypes {
		return strings.TrimSpace(token), nil
	}
	return r.Types.Normalize(token)
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
