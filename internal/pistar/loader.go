package pistar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/ctxlog"
)

type document struct {
	Actors  []actor `json:"actors"`
	Orphans []node  `json:"orphans"`
	Links   []link  `json:"links"`
}

type actor struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Nodes []node `json:"nodes"`
}

type node struct {
	ID               string     `json:"id"`
	Text             string     `json:"text"`
	Type             string     `json:"type"`
	X                float64    `json:"x"`
	Y                float64    `json:"y"`
	CustomProperties properties `json:"customProperties"`
}

type link struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// properties keeps the customProperties object in document order.
type properties []config.Property

func (p *properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("customProperties must be an object, got %v", tok)
	}

	var out properties
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected customProperties key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("customProperties %q: %w", key, err)
		}
		value, err := propertyText(raw)
		if err != nil {
			return fmt.Errorf("customProperties %q: %w", key, err)
		}
		out = append(out, config.Property{Key: key, Value: value})
	}
	*p = out
	return nil
}

// propertyText renders a property value as text. Strings are unquoted,
// null becomes empty and anything else keeps its JSON spelling.
func propertyText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		return "", nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		return string(raw), nil
	}
}

// Loader reads piStar JSON exports.
type Loader struct{}

// NewLoader creates a new piStar loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the export at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open goal model %s: %w", path, err)
	}
	defer f.Close()

	tree, err := l.Decode(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode goal model %s: %w", path, err)
	}
	return tree, nil
}

// Decode reads an export from r. Actor nodes come first, in actor order,
// followed by orphan nodes.
func (l *Loader) Decode(ctx context.Context, r io.Reader) (*config.Tree, error) {
	logger := ctxlog.FromContext(ctx)

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	tree := &config.Tree{}
	for _, a := range doc.Actors {
		logger.Debug("Reading actor.", "actor", strings.TrimSpace(a.Text), "nodes", len(a.Nodes))
		for _, n := range a.Nodes {
			tree.Nodes = append(tree.Nodes, n.raw())
		}
	}
	for _, n := range doc.Orphans {
		tree.Nodes = append(tree.Nodes, n.raw())
	}
	for _, lk := range doc.Links {
		tree.Links = append(tree.Links, config.RawLink{
			ID:     lk.ID,
			Type:   lk.Type,
			Source: lk.Source,
			Target: lk.Target,
		})
	}

	logger.Debug("piStar document decoded.", "nodes", len(tree.Nodes), "links", len(tree.Links))
	return tree, nil
}

func (n node) raw() config.RawNode {
	return config.RawNode{
		ID:         n.ID,
		Text:       n.Text,
		Type:       n.Type,
		X:          n.X,
		Y:          n.Y,
		Properties: []config.Property(n.CustomProperties),
	}
}
