package resultstore

import (
	"context"
	"sync"

	"github.com/specialistvlad/gmc/internal/ctxlog"
)

// Entry is the remembered outcome of one document.
type Entry struct {
	Path        string
	Fingerprint string
	// Error is the rendered failure, empty on success.
	Error string
}

// Store is the interface for remembering compile outcomes.
//
// Implementations MUST be safe for concurrent use.
type Store interface {
	// Record stores e and reports whether it differs from the previous
	// entry for the same path.
	Record(ctx context.Context, e Entry) bool
	// Forget drops the entry for path.
	Forget(ctx context.Context, path string)
	// Len returns the number of remembered documents.
	Len() int
}

// Memory is an in-memory implementation of Store.
type Memory struct {
	entries sync.Map // Key: path, Value: Entry
}

// NewMemory creates a new, empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Record implements Store.
func (m *Memory) Record(ctx context.Context, e Entry) bool {
	prev, loaded := m.entries.Swap(e.Path, e)
	changed := !loaded || prev.(Entry) != e
	if !changed {
		ctxlog.FromContext(ctx).Debug("Document unchanged.", "path", e.Path)
	}
	return changed
}

// Forget implements Store.
func (m *Memory) Forget(_ context.Context, path string) {
	m.entries.Delete(path)
}

// Len implements Store.
func (m *Memory) Len() int {
	n := 0
	m.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
