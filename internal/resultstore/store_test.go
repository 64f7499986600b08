package resultstore

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Record(t *testing.T) {
	ctx := t.Context()
	s := NewMemory()

	first := Entry{Path: "a.hcl", Fingerprint: "f1"}
	assert.True(t, s.Record(ctx, first), "first outcome is a change")
	assert.False(t, s.Record(ctx, first), "same outcome is not a change")

	failed := Entry{Path: "a.hcl", Error: "boom"}
	assert.True(t, s.Record(ctx, failed))

	require.Equal(t, 1, s.Len())

	s.Forget(ctx, "a.hcl")
	assert.Zero(t, s.Len())
	assert.True(t, s.Record(ctx, failed), "a forgotten document starts over")
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := t.Context()
	s := NewMemory()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Record(ctx, Entry{Path: fmt.Sprintf("doc-%d.json", i), Fingerprint: "x"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

func TestMemory_ImplementsStore(t *testing.T) {
	var _ Store = NewMemory()
}
