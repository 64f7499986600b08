package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Stable(t *testing.T) {
	a, err := Fingerprint(sampleGraph())
	require.NoError(t, err)
	b, err := Fingerprint(sampleGraph())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	base, err := Fingerprint(sampleGraph())
	require.NoError(t, err)

	g := sampleGraph()
	g.vertices[1].Props["Failure"] = FailureCondition{Condition: "r.broken"}
	changed, err := Fingerprint(g)
	require.NoError(t, err)

	assert.NotEqual(t, base, changed)
}
