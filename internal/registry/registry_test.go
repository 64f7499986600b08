package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NodeKind(t *testing.T) {
	r := NewDefault()

	testCases := []struct {
		token string
		want  model.Kind
		ok    bool
	}{
		{token: "istar.Goal", want: model.KindGoal, ok: true},
		{token: "ISTAR.TASK", want: model.KindTask, ok: true},
		{token: " and ", want: model.KindAnd, ok: true},
		{token: "istar.OrDecomposition", want: model.KindOr, ok: true},
		{token: "istar.Resource", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := r.NodeKind(tc.token)
			if !tc.ok {
				require.Error(t, err)
				assert.True(t, errors.Is(err, gmerr.ErrUnknownType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegistry_LinkKind(t *testing.T) {
	r := NewDefault()

	got, err := r.LinkKind("istar.AndRefinementLink")
	require.NoError(t, err)
	assert.Equal(t, model.EdgeAndRefinement, got)

	_, err = r.LinkKind("istar.ContributionLink")
	assert.True(t, errors.Is(err, gmerr.ErrUnknownType))
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	r := NewDefault()
	assert.Panics(t, func() { r.RegisterNodeType("ISTAR.goal", model.KindGoal) })
	assert.Panics(t, func() { r.RegisterLinkType("dependency", model.EdgeDependency) })
}

func TestRegistry_Extend(t *testing.T) {
	r := NewDefault()
	err := r.Extend(context.Background(), Vocabulary{
		NodeTypes:   map[string]string{"mission.Goal": "goal"},
		LinkTypes:   map[string]string{"mission.Refines": "and"},
		DomainTypes: []string{"Robot", "Room"},
	})
	require.NoError(t, err)

	kind, err := r.NodeKind("mission.goal")
	require.NoError(t, err)
	assert.Equal(t, model.KindGoal, kind)
	assert.Equal(t, []string{"Robot", "Room"}, r.Types.Names())

	err = r.Extend(context.Background(), Vocabulary{NodeTypes: map[string]string{"istar.Goal": "goal"}})
	assert.ErrorContains(t, err, "already registered")

	err = r.Extend(context.Background(), Vocabulary{LinkTypes: map[string]string{"x": "sideways"}})
	assert.ErrorContains(t, err, "unknown kind")
}

func TestRegistry_CanonicalType(t *testing.T) {
	r := NewDefault()
	_, err := r.Types.Register("Robot")
	require.NoError(t, err)

	got, err := r.CanonicalType(" sequence(Robot) ")
	require.NoError(t, err)
	assert.Equal(t, "sequence(Robot)", got, "lenient mode only trims")

	r.StrictTypes = true
	got, err = r.CanonicalType(" sequence(Robot) ")
	require.NoError(t, err)
	assert.Equal(t, "Sequence(Robot)", got)

	_, err = r.CanonicalType("Drone")
	assert.True(t, errors.Is(err, gmerr.ErrUnknownType))
}

func TestValidateRegistry(t *testing.T) {
	require.NoError(t, NewDefault().ValidateRegistry(context.Background()))

	empty := New()
	err := empty.ValidateRegistry(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind 'goal'")
	assert.Contains(t, err.Error(), "refinement kind")
}
