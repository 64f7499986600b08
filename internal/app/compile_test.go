package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Compile(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"mission.hcl":      missionHCL,
		"survey.json":      missionJSON,
		"broken.hcl":       brokenHCL,
		"defs/tasks.hcl":   definitionsHCL,
		"notes/readme.txt": "ignored",
	})
	cfg := testConfig(t, func(c *Config) {
		c.DefinitionsPath = filepath.Join(root, "defs")
		c.Lint = true
	})
	a, _, logs := newTestApp(t, cfg)
	assert.Contains(t, a.Registry().Types.Names(), "transport")

	res := a.Compile(t.Context(), filepath.Join(root, "mission.hcl"))
	require.NoError(t, res.Err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Len(t, res.Fingerprint, 64)
	assert.Empty(t, res.Findings)

	survey := a.Compile(t.Context(), filepath.Join(root, "survey.json"))
	require.NoError(t, survey.Err)
	require.Len(t, survey.Findings, 1)
	assert.Equal(t, "G1", survey.Findings[0].Vertex)

	broken := a.Compile(t.Context(), filepath.Join(root, "broken.hcl"))
	assert.True(t, errors.Is(broken.Err, gmerr.ErrMultipleRoots))
	assert.False(t, broken.OK())
	assert.Nil(t, broken.Graph, "a rejected document carries no graph")
	assert.Nil(t, broken.Order)

	unknown := a.Compile(t.Context(), filepath.Join(root, "notes/readme.txt"))
	assert.ErrorContains(t, unknown.Err, "no loader")

	assert.Contains(t, logs.String(), "Goal model compiled.")
	assert.Contains(t, logs.String(), "code=GM-STR-002 kind=structural")
}

func TestApp_CompileSemanticFailure(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"mission.hcl": missionHCL,
		"defs.hcl": `
			task "Carry" {
			  id   = "AT1"
			  sort = "transport"
			  variable_robots = true
			}
			sort "transport" {
			  cardinality = "[3]"
			}
		`,
	})
	a, _, _ := newTestApp(t, testConfig(t, func(c *Config) {
		c.DefinitionsPath = filepath.Join(root, "defs.hcl")
	}))

	res := a.Compile(t.Context(), filepath.Join(root, "mission.hcl"))
	assert.True(t, errors.Is(res.Err, gmerr.ErrUndefinedRobotRange))
	assert.ErrorContains(t, res.Err, "semantic validation failed")
	assert.Nil(t, res.Graph)
}

func TestApp_RunReport(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"a/mission.hcl": missionHCL,
		"b/broken.hcl":  brokenHCL,
		"c/survey.json": missionJSON,
	})
	a, out, _ := newTestApp(t, testConfig(t, nil))

	results, failed, err := a.Run(t.Context(), []string{root})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 1, failed)

	assert.Equal(t, filepath.Join(root, "a/mission.hcl"), results[0].Path)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())

	report := out.String()
	assert.Contains(t, report, "ok   "+filepath.Join(root, "a/mission.hcl")+" nodes=2 edges=1 fingerprint=")
	assert.Contains(t, report, "FAIL "+filepath.Join(root, "b/broken.hcl"))
	assert.Contains(t, report, "GM-STR-002")
}

func TestApp_CompileAllCancelled(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"mission.hcl": missionHCL})
	a, _, _ := newTestApp(t, testConfig(t, nil))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	results, err := a.CompileAll(ctx, []string{root})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestApp_CompileAllMissingPath(t *testing.T) {
	a, _, _ := newTestApp(t, testConfig(t, nil))
	_, err := a.CompileAll(t.Context(), []string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestNewApp_Errors(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"defs.hcl": `sort "s" { cardinality = "[x]" }`})

	_, err := NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, testConfig(t, func(c *Config) {
		c.DefinitionsPath = filepath.Join(root, "defs.hcl")
	}))
	assert.ErrorContains(t, err, "failed to load definitions")

	_, err = NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, testConfig(t, func(c *Config) {
		c.Vocabulary.DomainTypes = []string{"string"}
	}))
	assert.ErrorContains(t, err, "failed to extend vocabulary")
}
