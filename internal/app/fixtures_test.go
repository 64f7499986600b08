package app

import (
	"testing"

	"github.com/specialistvlad/gmc/internal/testutil"
	"github.com/stretchr/testify/require"
)

const missionHCL = `
node "n0" {
  text = "G1: Deliver packages"
  type = "istar.Goal"

  properties {
    Controls         = "packages : Sequence(Package)"
    AchieveCondition = "for all p in packages: p.delivered"
  }
}

node "n1" {
  text         = "AT1: Carry"
  type         = "istar.Task"
  robot_number = "[2,4]"
}

link "l1" {
  type   = "istar.AndRefinementLink"
  source = "n1"
  target = "n0"
}
`

const missionJSON = `{
  "actors": [{
    "id": "a1",
    "text": "Mission",
    "nodes": [
      {"id": "n0", "text": "G1: Survey", "type": "istar.Goal",
       "customProperties": {"AchieveCondition": "for all r in rooms: done"}},
      {"id": "n1", "text": "AT1: Scan", "type": "istar.Task",
       "customProperties": {"RobotNumber": "[1]"}}
    ]
  }],
  "links": [
    {"id": "l1", "type": "istar.AndRefinementLink", "source": "n1", "target": "n0"}
  ]
}`

const brokenHCL = `
node "n0" {
  text = "G1: Root"
  type = "istar.Goal"
}

node "n1" {
  text = "G2: Second root"
  type = "istar.Goal"
}
`

const definitionsHCL = `
task "Carry" {
  id              = "AT1"
  sort            = "transport"
  variable_robots = true
}

sort "transport" {
  cardinality = "[2,6]"
}
`

func testConfig(t *testing.T, mutate func(*Config)) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	if mutate != nil {
		mutate(&cfg)
	}
	out, err := NewConfig(cfg)
	require.NoError(t, err)
	return out
}

func newTestApp(t *testing.T, cfg *Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()
	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	a, err := NewApp(out, logs, cfg)
	require.NoError(t, err)
	return a, out, logs
}
