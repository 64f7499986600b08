package definitions

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/fsutil"
	"github.com/specialistvlad/gmc/internal/gmexpr"
	"github.com/specialistvlad/gmc/internal/vartype"
)

// fileRoot is used to decode all top-level blocks of a definitions file.
type fileRoot struct {
	Tasks  []*taskBlock `hcl:"task,block"`
	Sorts  []*sortBlock `hcl:"sort,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type taskBlock struct {
	Name           string `hcl:"name,label"`
	ID             string `hcl:"id,optional"`
	Sort           string `hcl:"sort"`
	VariableRobots bool   `hcl:"variable_robots,optional"`
}

type sortBlock struct {
	Name        string `hcl:"name,label"`
	Cardinality string `hcl:"cardinality"`
}

// Loader reads definition files.
type Loader struct {
	types *vartype.Registry
}

// NewLoader creates a loader. When types is not nil, every loaded sort is
// registered in it as a domain type.
func NewLoader(types *vartype.Registry) *Loader {
	return &Loader{types: types}
}

// Load parses every .hcl file under paths into a single Set.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Definitions loader started.", "path_count", len(paths))

	files, err := fsutil.ResolvePaths(paths, ".hcl")
	if err != nil {
		return nil, err
	}

	set := &Set{}
	taskNames := make(map[string]string)
	sortNames := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse definitions file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode definitions file %s: %w", file, diags)
		}

		for _, tb := range root.Tasks {
			if prev, dup := taskNames[tb.Name]; dup {
				return nil, fmt.Errorf("%s: task %q already defined in %s", file, tb.Name, prev)
			}
			taskNames[tb.Name] = file
			set.Tasks = append(set.Tasks, AbstractTask{
				Name:           tb.Name,
				ID:             tb.ID,
				Sort:           tb.Sort,
				VariableRobots: tb.VariableRobots,
			})
		}

		for _, sb := range root.Sorts {
			if prev, dup := sortNames[sb.Name]; dup {
				return nil, fmt.Errorf("%s: sort %q already defined in %s", file, sb.Name, prev)
			}
			sortNames[sb.Name] = file
			card, err := gmexpr.ParseRobotNumber(sb.Cardinality)
			if err != nil {
				return nil, fmt.Errorf("%s: sort %q: %w", file, sb.Name, err)
			}
			set.Sorts = append(set.Sorts, SortDefinition{Name: sb.Name, Cardinality: card})

			if l.types != nil {
				if _, err := l.types.Register(sb.Name); err != nil {
					return nil, fmt.Errorf("%s: sort %q: %w", file, sb.Name, err)
				}
			}
		}
		logger.Debug("Loaded definitions file.", "file", file, "tasks", len(root.Tasks), "sorts", len(root.Sorts))
	}

	logger.Info("Definitions loaded.", "tasks", len(set.Tasks), "sorts", len(set.Sorts))
	return set, nil
}
