package definitions

import "github.com/specialistvlad/gmc/internal/model"

// AbstractTask is a task template that goal-model tasks instantiate.
type AbstractTask struct {
	Name string
	// ID is the short identifier the task carries in goal-model labels.
	ID   string
	Sort string
	// VariableRobots reports whether the task accepts a range of robots.
	VariableRobots bool
}

// SortDefinition declares the robot cardinality of a task category.
type SortDefinition struct {
	Name        string
	Cardinality model.RobotCount
}

// Set is a loaded collection of definitions.
type Set struct {
	Tasks []AbstractTask
	Sorts []SortDefinition
}

// FindTask looks a task up by name, falling back to its short id when name
// is empty or unknown.
func FindTask(tasks []AbstractTask, name, id string) (AbstractTask, bool) {
	if name != "" {
		for _, t := range tasks {
			if t.Name == name {
				return t, true
			}
		}
	}
	if id != "" {
		for _, t := range tasks {
			if t.ID == id {
				return t, true
			}
		}
	}
	return AbstractTask{}, false
}

// FindSort looks a sort up by name.
func FindSort(sorts []SortDefinition, name string) (SortDefinition, bool) {
	for _, s := range sorts {
		if s.Name == name {
			return s, true
		}
	}
	return SortDefinition{}, false
}
