package classify

import (
	"github.com/specialistvlad/gmc/internal/gmexpr"
	"github.com/specialistvlad/gmc/internal/model"
)

// Annotation names with a dedicated parser.
const (
	KeyAchieveCondition  = model.PropAchieveCondition
	KeyFailureCondition  = model.PropFailureCondition
	KeyCondition         = "Condition"
	KeyQueriedProperty   = "QueriedProperty"
	KeySelect            = "Select"
	KeyIterate           = "Iterate"
	KeyIterationRule     = "IterationRule"
	KeyControls          = "Controls"
	KeyMonitors          = "Monitors"
	KeyParams            = "Params"
	KeyLocation          = "Location"
	KeyContext           = "Context"
	KeyCreationCondition = "CreationCondition"
	KeyRobotNumber       = "RobotNumber"
	KeyGroup             = "Group"
	KeyDivisible         = "Divisible"
	KeyPeriodic          = "Periodic"
	KeyPeriod            = "Period"
	KeyDeadline          = "Deadline"
)

// kindSet is a set of vertex kinds.
type kindSet uint8

func kinds(ks ...model.Kind) kindSet {
	var s kindSet
	for _, k := range ks {
		s |= 1 << uint(k)
	}
	return s
}

func (s kindSet) has(k model.Kind) bool {
	return s&(1<<uint(k)) != 0
}

var (
	anyKind  = kinds(model.KindGoal, model.KindTask, model.KindAnd, model.KindOr)
	goalOnly = kinds(model.KindGoal)
)

// applyFunc parses value and stores the result on v.
type applyFunc func(c *Classifier, v *model.Vertex, key, value string) error

type rule struct {
	appliesTo kindSet
	apply     applyFunc
}

var table = map[string]rule{
	KeyAchieveCondition:  {appliesTo: goalOnly, apply: applyAchieve},
	KeyFailureCondition:  {appliesTo: anyKind, apply: applyFailure},
	KeyCondition:         {appliesTo: kinds(model.KindGoal, model.KindTask), apply: applyCondition},
	KeyQueriedProperty:   {appliesTo: anyKind, apply: applySelect},
	KeySelect:            {appliesTo: anyKind, apply: applySelect},
	KeyIterate:           {appliesTo: goalOnly, apply: applyIterate},
	KeyIterationRule:     {appliesTo: goalOnly, apply: applyIterate},
	KeyControls:          {appliesTo: anyKind, apply: applyVars},
	KeyMonitors:          {appliesTo: anyKind, apply: applyVars},
	KeyParams:            {appliesTo: anyKind, apply: applyParams},
	KeyLocation:          {appliesTo: anyKind, apply: applyLocation},
	KeyContext:           {appliesTo: anyKind, apply: applyContext},
	KeyCreationCondition: {appliesTo: anyKind, apply: applyContext},
	KeyRobotNumber:       {appliesTo: anyKind, apply: applyRobotNumber},
	KeyGroup:             {appliesTo: anyKind, apply: applyBool},
	KeyDivisible:         {appliesTo: anyKind, apply: applyBool},
	KeyPeriodic:          {appliesTo: anyKind, apply: applyBool},
	KeyPeriod:            {appliesTo: anyKind, apply: applyFloat},
	KeyDeadline:          {appliesTo: anyKind, apply: applyFloat},
}

func applyAchieve(_ *Classifier, v *model.Vertex, _, value string) error {
	cond, err := gmexpr.ParseAchieveCondition(value)
	if err != nil {
		return err
	}
	v.Props[KeyAchieveCondition] = cond
	return nil
}

func applyFailure(_ *Classifier, v *model.Vertex, _, value string) error {
	cond, err := gmexpr.ParseFailureCondition(value)
	if err != nil {
		return err
	}
	v.Props[KeyFailureCondition] = cond
	return nil
}

// applyCondition reads a generic condition as the completion condition of a
// goal and the failure condition of a task.
func applyCondition(c *Classifier, v *model.Vertex, key, value string) error {
	if v.Kind == model.KindGoal {
		return applyAchieve(c, v, key, value)
	}
	return applyFailure(c, v, key, value)
}

func applySelect(c *Classifier, v *model.Vertex, _, value string) error {
	q, err := gmexpr.ParseSelect(value)
	if err != nil {
		return err
	}
	if q.Result.Type, err = c.reg.CanonicalType(q.Result.Type); err != nil {
		return err
	}
	v.Props[KeyQueriedProperty] = q
	return nil
}

func applyIterate(c *Classifier, v *model.Vertex, _, value string) error {
	it, err := gmexpr.ParseIterate(value)
	if err != nil {
		return err
	}
	if it.Result.Type, err = c.reg.CanonicalType(it.Result.Type); err != nil {
		return err
	}
	v.Props[KeyIterationRule] = it
	return nil
}

func applyVars(c *Classifier, v *model.Vertex, key, value string) error {
	vars, err := gmexpr.ParseVars(value)
	if err != nil {
		return err
	}
	out := make(model.VarMappingList, 0, len(vars))
	for _, tv := range vars {
		typ, err := c.reg.CanonicalType(tv.Type)
		if err != nil {
			return err
		}
		out = append(out, model.KeyValue{Key: tv.Name, Value: typ})
	}
	v.Props[key] = out
	return nil
}

func applyParams(_ *Classifier, v *model.Vertex, key, value string) error {
	m, err := gmexpr.ParseVarMapping(value)
	if err != nil {
		return err
	}
	v.Props[key] = m
	return nil
}

func applyLocation(_ *Classifier, v *model.Vertex, key, value string) error {
	variable, attr, err := gmexpr.ParseAtText(value)
	if err != nil {
		return err
	}
	v.Props[key] = model.VarMappingList{{Key: variable, Value: attr}}
	return nil
}

func applyContext(_ *Classifier, v *model.Vertex, key, value string) error {
	v.Props[key] = model.ContextRef{Text: value}
	return nil
}

func applyRobotNumber(_ *Classifier, v *model.Vertex, _, value string) error {
	rc, err := gmexpr.ParseRobotNumber(value)
	if err != nil {
		return err
	}
	v.RobotCount = &rc
	return nil
}

func applyBool(_ *Classifier, v *model.Vertex, key, value string) error {
	b, err := gmexpr.ParseBool(key, value)
	if err != nil {
		return err
	}
	switch key {
	case KeyGroup:
		v.Group = b
	case KeyDivisible:
		v.Divisible = b
	case KeyPeriodic:
		v.Periodic = b
	}
	return nil
}

func applyFloat(_ *Classifier, v *model.Vertex, key, value string) error {
	f, err := gmexpr.ParseFloat(key, value)
	if err != nil {
		return err
	}
	switch key {
	case KeyPeriod:
		v.Period = f
	case KeyDeadline:
		v.Deadline = f
	}
	return nil
}
