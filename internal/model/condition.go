// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines AchieveCondition, the goal-completion condition. A
// condition is either flat ("robot.done") or quantified over a collection
// ("forall r in robots : r.done"). The two shapes are modelled as a sealed
// AchieveForm so that exactly one of them is ever active.
package model

// AchieveForm is the active shape of an AchieveCondition.
type AchieveForm interface {
	isAchieveForm()
}

// FlatCondition is an unquantified condition.
type FlatCondition struct {
	Condition string
}

// QuantifiedCondition is a universally quantified condition: Condition must
// hold for every IterationVar in IteratedVar.
type QuantifiedCondition struct {
	IteratedVar  string
	IterationVar string
	Condition    string
}

func (FlatCondition) isAchieveForm()       {}
func (QuantifiedCondition) isAchieveForm() {}

// AchieveCondition wraps the single active form. The zero value has no form
// and is rejected by the validator.
type AchieveCondition struct {
	form AchieveForm
}

// NewFlatAchieve returns a flat achieve condition.
func NewFlatAchieve(condition string) AchieveCondition {
	return AchieveCondition{form: FlatCondition{Condition: condition}}
}

// NewQuantifiedAchieve returns an achieve condition quantified over iterated.
func NewQuantifiedAchieve(iterated, iteration, condition string) AchieveCondition {
	return AchieveCondition{form: QuantifiedCondition{
		IteratedVar:  iterated,
		IterationVar: iteration,
		Condition:    condition,
	}}
}

// Form returns the active form, or nil for the zero value.
func (a AchieveCondition) Form() AchieveForm {
	return a.form
}

// IsQuantified reports whether the quantified form is active.
func (a AchieveCondition) IsQuantified() bool {
	_, ok := a.form.(QuantifiedCondition)
	return ok
}

// Condition returns the flat condition text, or "" when quantified.
func (a AchieveCondition) Condition() string {
	if f, ok := a.form.(FlatCondition); ok {
		return f.Condition
	}
	return ""
}

// IteratedVar returns the quantified collection, or "" when flat.
func (a AchieveCondition) IteratedVar() string {
	if q, ok := a.form.(QuantifiedCondition); ok {
		return q.IteratedVar
	}
	return ""
}

// IterationVar returns the quantified variable, or "" when flat.
func (a AchieveCondition) IterationVar() string {
	if q, ok := a.form.(QuantifiedCondition); ok {
		return q.IterationVar
	}
	return ""
}

// ForAllCondition returns the quantified condition body, or "" when flat.
func (a AchieveCondition) ForAllCondition() string {
	if q, ok := a.form.(QuantifiedCondition); ok {
		return q.Condition
	}
	return ""
}

// Body returns the condition text of whichever form is active.
func (a AchieveCondition) Body() string {
	switch f := a.form.(type) {
	case FlatCondition:
		return f.Condition
	case QuantifiedCondition:
		return f.Condition
	default:
		return ""
	}
}
