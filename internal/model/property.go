// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Property, the closed set of payloads a vertex annotation
// can classify into.
//
// The interface is sealed by an unexported method, so the set of cases below
// is the complete set. Code that consumes a Property switches over the
// concrete types and panics in the default branch; adding a case is a
// compile-and-test-time event, never a silent fallthrough.
package model

import "fmt"

// Property is one classified vertex annotation.
type Property interface {
	isProperty()
}

// RawText is an annotation kept verbatim because no parser applies to it.
type RawText struct {
	Text string
}

// ContextRef is an opaque context or creation condition. It is stored but
// never interpreted by the compiler.
type ContextRef struct {
	Text string
}

// TypedVar is a variable declaration of the form "name : Type".
type TypedVar struct {
	Name string
	Type string
}

// KeyValue is one entry of a VarMappingList.
type KeyValue struct {
	Key   string
	Value string
}

// VarMappingList is an ordered list of key/value pairs. Duplicate keys are
// preserved in input order.
type VarMappingList []KeyValue

// QueriedProperty is a select query over a world-knowledge variable.
type QueriedProperty struct {
	QueriedVar string
	Result     TypedVar
	// Query holds the filter split into atoms, with the logical connectives
	// "&&" and "||" kept as their own components.
	Query []string
}

// FailureCondition is the condition under which a task is considered failed.
type FailureCondition struct {
	Condition string
}

// IterationRule describes an accumulating iteration over a collection.
type IterationRule struct {
	IteratedVar  string
	IterationVar string
	Result       TypedVar
	ResultInit   string
	EndLoop      string
}

func (RawText) isProperty()          {}
func (ContextRef) isProperty()       {}
func (VarMappingList) isProperty()   {}
func (QueriedProperty) isProperty()  {}
func (FailureCondition) isProperty() {}
func (IterationRule) isProperty()    {}
func (AchieveCondition) isProperty() {}

// PropertyName returns a short stable name for the case of p.
func PropertyName(p Property) string {
	switch p.(type) {
	case RawText:
		return "raw-text"
	case ContextRef:
		return "context-ref"
	case VarMappingList:
		return "var-mapping-list"
	case QueriedProperty:
		return "queried-property"
	case FailureCondition:
		return "failure-condition"
	case IterationRule:
		return "iteration-rule"
	case AchieveCondition:
		return "achieve-condition"
	default:
		panic(fmt.Sprintf("model: unknown property case %T", p))
	}
}

// CloneProperty returns a deep copy of p.
func CloneProperty(p Property) Property {
	switch v := p.(type) {
	case RawText, ContextRef, FailureCondition, IterationRule, AchieveCondition:
		return v
	case VarMappingList:
		return append(VarMappingList(nil), v...)
	case QueriedProperty:
		v.Query = append([]string(nil), v.Query...)
		return v
	default:
		panic(fmt.Sprintf("model: unknown property case %T", p))
	}
}
