// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file computes a content fingerprint of a compiled graph. Because the
// builder orders vertices and edges canonically, two documents that differ
// only in the order of their records produce the same fingerprint.
package model

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Canonicalize returns a stable textual encoding of g. Vertices are written in
// index order with properties in sorted key order, followed by the edges.
func Canonicalize(g *Graph) []byte {
	var b bytes.Buffer
	for i, v := range g.vertices {
		fmt.Fprintf(&b, "v %d %q %q %q %s p=%d c=%v\n", i, v.ID, v.Name, v.Text, v.Kind, v.Parent, v.Children)
		fmt.Fprintf(&b, "  x=%g y=%g periodic=%t period=%g deadline=%g group=%t divisible=%t\n",
			v.X, v.Y, v.Periodic, v.Period, v.Deadline, v.Group, v.Divisible)
		if v.RobotCount != nil {
			fmt.Fprintf(&b, "  robots=%s\n", v.RobotCount)
		}
		for _, k := range v.PropKeys() {
			fmt.Fprintf(&b, "  %q=%s\n", k, encodeProperty(v.Props[k]))
		}
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "e %q %q %s %d->%d\n", e.ID, e.Type, e.Kind, e.From, e.To)
	}
	return b.Bytes()
}

// Fingerprint returns the hex blake3 digest of Canonicalize(g).
func Fingerprint(g *Graph) (string, error) {
	hasher := blake3.New()
	if _, err := hasher.Write(Canonicalize(g)); err != nil {
		return "", fmt.Errorf("hash graph: %w", err)
	}
	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

func encodeProperty(p Property) string {
	switch v := p.(type) {
	case RawText:
		return fmt.Sprintf("raw(%q)", v.Text)
	case ContextRef:
		return fmt.Sprintf("context(%q)", v.Text)
	case VarMappingList:
		parts := make([]string, len(v))
		for i, kv := range v {
			parts[i] = fmt.Sprintf("%q:%q", kv.Key, kv.Value)
		}
		return "map[" + strings.Join(parts, ",") + "]"
	case QueriedProperty:
		return fmt.Sprintf("select(%q,%q,%q,%q)", v.QueriedVar, v.Result.Name, v.Result.Type, v.Query)
	case FailureCondition:
		return fmt.Sprintf("failure(%q)", v.Condition)
	case IterationRule:
		return fmt.Sprintf("iterate(%q,%q,%q,%q,%q,%q)",
			v.IteratedVar, v.IterationVar, v.Result.Name, v.Result.Type, v.ResultInit, v.EndLoop)
	case AchieveCondition:
		if v.IsQuantified() {
			return fmt.Sprintf("forall(%q,%q,%q)", v.IteratedVar(), v.IterationVar(), v.ForAllCondition())
		}
		return fmt.Sprintf("achieve(%q)", v.Condition())
	default:
		panic(fmt.Sprintf("model: unknown property case %T", p))
	}
}
