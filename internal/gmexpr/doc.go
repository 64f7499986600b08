// Package gmexpr parses the micro-expressions embedded in goal model
// annotations: variable declarations, variable mappings, quantifier headers,
// iteration rules, select queries, location references, node labels and
// robot-count ranges.
//
// Every parser is pure. A malformed fragment yields a *gmerr.Error of code
// GM-SYN-001 (or GM-SYN-002 for robot-count ranges) that names the parser and
// the offending text. List splitting honours nesting, so "isAt(x,y)" is never
// split at its comma.
package gmexpr

// Parser names reported in syntax errors.
const (
	ParserVars             = "vars"
	ParserVarMapping       = "var-mapping"
	ParserForAll           = "forall"
	ParserIterate          = "iterate"
	ParserAchieveCondition = "achieve-condition"
	ParserFailureCondition = "failure-condition"
	ParserSelect           = "select"
	ParserAt               = "at"
	ParserGoalText         = "goal-text"
	ParserRobotNumber      = "robot-number"
	ParserScalar           = "scalar"
)
