// Package gmerr defines the structured error taxonomy of the goal model
// compiler. Every failure carries a stable code, a kind (syntax, reference,
// structural, semantic) and the identifier of the offending node or edge.
package gmerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error into one of the four failure families.
type Kind int

const (
	// KindSyntax marks a malformed embedded micro-expression or input record.
	KindSyntax Kind = iota + 1
	// KindReference marks an identifier that does not resolve.
	KindReference
	// KindStructural marks a violated graph-shape invariant.
	KindStructural
	// KindSemantic marks a cross-model inconsistency.
	KindSemantic
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindReference:
		return "reference"
	case KindStructural:
		return "structural"
	case KindSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// Code is a unique error identifier.
type Code string

const (
	// Syntax errors (GM-SYN-001 to GM-SYN-099)
	ErrCodeSyntax        Code = "GM-SYN-001"
	ErrCodeInvalidRange  Code = "GM-SYN-002"
	ErrCodeUnknownType   Code = "GM-SYN-003"
	ErrCodeMalformedNode Code = "GM-SYN-004"

	// Reference errors (GM-REF-001 to GM-REF-099)
	ErrCodeUnresolvedReference Code = "GM-REF-001"
	ErrCodeUnknownTask         Code = "GM-REF-002"
	ErrCodeUnknownSort         Code = "GM-REF-003"

	// Structural errors (GM-STR-001 to GM-STR-099)
	ErrCodeNoRoot            Code = "GM-STR-001"
	ErrCodeMultipleRoots     Code = "GM-STR-002"
	ErrCodeOrphan            Code = "GM-STR-003"
	ErrCodeDanglingEdge      Code = "GM-STR-004"
	ErrCodeArity             Code = "GM-STR-005"
	ErrCodeCondition         Code = "GM-STR-006"
	ErrCodeMultipleParents   Code = "GM-STR-007"
	ErrCodeDuplicateID       Code = "GM-STR-008"
	ErrCodeMalformedID       Code = "GM-STR-009"
	ErrCodeMissingRobotCount Code = "GM-STR-010"
	ErrCodeSelfLink          Code = "GM-STR-011"
	ErrCodeRobotRange        Code = "GM-STR-012"

	// Semantic errors (GM-SEM-001 to GM-SEM-099)
	ErrCodeUndefinedRobotRange Code = "GM-SEM-001"
)

var codeKinds = map[Code]Kind{
	ErrCodeSyntax:              KindSyntax,
	ErrCodeInvalidRange:        KindSyntax,
	ErrCodeUnknownType:         KindSyntax,
	ErrCodeMalformedNode:       KindSyntax,
	ErrCodeUnresolvedReference: KindReference,
	ErrCodeUnknownTask:         KindReference,
	ErrCodeUnknownSort:         KindReference,
	ErrCodeNoRoot:              KindStructural,
	ErrCodeMultipleRoots:       KindStructural,
	ErrCodeOrphan:              KindStructural,
	ErrCodeDanglingEdge:        KindStructural,
	ErrCodeArity:               KindStructural,
	ErrCodeCondition:           KindStructural,
	ErrCodeMultipleParents:     KindStructural,
	ErrCodeDuplicateID:         KindStructural,
	ErrCodeMalformedID:         KindStructural,
	ErrCodeMissingRobotCount:   KindStructural,
	ErrCodeSelfLink:            KindStructural,
	ErrCodeRobotRange:          KindStructural,
	ErrCodeUndefinedRobotRange: KindSemantic,
}

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrSyntax              = sentinel(ErrCodeSyntax)
	ErrInvalidRange        = sentinel(ErrCodeInvalidRange)
	ErrUnknownType         = sentinel(ErrCodeUnknownType)
	ErrMalformedNode       = sentinel(ErrCodeMalformedNode)
	ErrUnresolvedReference = sentinel(ErrCodeUnresolvedReference)
	ErrUnknownTask         = sentinel(ErrCodeUnknownTask)
	ErrUnknownSort         = sentinel(ErrCodeUnknownSort)
	ErrNoRoot              = sentinel(ErrCodeNoRoot)
	ErrMultipleRoots       = sentinel(ErrCodeMultipleRoots)
	ErrOrphan              = sentinel(ErrCodeOrphan)
	ErrDanglingEdge        = sentinel(ErrCodeDanglingEdge)
	ErrArity               = sentinel(ErrCodeArity)
	ErrCondition           = sentinel(ErrCodeCondition)
	ErrMultipleParents     = sentinel(ErrCodeMultipleParents)
	ErrDuplicateID         = sentinel(ErrCodeDuplicateID)
	ErrMalformedID         = sentinel(ErrCodeMalformedID)
	ErrMissingRobotCount   = sentinel(ErrCodeMissingRobotCount)
	ErrSelfLink            = sentinel(ErrCodeSelfLink)
	ErrRobotRange          = sentinel(ErrCodeRobotRange)
	ErrUndefinedRobotRange = sentinel(ErrCodeUndefinedRobotRange)
)

func sentinel(code Code) *Error {
	return &Error{Kind: codeKinds[code], Code: code}
}

// Error is the structured error returned by every stage of the compiler.
type Error struct {
	Kind    Kind
	Code    Code
	Message string

	// Subject is the id of the offending node or edge, if any.
	Subject string
	// Rule names the violated rule for structural and semantic errors.
	Rule string
	// Parser and Fragment locate syntax errors.
	Parser   string
	Fragment string

	Suggestions []string
	Cause       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s error", e.Code, e.Kind))
	if e.Subject != "" {
		b.WriteString(fmt.Sprintf(" at %q", e.Subject))
	}
	if e.Rule != "" {
		b.WriteString(fmt.Sprintf(" (rule: %s)", e.Rule))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Parser != "" {
		b.WriteString(fmt.Sprintf(" [parser %s, fragment %q]", e.Parser, e.Fragment))
	}
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithSuggestion adds a suggestion to the error.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// New creates an error for the given code.
func New(code Code, message string) *Error {
	return &Error{
		Kind:    codeKinds[code],
		Code:    code,
		Message: message,
	}
}

// NewSyntax creates a syntax error raised by the named parser on fragment.
func NewSyntax(parser, fragment, message string) *Error {
	e := New(ErrCodeSyntax, message)
	e.Parser = parser
	e.Fragment = fragment
	return e
}

// NewInvalidRange creates the error for a robot-count range whose minimum
// exceeds its maximum or is not positive.
func NewInvalidRange(parser, fragment string, lo, hi int) *Error {
	e := New(ErrCodeInvalidRange, fmt.Sprintf("invalid range [%d,%d]", lo, hi))
	e.Parser = parser
	e.Fragment = fragment
	return e.WithSuggestion("Use [n] for an exact count or [min,max] with 1 <= min <= max")
}

// NewUnknownType creates the error for an unrecognized type token.
func NewUnknownType(parser, token string) *Error {
	e := New(ErrCodeUnknownType, fmt.Sprintf("unknown type %q", token))
	e.Parser = parser
	e.Fragment = token
	return e
}

// NewMalformedNode creates the error for a node record that cannot be ingested.
func NewMalformedNode(subject, message string, cause error) *Error {
	e := New(ErrCodeMalformedNode, message)
	e.Subject = subject
	e.Cause = cause
	return e
}

// NewReference creates a reference error for subject pointing at ref.
func NewReference(code Code, subject, ref string) *Error {
	e := New(code, fmt.Sprintf("reference %q does not resolve", ref))
	e.Subject = subject
	e.Fragment = ref
	return e
}

// NewRule creates a structural or semantic error naming the offending
// subject and the violated rule.
func NewRule(code Code, subject, rule, message string) *Error {
	e := New(code, message)
	e.Subject = subject
	e.Rule = rule
	return e
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
