// Package classify routes the custom annotations of a node to the parser
// that understands them and stores the typed result on the vertex.
//
// Routing is a fixed table keyed by annotation name. Each entry declares the
// vertex kinds it applies to; an annotation whose name is unknown, or that
// does not apply to the vertex kind, is kept verbatim as RawText. Unknown
// annotations are never an error.
package classify
