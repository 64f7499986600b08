// internal/nodeid/doc.go

/*
Package nodeid provides a structured representation for the short
identifiers that prefix goal model labels, e.g. `G3` in "G3: achieve goal"
or `AT12` in "AT12 pick up object".

The canonical format is a run of letters followed by a run of digits. The
package centralizes extraction from free-form labels, parsing, and the total
order used to lay out vertices canonically: goal identifiers (prefix `G`)
before every other class, numerically ascending within a class.
*/
package nodeid
