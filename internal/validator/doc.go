// Package validator checks an assembled goal model. The structural pass
// verifies the shape of the hierarchy, the semantic pass cross-checks robot
// counts against external task and sort definitions, and Lint reports
// non-fatal findings about condition expressions. No pass mutates the graph.
package validator
