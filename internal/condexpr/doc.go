// Package condexpr analyzes the condition texts of a goal model ("isAt(x,
// Target)", "r.battery > 20 && r.free") by reading them as HCL expressions.
// The compiler never evaluates conditions; it only inspects which variables
// they refer to.
package condexpr
