// Package definitions holds the mission-level knowledge a goal model is
// checked against: the abstract tasks that leaf tasks instantiate and the
// sorts (task categories) that declare how many robots a task may use.
//
// Definitions are written in HCL:
//
//	task "Carry" {
//	  id              = "AT2"
//	  sort            = "transport"
//	  variable_robots = true
//	}
//
//	sort "transport" {
//	  cardinality = "[2,6]"
//	}
package definitions
