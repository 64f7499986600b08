// Package gmhcl reads goal models written in HCL:
//
//	node "n0" {
//	  text = "G1: Deliver packages"
//	  type = "istar.Goal"
//
//	  properties {
//	    Controls         = "packages : Sequence(Package)"
//	    AchieveCondition = "for all p in packages: p.delivered"
//	  }
//	}
//
//	node "n1" {
//	  text         = "AT1: Carry"
//	  type         = "istar.Task"
//	  robot_number = "[2,4]"
//	}
//
//	link "l1" {
//	  type   = "istar.AndRefinementLink"
//	  source = "n1"
//	  target = "n0"
//	}
//
// Property attributes keep their order of appearance in the file.
package gmhcl
