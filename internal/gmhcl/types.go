package gmhcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all top-level blocks of a goal model file.
type fileRoot struct {
	Nodes  []*nodeBlock `hcl:"node,block"`
	Links  []*linkBlock `hcl:"link,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type nodeBlock struct {
	ID          string            `hcl:"id,label"`
	Text        string            `hcl:"text"`
	Type        string            `hcl:"type"`
	X           *float64          `hcl:"x,optional"`
	Y           *float64          `hcl:"y,optional"`
	RobotNumber *string           `hcl:"robot_number,optional"`
	Periodic    *bool             `hcl:"periodic,optional"`
	Period      *float64          `hcl:"period,optional"`
	Deadline    *float64          `hcl:"deadline,optional"`
	Group       *bool             `hcl:"group,optional"`
	Divisible   *bool             `hcl:"divisible,optional"`
	Properties  []*propertiesBody `hcl:"properties,block"`
}

// propertiesBody holds free-form annotation attributes.
type propertiesBody struct {
	Body hcl.Body `hcl:",remain"`
}

type linkBlock struct {
	ID     string `hcl:"id,label"`
	Type   string `hcl:"type"`
	Source string `hcl:"source"`
	Target string `hcl:"target"`
}
