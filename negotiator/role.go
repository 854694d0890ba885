package negotiator

import "fmt"

type Role int

const (
	RoleInput = Role(iota)
	RoleOutput
)

func (r Role) Opposite() Role {
	if r == RoleInput {
		return RoleOutput
	}
	return RoleInput
}

func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}
