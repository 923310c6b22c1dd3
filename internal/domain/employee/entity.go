package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	Name             string
	Salary           decimal.Decimal
	Role             Role
	RegistrationDate time.Time
}

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleClerk    Role = "Clerk"
	RoleEmployee Role = "Employee"
)

// IDPrefix returns the id prefix a newly created account of this role
// receives. Sequences are tracked per prefix, not globally.
func (r Role) IDPrefix() string {
	switch r {
	case RoleAdmin:
		return "ADM"
	case RoleClerk:
		return "CLK"
	default:
		return "EMP"
	}
}

// PrivilegeLevel orders roles: Admin > Clerk > Employee.
func (r Role) PrivilegeLevel() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleClerk:
		return 2
	case RoleEmployee:
		return 1
	default:
		return 0
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClerk || r == RoleEmployee
}

// AtLeast reports whether r carries at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return r.PrivilegeLevel() >= min.PrivilegeLevel()
}
