// Package role defines the caller roles of the approval pipeline and the
// static per-operation allowlist consulted once at the start of every
// workflow operation.
package role

import (
	"fmt"

	"mandi/internal/pkg/errs"
)

// Role identifies the kind of actor invoking a workflow operation.
// Resolution of "who is calling" to a Role is the host application's concern;
// the core only checks the label against the allowlist.
type Role int

const (
	// UnknownRole catches uninitialized Role values.
	UnknownRole Role = iota

	Staff
	Manager
	Admin
	Supervisor
	Owner
)

func roleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Staff:       "staff",
		Manager:     "manager",
		Admin:       "admin",
		Supervisor:  "supervisor",
		Owner:       "owner",
	}
}

// Parse maps a role label from the identity provider to a Role.
func Parse(s string) (Role, error) {
	for r, name := range roleStrings() {
		if r != UnknownRole && name == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok || r == UnknownRole {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
