// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of account a token was issued for.
type Role string

const (
	// RoleVendor is a street vendor that streams its position and lists products.
	RoleVendor Role = "vendor"
	// RoleCustomer is a searcher with preferences and a search history.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleVendor, RoleCustomer:
		return true
	default:
		return false
	}
}
