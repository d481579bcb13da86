// Package entity contains the core business objects of the project.
package entity

// Role names the capability sets a user can hold.
type Role string

const (
	// RoleCustomer grants ordering, reviewing and loyalty features.
	RoleCustomer Role = "customer"
	// RoleMerchant grants business, catalog, order and promo management.
	RoleMerchant Role = "merchant"
	// RoleAdmin grants marketplace-wide administration.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleAdmin:
		return true
	default:
		return false
	}
}
