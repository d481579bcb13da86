// Package entity contains the core business objects of the project.
package entity

// BusinessType classifies a listed business on the marketplace.
type BusinessType string

const (
	// BusinessTypeRestaurant indicates a dine-in or takeaway restaurant.
	BusinessTypeRestaurant BusinessType = "restaurant"
	// BusinessTypeTiffin indicates a tiffin/meal subscription service.
	BusinessTypeTiffin BusinessType = "tiffin"
	// BusinessTypeGrocery indicates a grocery store.
	BusinessTypeGrocery BusinessType = "grocery"
)

// String returns the string representation of the BusinessType.
func (t BusinessType) String() string {
	return string(t)
}

// IsValid checks if the BusinessType is a valid value.
func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessTypeRestaurant, BusinessTypeTiffin, BusinessTypeGrocery:
		return true
	default:
		return false
	}
}
