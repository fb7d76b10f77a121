// Package place provides the place domain model shared by all front ends.
package place

import "fmt"

// Owner is the user who listed a place.
type Owner struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Amenity is a named feature of a place.
type Amenity struct {
	Name string `json:"name"`
}

// Place represents a rentable listing as returned by the API.
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Owner       *Owner    `json:"owner,omitempty"`
	Amenities   []Amenity `json:"amenities,omitempty"`
}

// HostName returns the owner's display name, or "unknown" when the API
// omits the owner.
func (p *Place) HostName() string {
	if p.Owner == nil {
		return "unknown"
	}
	name := p.Owner.FirstName
	if p.Owner.LastName != "" {
		if name != "" {
			name += " "
		}
		name += p.Owner.LastName
	}
	if name == "" {
		return "unknown"
	}
	return name
}

// DisplayDescription returns the description, or a default string when empty.
func (p *Place) DisplayDescription() string {
	if p.Description == "" {
		return "No description available."
	}
	return p.Description
}

// AmenityNames returns amenity names, or a single placeholder entry when
// the place lists none.
func (p *Place) AmenityNames() []string {
	if len(p.Amenities) == 0 {
		return []string{"No amenities listed"}
	}
	names := make([]string, len(p.Amenities))
	for i, a := range p.Amenities {
		names[i] = a.Name
	}
	return names
}

// FormatPrice renders a nightly price as a dollar amount.
func FormatPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("$%d", int64(price))
	}
	return fmt.Sprintf("$%.2f", price)
}
