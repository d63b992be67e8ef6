package model

import "time"

// PropertyType is an open enumeration; the constants below cover the known
// values but arbitrary strings are accepted.
type PropertyType = string

const (
	TypeHouse     PropertyType = "House"
	TypeApartment PropertyType = "Apartment"
	TypeCondo     PropertyType = "Condo"
	TypeTownhouse PropertyType = "Townhouse"
)

// Coordinates is an optional lat/lng pair attached to a property.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property represents a single listing in the catalog. The ID and
// ListingDate are assigned at creation and never change afterwards.
type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zipCode"`
	Price        int64        `json:"price"` // whole USD
	PropertyType PropertyType `json:"propertyType"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    float64      `json:"bathrooms"`
	SquareFeet   int          `json:"squareFeet"`
	YearBuilt    int          `json:"yearBuilt"`
	Images       []string     `json:"images"`
	Amenities    []string     `json:"amenities"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	ListingDate  time.Time    `json:"listingDate"`
	Description  string       `json:"description"`
}

// Clone returns a copy of the property that shares no mutable state with
// the receiver.
func (p Property) Clone() Property {
	clone := p
	if p.Images != nil {
		clone.Images = make([]string, len(p.Images))
		copy(clone.Images, p.Images)
	}
	if p.Amenities != nil {
		clone.Amenities = make([]string, len(p.Amenities))
		copy(clone.Amenities, p.Amenities)
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		clone.Coordinates = &c
	}
	return clone
}
