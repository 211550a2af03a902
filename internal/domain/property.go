package domain

import "time"

// PropertyType enumerates the listing categories.
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeCondo      PropertyType = "condo"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// ValidPropertyType reports whether the value is an enumerated type.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo, PropertyTypeLand, PropertyTypeCommercial:
		return true
	}
	return false
}

// ListingStatus enumerates lifecycle states for a listing.
type ListingStatus string

const (
	StatusForSale ListingStatus = "for-sale"
	StatusForRent ListingStatus = "for-rent"
	StatusSold    ListingStatus = "sold"
	StatusPending ListingStatus = "pending"
)

// ValidListingStatus reports whether the value is an enumerated status.
func ValidListingStatus(s ListingStatus) bool {
	switch s {
	case StatusForSale, StatusForRent, StatusSold, StatusPending:
		return true
	}
	return false
}

// Location is the nested address block of a listing.
type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Features describes the physical attributes of a listing.
type Features struct {
	Bedrooms  int  `json:"bedrooms,omitempty"`
	Bathrooms int  `json:"bathrooms,omitempty"`
	Area      int  `json:"area,omitempty"`
	Garage    bool `json:"garage"`
	YearBuilt int  `json:"yearBuilt,omitempty"`
}

// Image is one entry in the ordered gallery of a listing.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Property is the aggregate for a real-estate listing.
type Property struct {
	ID           string
	Title        string
	Description  string
	Price        int64
	Location     Location
	Features     Features
	Images       []Image
	PropertyType PropertyType
	Status       ListingStatus
	Featured     bool
	AgentID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
