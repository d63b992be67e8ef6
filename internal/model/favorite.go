package model

import "time"

// Favorite is a user's bookmark of a single property. PropertyID is a weak
// reference: the referenced property may have been deleted since, and
// consumers must tolerate the dangling id.
type Favorite struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	SavedDate  time.Time `json:"savedDate"`
}
