// Package maps builds outbound links to a third-party maps provider. Link
// construction only; nothing is fetched.
package maps

import (
	"fmt"
	"net/url"

	"propview-backend/internal/model"
)

const searchEndpoint = "https://www.google.com/maps/search/?api=1&query="

// Link returns a maps search URL for the property's street address.
func Link(p model.Property) string {
	query := fmt.Sprintf("%s, %s, %s %s", p.Address, p.City, p.State, p.ZipCode)
	return searchEndpoint + url.QueryEscape(query)
}
