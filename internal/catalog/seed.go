package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"propview-backend/internal/model"
)

//go:embed properties.json
var seedFS embed.FS

// LoadSeed reads the initial catalog dataset. An empty path selects the
// embedded dataset shipped with the binary.
func LoadSeed(path string) ([]model.Property, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = seedFS.ReadFile("properties.json")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read seed dataset: %w", err)
	}

	var properties []model.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	return properties, nil
}
