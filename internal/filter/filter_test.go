package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"propview-backend/internal/model"
)

func i64(v int64) *int64 { return &v }
func iv(v int) *int      { return &v }

func testProperties() []model.Property {
	return []model.Property{
		{ID: "p1", Title: "Cozy Cottage", Address: "12 Maple St", City: "Springfield", State: "IL", Price: 100000, PropertyType: "House", Bedrooms: 2},
		{ID: "p2", Title: "City Condo", Address: "5 Oak Ave", City: "Chicago", State: "IL", Price: 250000, PropertyType: "Condo", Bedrooms: 1},
		{ID: "p3", Title: "Suburban Estate", Address: "77 Birch Rd", City: "Naperville", State: "IL", Price: 400000, PropertyType: "House", Bedrooms: 4},
	}
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name        string
		searchTerm  string
		criteria    Criteria
		expectedIDs []string
	}{
		{
			name:        "No constraints passes everything",
			expectedIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:        "Min price keeps properties at or above, in original order",
			criteria:    Criteria{MinPrice: i64(200000)},
			expectedIDs: []string{"p2", "p3"},
		},
		{
			name:        "Max price keeps properties at or below",
			criteria:    Criteria{MaxPrice: i64(250000)},
			expectedIDs: []string{"p1", "p2"},
		},
		{
			name:        "Boundary price passes on both min and max",
			criteria:    Criteria{MinPrice: i64(250000), MaxPrice: i64(250000)},
			expectedIDs: []string{"p2"},
		},
		{
			name:        "Search term matches address, excludes the rest",
			searchTerm:  "Maple",
			expectedIDs: []string{"p1"},
		},
		{
			name:        "Search is case-insensitive",
			searchTerm:  "maple",
			expectedIDs: []string{"p1"},
		},
		{
			name:        "Search matches title",
			searchTerm:  "condo",
			expectedIDs: []string{"p2"},
		},
		{
			name:        "Search matches city",
			searchTerm:  "naperville",
			expectedIDs: []string{"p3"},
		},
		{
			name:        "Property type exact match",
			criteria:    Criteria{PropertyType: "House"},
			expectedIDs: []string{"p1", "p3"},
		},
		{
			name:        "Min bedrooms",
			criteria:    Criteria{MinBedrooms: iv(2)},
			expectedIDs: []string{"p1", "p3"},
		},
		{
			name:        "Location matches state substring",
			criteria:    Criteria{Location: "il"},
			expectedIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:        "Location matches city substring",
			criteria:    Criteria{Location: "chic"},
			expectedIDs: []string{"p2"},
		},
		{
			name:        "All criteria conjunctive",
			searchTerm:  "e",
			criteria:    Criteria{MinPrice: i64(150000), PropertyType: "House", MinBedrooms: iv(3), Location: "IL"},
			expectedIDs: []string{"p3"},
		},
		{
			name:        "No matches yields empty, not nil panic",
			criteria:    Criteria{MinPrice: i64(1000000)},
			expectedIDs: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Apply(testProperties(), tc.searchTerm, tc.criteria)
			ids := make([]string, 0, len(result))
			for _, p := range result {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestParseCriteria(t *testing.T) {
	testCases := []struct {
		name        string
		minPrice    string
		maxPrice    string
		minBedrooms string
		expected    Criteria
	}{
		{
			name:     "Valid numbers are parsed",
			minPrice: "200000", maxPrice: "500000", minBedrooms: "3",
			expected: Criteria{MinPrice: i64(200000), MaxPrice: i64(500000), MinBedrooms: iv(3)},
		},
		{
			name:     "Empty strings mean unset",
			expected: Criteria{},
		},
		{
			name:     "Unparseable numbers act as no constraint",
			minPrice: "cheap", maxPrice: "12x", minBedrooms: "many",
			expected: Criteria{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCriteria(tc.minPrice, tc.maxPrice, "", tc.minBedrooms, "")
			assert.Equal(t, tc.expected, got)
		})
	}
}

// Tightening one criterion must never grow the result set.
func TestApplyMonotonicity(t *testing.T) {
	props := testProperties()

	loose := Apply(props, "", Criteria{MinPrice: i64(100000)})
	tight := Apply(props, "", Criteria{MinPrice: i64(300000)})
	assert.LessOrEqual(t, len(tight), len(loose))

	loose = Apply(props, "", Criteria{MinBedrooms: iv(1)})
	tight = Apply(props, "", Criteria{MinBedrooms: iv(4)})
	assert.LessOrEqual(t, len(tight), len(loose))
}

// Filtering by {A, B} equals filtering by A then filtering the result by B.
func TestApplyComposition(t *testing.T) {
	props := testProperties()

	combined := Apply(props, "", Criteria{MinPrice: i64(150000), PropertyType: "House"})

	stepA := Apply(props, "", Criteria{MinPrice: i64(150000)})
	stepAB := Apply(stepA, "", Criteria{PropertyType: "House"})

	assert.Equal(t, combined, stepAB)
}

// Apply must not mutate or alias its input.
func TestApplyPure(t *testing.T) {
	props := testProperties()
	original := testProperties()

	first := Apply(props, "", Criteria{MinPrice: i64(200000)})
	second := Apply(props, "", Criteria{MinPrice: i64(200000)})

	assert.Equal(t, original, props)
	assert.Equal(t, first, second)
}
