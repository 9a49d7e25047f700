package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/sheet"
)

func TestResolve_HebrewHeader(t *testing.T) {
	header := []string{"מספר ארגז", "שם מדעי", "גודל", "כמות"}
	row := []string{"3", "Paracheirodon innesi", "2cm", "500"}

	assert.Equal(t, "Paracheirodon innesi", sheet.Resolve(header, row, sheet.FieldScientificName))
	assert.Equal(t, "2cm", sheet.Resolve(header, row, sheet.FieldSize))
	assert.Equal(t, "3", sheet.Resolve(header, row, sheet.FieldBoxNumber))
	assert.Equal(t, "500", sheet.Resolve(header, row, sheet.FieldTotalQuantity))
}

func TestResolve_EnglishHeader(t *testing.T) {
	header := []string{"Box Number", "Scientific Name", "Size", "Unit Price"}
	row := []string{"1", "Betta splendens", "L", "4.20"}

	assert.Equal(t, "Betta splendens", sheet.Resolve(header, row, sheet.FieldScientificName))
	assert.Equal(t, "4.20", sheet.Resolve(header, row, sheet.FieldUnitPrice))
}

// TestResolve_ExactBeatsSubstring pins the priority rule: when both a
// "quantity per bag" and a "quantity" column exist, the total-quantity field
// must resolve to the exact "quantity" column.
func TestResolve_ExactBeatsSubstring(t *testing.T) {
	header := []string{"quantity per bag", "quantity"}
	row := []string{"25", "500"}
	assert.Equal(t, "500", sheet.Resolve(header, row, sheet.FieldTotalQuantity))
	assert.Equal(t, "25", sheet.Resolve(header, row, sheet.FieldQuantityPerBag))
}

func TestResolve_DecoratedHeaderStillMatches(t *testing.T) {
	header := []string{"שם מדעי (לטינית)", "גודל"}
	row := []string{"Symphysodon discus", "XL"}
	assert.Equal(t, "Symphysodon discus", sheet.Resolve(header, row, sheet.FieldScientificName))
}

func TestResolve_EmptyCellIsNull(t *testing.T) {
	header := []string{"scientific name", "size"}
	row := []string{"  ", "M"}
	assert.Equal(t, "", sheet.Resolve(header, row, sheet.FieldScientificName))
}

func TestResolve_MissingColumnIsNull(t *testing.T) {
	header := []string{"size"}
	row := []string{"M"}
	assert.Equal(t, "", sheet.Resolve(header, row, sheet.FieldUnitPrice))
}

func TestResolve_ShortRow(t *testing.T) {
	header := []string{"size", "unit price"}
	row := []string{"M"} // row shorter than header
	assert.Equal(t, "", sheet.Resolve(header, row, sheet.FieldUnitPrice))
}

func TestFindHeaderRow_SkipsTitleBlock(t *testing.T) {
	grid := [][]string{
		{"חוות דגים בע\"מ"},
		{"הזמנה 4711", ""},
		{},
		{"שם מדעי", "גודל", "מספר ארגז"},
		{"Betta splendens", "M", "1"},
	}
	idx, err := sheet.FindHeaderRow(grid)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestFindHeaderRow_FirstRow(t *testing.T) {
	grid := [][]string{{"Scientific Name", "Size"}, {"Betta splendens", "M"}}
	idx, err := sheet.FindHeaderRow(grid)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

// TestFindHeaderRow_NotFound verifies the hard stop: a grid with no
// recognizable header in the first 10 rows fails with HeaderNotFoundError.
func TestFindHeaderRow_NotFound(t *testing.T) {
	grid := make([][]string, 15)
	for i := range grid {
		grid[i] = []string{"x", "y", "z"}
	}
	// Row 12 would match, but it is outside the scan window.
	grid[12] = []string{"שם מדעי", "גודל"}

	_, err := sheet.FindHeaderRow(grid)
	require.Error(t, err)
	var hnf *domain.HeaderNotFoundError
	require.ErrorAs(t, err, &hnf)
	assert.Equal(t, 10, hnf.RowsScanned)
}

func TestFindHeaderRow_EmptyGrid(t *testing.T) {
	_, err := sheet.FindHeaderRow(nil)
	var hnf *domain.HeaderNotFoundError
	require.ErrorAs(t, err, &hnf)
	assert.Equal(t, 0, hnf.RowsScanned)
}
