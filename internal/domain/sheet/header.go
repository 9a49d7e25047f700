package sheet

import (
	"strings"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
)

// headerScanWindow limits how many leading rows are scanned for a header.
// Supplier sheets often carry a title block before the table, never more than
// a handful of rows deep.
const headerScanWindow = 10

// headerMarkers are substrings whose presence in any cell marks a row as the
// header row.
var headerMarkers = []string{"שם", "גודל", "מספר ארגז", "scientific", "size", "box"}

// FindHeaderRow scans at most the first 10 rows of the grid for one containing
// any known marker substring and returns its index. The first matching row is
// the header; everything above it is discarded by the caller. Returns
// *domain.HeaderNotFoundError when no row matches, which is a hard stop: all
// downstream column mapping depends on the header.
func FindHeaderRow(grid [][]string) (int, error) {
	limit := len(grid)
	if limit > headerScanWindow {
		limit = headerScanWindow
	}
	for i := 0; i < limit; i++ {
		if isHeaderRow(grid[i]) {
			return i, nil
		}
	}
	return -1, &domain.HeaderNotFoundError{RowsScanned: limit}
}

func isHeaderRow(row []string) bool {
	for _, cell := range row {
		cell = strings.ToLower(strings.TrimSpace(cell))
		if cell == "" {
			continue
		}
		for _, marker := range headerMarkers {
			if strings.Contains(cell, marker) {
				return true
			}
		}
	}
	return false
}
