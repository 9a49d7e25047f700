package reception

import (
	"fmt"
	"time"
)

// GenerateShipmentReference builds a human-readable reference for a reception
// plan: משלוח-YYYY-MMDD-<last 6 digits of the unix-millisecond clock>.
//
// The suffix is not a uniqueness guarantee: two calls inside the same
// millisecond produce the same reference. Acceptable for operator-facing
// labels; the plan's real identity is its store-generated ID.
func GenerateShipmentReference(now time.Time) string {
	suffix := now.UnixMilli() % 1_000_000
	return fmt.Sprintf("משלוח-%04d-%02d%02d-%06d", now.Year(), int(now.Month()), now.Day(), suffix)
}
