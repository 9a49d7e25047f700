package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// Extraction pipeline.
	ErrOracleUnreachable = errors.New("extraction service unreachable")
	ErrOracleTimeout     = errors.New("extraction service timed out")
	ErrNoItemsExtracted  = errors.New("no items extracted from document")

	// Shipment import preconditions. Checked before any write.
	ErrUnauthenticated = errors.New("caller is not authenticated")
	ErrMissingFarm     = errors.New("farm id is required")
	ErrEmptyImport     = errors.New("import requires at least one item")

	// Reception plan lifecycle.
	ErrPlanLocked          = errors.New("plan is locked, items cannot be modified")
	ErrInvalidTransition   = errors.New("invalid plan status transition")
	ErrItemAlreadyReceived = errors.New("item was already received")
)

// HeaderNotFoundError is returned when no recognizable header row exists in the
// scanned window of a spreadsheet. Fatal for the grid pipeline: without a header
// no column mapping is possible.
type HeaderNotFoundError struct {
	RowsScanned int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("no header row found in the first %d rows", e.RowsScanned)
}

// MalformedOracleResponseError is returned when the extraction oracle answered
// but its output could not be decoded as the expected JSON object. RawPrefix
// holds at most the first 200 characters of the raw output for diagnostics.
type MalformedOracleResponseError struct {
	RawPrefix string
	Cause     error
}

func (e *MalformedOracleResponseError) Error() string {
	return fmt.Sprintf("malformed oracle response: %v (raw: %s)", e.Cause, e.RawPrefix)
}

func (e *MalformedOracleResponseError) Unwrap() error { return e.Cause }

// TruncateRaw trims s to the 200-character diagnostic window used by
// MalformedOracleResponseError. The cut lands on a rune boundary so oracle
// output in Hebrew never leaves a broken byte sequence in the log.
func TruncateRaw(s string) string {
	const maxRaw = 200
	count := 0
	for i := range s {
		if count == maxRaw {
			return s[:i]
		}
		count++
	}
	return s
}
