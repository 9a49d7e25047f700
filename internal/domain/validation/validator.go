package validation

import (
	"fmt"
	"strings"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

// FieldError is one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Verdict is the outcome of validating a single record. Every violated rule is
// collected (not fail-fast) so the operator sees all problems at once.
type Verdict struct {
	IsValid  bool         `json:"isValid"`
	Errors   []FieldError `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

func (v *Verdict) addError(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

func (v *Verdict) finish() Verdict {
	v.IsValid = len(v.Errors) == 0
	return *v
}

// ValidateCandidate checks the mandatory fields of an extracted fish line.
// Pure function: same record in, same verdict out, no side effects.
//
// BoxNumber is a presence check, not a truthiness check: box number 0 is a
// valid box, only a nil pointer counts as missing.
func ValidateCandidate(rec entity.CandidateRecord) Verdict {
	var v Verdict
	if strings.TrimSpace(rec.ScientificName) == "" {
		v.addError("scientificName", "scientific name is required")
	}
	if strings.TrimSpace(rec.Size) == "" {
		v.addError("size", "size is required")
	}
	if rec.BoxNumber == nil {
		v.addError("boxNumber", "box number is required")
	}
	if rec.TotalQuantity != nil && *rec.TotalQuantity < 0 {
		v.addError("totalQuantity", "total quantity cannot be negative")
	}
	return v.finish()
}

// ValidateAquarium checks the invariants of an aquarium record:
// number and room non-empty, volume strictly positive.
func ValidateAquarium(a entity.Aquarium) Verdict {
	var v Verdict
	if strings.TrimSpace(a.Number) == "" {
		v.addError("aquariumNumber", "aquarium number is required")
	}
	if !a.Volume.IsPositive() {
		v.addError("volume", "volume must be greater than zero")
	}
	if strings.TrimSpace(a.Room) == "" {
		v.addError("room", "room is required")
	}
	return v.finish()
}

// ValidatePlan checks the mandatory fields of a reception plan.
func ValidatePlan(p entity.ReceptionPlan) Verdict {
	var v Verdict
	if p.ExpectedDate.IsZero() {
		v.addError("expectedDate", "expected date is required")
	}
	if p.Source != entity.PlanSourceExcel && p.Source != entity.PlanSourceManual {
		v.addError("source", fmt.Sprintf("source must be %q or %q", entity.PlanSourceExcel, entity.PlanSourceManual))
	}
	if strings.TrimSpace(p.CountryOfOrigin) == "" {
		v.addError("countryOfOrigin", "country of origin is required")
	}
	if strings.TrimSpace(p.SupplierName) == "" {
		v.addError("supplierName", "supplier name is required")
	}
	if strings.TrimSpace(p.TargetRoom) == "" {
		v.addError("targetRoom", "target room is required")
	}
	return v.finish()
}

// ValidateItem checks the mandatory fields of a reception item. Quantity is
// only checked when provided (> 0); zero means the caller left it unset.
func ValidateItem(it entity.ReceptionItem) Verdict {
	var v Verdict
	if strings.TrimSpace(it.HebrewName) == "" {
		v.addError("hebrewName", "hebrew name is required")
	}
	if strings.TrimSpace(it.Size) == "" {
		v.addError("size", "size is required")
	}
	if strings.TrimSpace(it.TargetAquariumID) == "" {
		v.addError("targetAquariumId", "target aquarium is required")
	}
	if it.Quantity < 0 {
		v.addError("quantity", "quantity must be greater than zero")
	}
	return v.finish()
}
