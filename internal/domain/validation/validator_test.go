package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/validation"
)

func intPtr(n int) *int { return &n }

func validCandidate() entity.CandidateRecord {
	return entity.CandidateRecord{
		ScientificName: "Betta splendens",
		Size:           "5cm",
		BoxNumber:      intPtr(2),
	}
}

func TestValidateCandidate_Valid(t *testing.T) {
	v := validation.ValidateCandidate(validCandidate())
	assert.True(t, v.IsValid)
	assert.Empty(t, v.Errors)
}

// TestValidateCandidate_MissingFields checks that each missing mandatory field
// produces exactly one error for exactly that field, and no others.
func TestValidateCandidate_MissingFields(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*entity.CandidateRecord)
		wantField string
	}{
		{"missing scientific name", func(r *entity.CandidateRecord) { r.ScientificName = "" }, "scientificName"},
		{"whitespace scientific name", func(r *entity.CandidateRecord) { r.ScientificName = "   " }, "scientificName"},
		{"missing size", func(r *entity.CandidateRecord) { r.Size = "" }, "size"},
		{"missing box number", func(r *entity.CandidateRecord) { r.BoxNumber = nil }, "boxNumber"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validCandidate()
			tc.mutate(&rec)
			v := validation.ValidateCandidate(rec)
			assert.False(t, v.IsValid)
			require.Len(t, v.Errors, 1)
			assert.Equal(t, tc.wantField, v.Errors[0].Field)
		})
	}
}

// TestValidateCandidate_BoxNumberZeroIsValid pins the presence-vs-truthiness
// distinction: box number 0 is a real box, not a missing value.
func TestValidateCandidate_BoxNumberZeroIsValid(t *testing.T) {
	rec := validCandidate()
	rec.BoxNumber = intPtr(0)
	v := validation.ValidateCandidate(rec)
	assert.True(t, v.IsValid, "box number 0 must pass the presence check")
}

// TestValidateCandidate_AggregatesAllErrors verifies validation is not
// fail-fast: every violated rule is reported at once.
func TestValidateCandidate_AggregatesAllErrors(t *testing.T) {
	v := validation.ValidateCandidate(entity.CandidateRecord{})
	assert.False(t, v.IsValid)
	require.Len(t, v.Errors, 3)
	fields := []string{v.Errors[0].Field, v.Errors[1].Field, v.Errors[2].Field}
	assert.ElementsMatch(t, []string{"scientificName", "size", "boxNumber"}, fields)
}

// TestValidateCandidate_Idempotent verifies the validator is a pure function:
// validating the same record twice yields identical verdicts.
func TestValidateCandidate_Idempotent(t *testing.T) {
	rec := validCandidate()
	rec.Size = ""
	v1 := validation.ValidateCandidate(rec)
	v2 := validation.ValidateCandidate(rec)
	assert.Equal(t, v1, v2)
}

func TestValidateAquarium(t *testing.T) {
	ok := entity.Aquarium{Number: "A-12", Volume: decimal.NewFromInt(200), Room: "Tropical 1"}
	assert.True(t, validation.ValidateAquarium(ok).IsValid)

	bad := entity.Aquarium{Number: "", Volume: decimal.Zero, Room: ""}
	v := validation.ValidateAquarium(bad)
	assert.False(t, v.IsValid)
	assert.Len(t, v.Errors, 3)
}

func TestValidateAquarium_NegativeVolume(t *testing.T) {
	a := entity.Aquarium{Number: "A-1", Volume: decimal.NewFromInt(-5), Room: "R1"}
	v := validation.ValidateAquarium(a)
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "volume", v.Errors[0].Field)
}

func TestValidatePlan(t *testing.T) {
	v := validation.ValidatePlan(entity.ReceptionPlan{Source: "fax"})
	assert.False(t, v.IsValid)
	// expectedDate, source, countryOfOrigin, supplierName, targetRoom
	assert.Len(t, v.Errors, 5)
}

func TestValidateItem(t *testing.T) {
	ok := entity.ReceptionItem{HebrewName: "לוחם סיאמי", Size: "M", TargetAquariumID: "aq-1", Quantity: 50}
	assert.True(t, validation.ValidateItem(ok).IsValid)

	v := validation.ValidateItem(entity.ReceptionItem{Quantity: -1})
	assert.False(t, v.IsValid)
	assert.Len(t, v.Errors, 4)
}
