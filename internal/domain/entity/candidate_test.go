package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

// TestNormalize_DerivesTotalFromBags: bagCount=10 x quantityPerBag=10 with no
// explicit total must derive totalQuantity=100.
func TestNormalize_DerivesTotalFromBags(t *testing.T) {
	rec := entity.CandidateRecord{BagCount: intPtr(10), QuantityPerBag: intPtr(10)}
	rec.Normalize()
	require.NotNil(t, rec.TotalQuantity)
	assert.Equal(t, 100, *rec.TotalQuantity)
}

// TestNormalize_ExplicitTotalPassesThrough: an explicit totalQuantity is never
// recomputed, even when the bag fields disagree.
func TestNormalize_ExplicitTotalPassesThrough(t *testing.T) {
	rec := entity.CandidateRecord{
		BagCount:       intPtr(10),
		QuantityPerBag: intPtr(10),
		TotalQuantity:  intPtr(100),
	}
	rec.Normalize()
	assert.Equal(t, 100, *rec.TotalQuantity)

	rec2 := entity.CandidateRecord{TotalQuantity: intPtr(7), BagCount: intPtr(3), QuantityPerBag: intPtr(4)}
	rec2.Normalize()
	assert.Equal(t, 7, *rec2.TotalQuantity, "explicit total wins over bag arithmetic")
}

func TestNormalize_DefaultsToOne(t *testing.T) {
	rec := entity.CandidateRecord{}
	rec.Normalize()
	require.NotNil(t, rec.TotalQuantity)
	assert.Equal(t, 1, *rec.TotalQuantity)
}

func TestNormalize_BoxNumberDefault(t *testing.T) {
	rec := entity.CandidateRecord{}
	rec.Normalize()
	require.NotNil(t, rec.BoxNumber)
	assert.Equal(t, 1, *rec.BoxNumber)

	rec2 := entity.CandidateRecord{BoxNumber: intPtr(0)}
	rec2.Normalize()
	assert.Equal(t, 0, *rec2.BoxNumber, "box number 0 must survive normalization")
}

func TestNormalize_CurrencyDefault(t *testing.T) {
	rec := entity.CandidateRecord{}
	rec.Normalize()
	assert.Equal(t, "ILS", rec.Currency)

	rec2 := entity.CandidateRecord{Currency: "USD"}
	rec2.Normalize()
	assert.Equal(t, "USD", rec2.Currency)
}

func TestEffectiveQuantity(t *testing.T) {
	assert.Equal(t, 1, (&entity.CandidateRecord{}).EffectiveQuantity())
	assert.Equal(t, 50, (&entity.CandidateRecord{TotalQuantity: intPtr(50)}).EffectiveQuantity())
	assert.Equal(t, 40, (&entity.CandidateRecord{BagCount: intPtr(4), QuantityPerBag: intPtr(10)}).EffectiveQuantity())
	// A lone bag field is not enough to derive a total.
	assert.Equal(t, 1, (&entity.CandidateRecord{BagCount: intPtr(4)}).EffectiveQuantity())
}
