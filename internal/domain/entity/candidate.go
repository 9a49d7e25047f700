package entity

import "github.com/shopspring/decimal"

// DefaultCurrency is assumed when a source document carries no currency.
const DefaultCurrency = "ILS"

// CandidateRecord is one prospective fish line item extracted from a document,
// before validation and persistence. Produced once by extraction, immutable
// afterwards: it is either promoted into a shipment/plan or discarded.
//
// Optional numeric fields are pointers so that "absent" and "zero" stay
// distinguishable. BoxNumber in particular: box number 0 is a real box, only a
// nil pointer means the source omitted it.
type CandidateRecord struct {
	ScientificName string           `json:"scientificName"`
	CommonName     string           `json:"commonName,omitempty"`
	Size           string           `json:"size"`
	Code           string           `json:"code,omitempty"`
	BoxNumber      *int             `json:"boxNumber"`
	BagCount       *int             `json:"bagCount,omitempty"`
	QuantityPerBag *int             `json:"quantityPerBag,omitempty"`
	TotalQuantity  *int             `json:"totalQuantity,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
	Currency       string           `json:"currency,omitempty"`
}

// EffectiveQuantity resolves the fallback chain for the line quantity:
// explicit TotalQuantity, else BagCount*QuantityPerBag, else 1.
func (c *CandidateRecord) EffectiveQuantity() int {
	if c.TotalQuantity != nil {
		return *c.TotalQuantity
	}
	if c.BagCount != nil && c.QuantityPerBag != nil {
		return *c.BagCount * *c.QuantityPerBag
	}
	return 1
}

// Normalize applies the derivation rules in place: TotalQuantity fallback
// chain, BoxNumber default of 1, currency default. Called exactly once by the
// extraction adapter before validation.
func (c *CandidateRecord) Normalize() {
	if c.TotalQuantity == nil {
		q := c.EffectiveQuantity()
		c.TotalQuantity = &q
	}
	if c.BoxNumber == nil {
		one := 1
		c.BoxNumber = &one
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
}
