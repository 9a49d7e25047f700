package dto

import (
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/validation"
)

// ExtractedRecord is one candidate line item with its validation verdict
// attached, ready for the operator to correct or confirm.
type ExtractedRecord struct {
	entity.CandidateRecord
	Verdict validation.Verdict `json:"verdict"`
}

// ExtractionSummary counts the rows of one extraction run.
type ExtractionSummary struct {
	TotalRows int `json:"totalRows"`
	ValidRows int `json:"validRows"`
	ErrorRows int `json:"errorRows"`
}

// ExtractedMeta is shipment-level metadata the oracle may recognize on the
// document itself.
type ExtractedMeta struct {
	Supplier     string `json:"supplier,omitempty"`
	DateReceived string `json:"dateReceived,omitempty"`
}

// ExtractionResult is the outcome of one document extraction.
//
// Success is false only when the pipeline itself failed (oracle unreachable,
// unusable response, zero items, unreadable spreadsheet). Rows failing
// validation do NOT flip Success: partial success surfaces as ErrorRows > 0
// with per-row verdicts.
type ExtractionResult struct {
	Success bool              `json:"success"`
	Data    []ExtractedRecord `json:"data,omitempty"`
	Summary ExtractionSummary `json:"summary"`
	Meta    ExtractedMeta     `json:"extractedMeta"`
	Error   string            `json:"error,omitempty"`
}

// ExtractTextRequest free-form pasted text input for extraction.
type ExtractTextRequest struct {
	Text string `json:"text" validate:"required"`
}
