package ports

import (
	"context"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

// Input kinds accepted by the extraction oracle.
const (
	InputText     = "text"     // free-form pasted text, CSV-like sheet dumps
	InputDocument = "document" // binary document (PDF), base64-embedded
	InputImage    = "image"    // photo of an invoice, base64-embedded
)

// OracleRequest is one document handed to the extraction oracle. Exactly one
// modality is used, selected by Kind: Text for InputText, Data+MediaType for
// InputDocument and InputImage.
type OracleRequest struct {
	Kind      string
	Text      string
	Data      []byte // raw bytes; the adapter handles base64 embedding
	MediaType string // e.g. "application/pdf", "image/jpeg"
}

// OracleResult is the decoded oracle answer: candidate line items plus any
// shipment-level metadata the model recognized on the document.
type OracleResult struct {
	Items        []entity.CandidateRecord
	Supplier     string
	DateReceived string
}

// DocumentExtractor defines the outbound port to the AI document-understanding
// service. Any adapter (Anthropic, mock) implements this contract. The
// application layer only knows this interface, never the concrete API (DIP).
//
// Implementations must honor ctx cancellation/deadline and must map failures
// to the domain error kinds: ErrOracleUnreachable, ErrOracleTimeout,
// ErrNoItemsExtracted and MalformedOracleResponseError.
type DocumentExtractor interface {
	Extract(ctx context.Context, req OracleRequest) (*OracleResult, error)
}
