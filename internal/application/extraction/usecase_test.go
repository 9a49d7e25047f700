package extraction_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/extraction"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/ports"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

// fakeExtractor implements ports.DocumentExtractor for tests.
type fakeExtractor struct {
	result  *ports.OracleResult
	err     error
	gotReq  ports.OracleRequest
	called  int
	waitCtx bool // when true, block until ctx is done and return its error
}

func (f *fakeExtractor) Extract(ctx context.Context, req ports.OracleRequest) (*ports.OracleResult, error) {
	f.called++
	f.gotReq = req
	if f.waitCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.result, f.err
}

// fakeReader returns a fixed grid regardless of input bytes.
type fakeReader struct {
	grid [][]string
	err  error
}

func (f *fakeReader) ReadGrid([]byte) ([][]string, error) { return f.grid, f.err }

// ── oracle strategy ───────────────────────────────────────────────────────────

// TestExtractFromText_PartialSuccess: one row failing
// validation does not fail the extraction, it shows up as an error row.
func TestExtractFromText_PartialSuccess(t *testing.T) {
	ext := &fakeExtractor{result: &ports.OracleResult{
		Items: []entity.CandidateRecord{
			{ScientificName: "", Size: "M", BoxNumber: intPtr(1)},
			{ScientificName: "Betta splendens", Size: "5cm", BoxNumber: intPtr(2)},
		},
		Supplier:     "Aqua Supplier Ltd",
		DateReceived: "2026-03-01",
	}}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromText(context.Background(), "some invoice text")

	assert.True(t, res.Success, "per-row failures must not flip Success")
	assert.Equal(t, 2, res.Summary.TotalRows)
	assert.Equal(t, 1, res.Summary.ValidRows)
	assert.Equal(t, 1, res.Summary.ErrorRows)

	require.Len(t, res.Data, 2)
	row0 := res.Data[0]
	assert.False(t, row0.Verdict.IsValid)
	require.Len(t, row0.Verdict.Errors, 1)
	assert.Equal(t, "scientificName", row0.Verdict.Errors[0].Field)

	assert.Equal(t, "Aqua Supplier Ltd", res.Meta.Supplier)
	assert.Equal(t, "2026-03-01", res.Meta.DateReceived)
}

func TestExtractFromText_NormalizesRecords(t *testing.T) {
	ext := &fakeExtractor{result: &ports.OracleResult{
		Items: []entity.CandidateRecord{
			{ScientificName: "Paracheirodon innesi", Size: "S", BagCount: intPtr(10), QuantityPerBag: intPtr(10)},
		},
	}}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromText(context.Background(), "text")
	require.True(t, res.Success)
	rec := res.Data[0]
	require.NotNil(t, rec.TotalQuantity)
	assert.Equal(t, 100, *rec.TotalQuantity)
	assert.Equal(t, "ILS", rec.Currency)
	require.NotNil(t, rec.BoxNumber, "box number defaults when the source omits it")
	assert.Equal(t, 1, *rec.BoxNumber)
	assert.True(t, rec.Verdict.IsValid)
}

func TestExtractFromText_OracleErrorBecomesResult(t *testing.T) {
	ext := &fakeExtractor{err: domain.ErrOracleUnreachable}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromText(context.Background(), "text")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "unreachable")
	assert.Empty(t, res.Data)
}

func TestExtractFromText_MalformedResponseCarriesRawPrefix(t *testing.T) {
	ext := &fakeExtractor{err: &domain.MalformedOracleResponseError{
		RawPrefix: "I'm sorry, I cannot", Cause: errors.New("invalid character 'I'"),
	}}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromText(context.Background(), "text")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "I'm sorry")
}

func TestExtractFromText_ZeroItemsIsFailure(t *testing.T) {
	ext := &fakeExtractor{result: &ports.OracleResult{}}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromText(context.Background(), "text")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "zero items")
}

func TestExtractFromText_EmptyInput(t *testing.T) {
	ext := &fakeExtractor{}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromText(context.Background(), "   ")
	assert.False(t, res.Success)
	assert.Zero(t, ext.called, "empty input must not reach the oracle")
}

func TestExtractFromText_Timeout(t *testing.T) {
	ext := &fakeExtractor{waitCtx: true}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 50*time.Millisecond)

	res := uc.ExtractFromText(context.Background(), "text")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "timed out")
}

// TestExtractFromText_AdapterTimeout: the HTTP adapter reports deadline hits
// as a wrapped ErrOracleTimeout, not a raw ctx.Err(); both shapes must land
// on the same message.
func TestExtractFromText_AdapterTimeout(t *testing.T) {
	ext := &fakeExtractor{err: fmt.Errorf("%w: %v", domain.ErrOracleTimeout, context.DeadlineExceeded)}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromText(context.Background(), "text")
	assert.False(t, res.Success)
	assert.Equal(t, "extraction timed out", res.Error)
}

// ── file routing ──────────────────────────────────────────────────────────────

func TestExtractFromFile_PDFGoesToOracle(t *testing.T) {
	ext := &fakeExtractor{result: &ports.OracleResult{
		Items: []entity.CandidateRecord{{ScientificName: "X", Size: "M", BoxNumber: intPtr(1)}},
	}}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	res := uc.ExtractFromFile(context.Background(), "invoice.pdf", []byte("%PDF-1.4"))
	assert.True(t, res.Success)
	assert.Equal(t, ports.InputDocument, ext.gotReq.Kind)
	assert.Equal(t, "application/pdf", ext.gotReq.MediaType)
}

func TestExtractFromFile_ImageGoesToOracle(t *testing.T) {
	ext := &fakeExtractor{result: &ports.OracleResult{
		Items: []entity.CandidateRecord{{ScientificName: "X", Size: "M", BoxNumber: intPtr(1)}},
	}}
	uc := extraction.NewUseCase(ext, &fakeReader{}, 0)

	uc.ExtractFromFile(context.Background(), "photo.PNG", []byte{0x89})
	assert.Equal(t, ports.InputImage, ext.gotReq.Kind)
	assert.Equal(t, "image/png", ext.gotReq.MediaType)
}

// ── grid strategy ─────────────────────────────────────────────────────────────

func TestExtractFromFile_SpreadsheetGrid(t *testing.T) {
	reader := &fakeReader{grid: [][]string{
		{"חוות דגים"},
		{"שם מדעי", "גודל", "מספר ארגז", "כמות", "מחיר"},
		{"Betta splendens", "M", "2", "50", "4.20"},
		{"", "", "", "", ""}, // blank rows are skipped
		{"Paracheirodon innesi", "S", "", "500", ""},
	}}
	ext := &fakeExtractor{}
	uc := extraction.NewUseCase(ext, reader, 0)

	res := uc.ExtractFromFile(context.Background(), "order.xlsx", []byte("fake"))

	require.True(t, res.Success, res.Error)
	assert.Zero(t, ext.called, "grid strategy must not call the oracle")
	assert.Equal(t, 2, res.Summary.TotalRows)
	assert.Equal(t, 2, res.Summary.ValidRows)

	first := res.Data[0]
	assert.Equal(t, "Betta splendens", first.ScientificName)
	require.NotNil(t, first.BoxNumber)
	assert.Equal(t, 2, *first.BoxNumber)
	require.NotNil(t, first.UnitPrice)
	assert.Equal(t, "4.2", first.UnitPrice.String())

	second := res.Data[1]
	require.NotNil(t, second.BoxNumber, "missing box column defaults to 1")
	assert.Equal(t, 1, *second.BoxNumber)
	require.NotNil(t, second.TotalQuantity)
	assert.Equal(t, 500, *second.TotalQuantity)
}

func TestExtractFromFile_HeaderNotFoundIsFatal(t *testing.T) {
	reader := &fakeReader{grid: [][]string{{"a", "b"}, {"c", "d"}}}
	uc := extraction.NewUseCase(&fakeExtractor{}, reader, 0)

	res := uc.ExtractFromFile(context.Background(), "order.xlsx", []byte("fake"))
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "no header row")
}

func TestExtractFromFile_BadNumberBecomesWarning(t *testing.T) {
	reader := &fakeReader{grid: [][]string{
		{"שם מדעי", "גודל", "מספר ארגז"},
		{"Betta splendens", "M", "two"},
	}}
	uc := extraction.NewUseCase(&fakeExtractor{}, reader, 0)

	res := uc.ExtractFromFile(context.Background(), "order.xlsx", []byte("fake"))
	require.True(t, res.Success)
	rec := res.Data[0]
	assert.True(t, rec.Verdict.IsValid, "unparseable box number falls back to the default")
	assert.NotEmpty(t, rec.Verdict.Warnings)
}

func TestExtractFromFile_CSV(t *testing.T) {
	csvData := "scientific name,size,box number\nBetta splendens,M,1\n"
	uc := extraction.NewUseCase(&fakeExtractor{}, &fakeReader{}, 0)

	res := uc.ExtractFromFile(context.Background(), "order.csv", []byte(csvData))
	require.True(t, res.Success, res.Error)
	assert.Equal(t, 1, res.Summary.TotalRows)
	assert.Equal(t, "Betta splendens", res.Data[0].ScientificName)
}
