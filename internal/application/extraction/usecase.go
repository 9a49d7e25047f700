package extraction

import (
	"context"
	"encoding/csv"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/ports"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/sheet"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/validation"
)

// UseCase turns an arbitrary uploaded document into validated candidate
// records. Two strategies feed the same downstream shape:
//
//   - grid: spreadsheets parsed directly (header detection + column
//     resolution), no AI involved;
//   - oracle: everything else (pasted text, PDFs, photos) goes through the
//     external extraction oracle.
//
// Whatever happens inside, the use case never lets a failure escape as a
// panic or raw error: fatal problems come back as {Success:false, Error}.
type UseCase struct {
	extractor ports.DocumentExtractor
	reader    SpreadsheetReader
	timeout   time.Duration
}

// NewUseCase builds the extraction use case. timeout bounds one oracle call;
// zero means the 45 s default.
func NewUseCase(extractor ports.DocumentExtractor, reader SpreadsheetReader, timeout time.Duration) *UseCase {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &UseCase{extractor: extractor, reader: reader, timeout: timeout}
}

// ExtractFromText runs the oracle strategy over free-form pasted text.
func (uc *UseCase) ExtractFromText(ctx context.Context, text string) dto.ExtractionResult {
	if strings.TrimSpace(text) == "" {
		return failure("text is empty")
	}
	return uc.extractViaOracle(ctx, ports.OracleRequest{Kind: ports.InputText, Text: text})
}

// ExtractFromFile picks the strategy from the file name: spreadsheets are
// parsed directly into a grid, PDFs and images are embedded into an oracle
// request. Anything unrecognized is treated as plain text.
func (uc *UseCase) ExtractFromFile(ctx context.Context, filename string, data []byte) dto.ExtractionResult {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		grid, err := uc.reader.ReadGrid(data)
		if err != nil {
			return failure("read spreadsheet: " + err.Error())
		}
		return uc.extractFromGrid(grid)
	case ".csv":
		grid, err := readCSV(data)
		if err != nil {
			return failure("read csv: " + err.Error())
		}
		return uc.extractFromGrid(grid)
	case ".pdf":
		return uc.extractViaOracle(ctx, ports.OracleRequest{
			Kind: ports.InputDocument, Data: data, MediaType: "application/pdf",
		})
	case ".png", ".jpg", ".jpeg", ".webp":
		return uc.extractViaOracle(ctx, ports.OracleRequest{
			Kind: ports.InputImage, Data: data, MediaType: imageMediaType(filename),
		})
	default:
		return uc.ExtractFromText(ctx, string(data))
	}
}

// ── grid strategy ─────────────────────────────────────────────────────────────

// extractFromGrid maps a raw cell grid into candidate records: find the header
// row (hard stop when missing), resolve each data row through the column
// aliases, then normalize and validate like any other candidate source.
func (uc *UseCase) extractFromGrid(grid [][]string) dto.ExtractionResult {
	headerIdx, err := sheet.FindHeaderRow(grid)
	if err != nil {
		return failure(err.Error())
	}
	header := grid[headerIdx]

	var records []entity.CandidateRecord
	var warnings [][]string
	for _, row := range grid[headerIdx+1:] {
		if isBlankRow(row) {
			continue
		}
		rec, warns := mapRow(header, row)
		records = append(records, rec)
		warnings = append(warnings, warns)
	}
	if len(records) == 0 {
		return failure("spreadsheet has no data rows below the header")
	}
	return finish(records, warnings, dto.ExtractedMeta{})
}

// mapRow resolves one data row into a candidate record. Unparseable numeric
// cells become warnings, not errors: the mandatory-field rules are the
// validator's job.
func mapRow(header, row []string) (entity.CandidateRecord, []string) {
	var warns []string
	parseInt := func(field string) *int {
		raw := sheet.Resolve(header, row, field)
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			warns = append(warns, field+": not a number: "+raw)
			return nil
		}
		return &n
	}
	parsePrice := func(field string) *decimal.Decimal {
		raw := sheet.Resolve(header, row, field)
		if raw == "" {
			return nil
		}
		raw = strings.TrimLeft(strings.TrimSpace(raw), "₪$€")
		d, err := decimal.NewFromString(raw)
		if err != nil {
			warns = append(warns, field+": not a price: "+raw)
			return nil
		}
		return &d
	}

	rec := entity.CandidateRecord{
		ScientificName: sheet.Resolve(header, row, sheet.FieldScientificName),
		CommonName:     sheet.Resolve(header, row, sheet.FieldCommonName),
		Size:           sheet.Resolve(header, row, sheet.FieldSize),
		Code:           sheet.Resolve(header, row, sheet.FieldCode),
		BoxNumber:      parseInt(sheet.FieldBoxNumber),
		BagCount:       parseInt(sheet.FieldBagCount),
		QuantityPerBag: parseInt(sheet.FieldQuantityPerBag),
		TotalQuantity:  parseInt(sheet.FieldTotalQuantity),
		UnitPrice:      parsePrice(sheet.FieldUnitPrice),
		Currency:       sheet.Resolve(header, row, sheet.FieldCurrency),
	}
	return rec, warns
}

// ── oracle strategy ───────────────────────────────────────────────────────────

func (uc *UseCase) extractViaOracle(ctx context.Context, req ports.OracleRequest) dto.ExtractionResult {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res, err := uc.extractor.Extract(ctx, req)
	if err != nil {
		// Every oracle failure is converted, never rethrown. Adapters
		// classify deadline hits as ErrOracleTimeout; a raw ctx.Err()
		// from the shared deadline above is mapped the same way.
		if errors.Is(err, domain.ErrOracleTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return failure("extraction timed out")
		}
		return failure(err.Error())
	}
	if len(res.Items) == 0 {
		return failure("oracle returned zero items")
	}
	warnings := make([][]string, len(res.Items))
	return finish(res.Items, warnings, dto.ExtractedMeta{
		Supplier:     res.Supplier,
		DateReceived: res.DateReceived,
	})
}

// ── shared tail ───────────────────────────────────────────────────────────────

// finish applies derivation rules and validation to every candidate and builds
// the aggregate result. Per-row validation errors never abort the batch.
func finish(records []entity.CandidateRecord, warnings [][]string, meta dto.ExtractedMeta) dto.ExtractionResult {
	out := dto.ExtractionResult{Success: true, Meta: meta}
	out.Summary.TotalRows = len(records)
	out.Data = make([]dto.ExtractedRecord, 0, len(records))
	for i, rec := range records {
		rec.Normalize()
		verdict := validation.ValidateCandidate(rec)
		if i < len(warnings) {
			verdict.Warnings = append(verdict.Warnings, warnings[i]...)
		}
		if verdict.IsValid {
			out.Summary.ValidRows++
		} else {
			out.Summary.ErrorRows++
		}
		out.Data = append(out.Data, dto.ExtractedRecord{CandidateRecord: rec, Verdict: verdict})
	}
	return out
}

func failure(msg string) dto.ExtractionResult {
	return dto.ExtractionResult{Success: false, Error: msg}
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1 // supplier CSVs are ragged
	return r.ReadAll()
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func imageMediaType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
