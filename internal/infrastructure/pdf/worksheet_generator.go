// Package pdf renders the printable reception worksheet the floor team works
// from on delivery day.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shipment reference  │  Supplier + Expected date    │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Box | Name | Scientific | Size | Qty | Room | Tank  │
//	│  ───────────────────────────────────────────────────────── │
//	│  ROLLUP: lines per size  /  lines per room                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreception "github.com/aquafarm-pro/aquafarm-api/internal/application/reception"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	domainreception "github.com/aquafarm-pro/aquafarm-api/internal/domain/reception"
)

var _ appreception.WorksheetGenerator = (*MarotoWorksheetGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 13, Green: 94, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoWorksheetGenerator implements reception.WorksheetGenerator using
// Maroto v2.
type MarotoWorksheetGenerator struct{}

// NewMarotoWorksheetGenerator builds the generator.
func NewMarotoWorksheetGenerator() *MarotoWorksheetGenerator { return &MarotoWorksheetGenerator{} }

// Generate renders the worksheet PDF and returns its bytes.
func (g *MarotoWorksheetGenerator) Generate(
	plan *entity.ReceptionPlan,
	items []entity.ReceptionItem,
	req domainreception.WorkRequirements,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reception Worksheet", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range rollupRows(req) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate worksheet: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── sections ──────────────────────────────────────────────────────────────────

// headerRow: shipment reference (left), supplier and expected date (right).
func headerRow(plan *entity.ReceptionPlan) core.Row {
	date := plan.ExpectedDate.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RECEPTION WORKSHEET", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(plan.ShipmentReference, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7,
			}),
			text.New("Room: "+nonEmpty(plan.TargetRoom, "—"), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(plan.SupplierName, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Origin: "+nonEmpty(plan.CountryOfOrigin, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Expected: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Box", 1, align.Center),
		h("Name", 3, align.Left),
		h("Scientific name", 3, align.Left),
		h("Size", 1, align.Center),
		h("Qty", 1, align.Right),
		h("Room", 1, align.Left),
		h("Tank", 1, align.Left),
		h("✓", 1, align.Center),
	)
}

// itemRows: one row per planned fish line, with an empty check column the
// operator ticks on paper.
func itemRows(items []entity.ReceptionItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		box := "—"
		if it.BoxNumber != nil {
			box = strconv.Itoa(*it.BoxNumber)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(box, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(it.HebrewName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.ScientificName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.Size, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(it.TargetRoom, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(nonEmpty(it.TargetAquariumNumber, "—"), props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New("☐", props.Text{Size: 9, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// rollupRows: the per-size and per-room work summary.
func rollupRows(req domainreception.WorkRequirements) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("WORK SUMMARY — %d lines, %d tanks to prepare",
				req.TotalItems, req.TotalAquariumsNeeded), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		)),
	}

	for _, size := range sortedKeys(req.BySize) {
		bucket := req.BySize[size]
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Size %s: %d lines", size, bucket.Count), props.Text{
				Size: 8, Top: 1, Left: 2, Color: colorGray,
			}),
		)))
	}
	for _, room := range sortedKeys(req.ByRoom) {
		bucket := req.ByRoom[room]
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Room %s: %d lines", nonEmpty(room, "unassigned"), bucket.Count), props.Text{
				Size: 8, Top: 1, Left: 2, Color: colorGray,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
