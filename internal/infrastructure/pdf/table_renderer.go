package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// TableRenderer renders a flat data set as a tabular PDF, for the per-resource
// download endpoints.
type TableRenderer struct{}

// NewTableRenderer builds the renderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

// TableOptions tunes the page layout. Scale shrinks fonts and row heights for
// wide tables; zero means 1.0.
type TableOptions struct {
	Landscape bool
	Scale     float64
}

// Render generates a PDF with one row per record. The title and the column
// headers are registered as the page header, so they repeat on every page;
// the footer carries the page number.
func (g *TableRenderer) Render(title string, headers []string, records [][]string, opts TableOptions) ([]byte, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("pdf: table needs at least one column")
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	builder := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(14).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8 * scale}).
		WithPageNumber(props.PageNumber{Pattern: "Page {current} of {total}", Place: props.Bottom, Size: 8}).
		WithTitle(title, true)
	if opts.Landscape {
		builder = builder.WithOrientation(orientation.Horizontal)
	}
	m := maroto.New(builder.Build())

	widths := columnWidths(len(headers))
	headerCols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		headerCols = append(headerCols, col.New(widths[i]).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 8 * scale, Align: align.Left, Color: colorPrimary, Top: 1}),
		))
	}
	err := m.RegisterHeader(
		row.New(10*scale).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 12 * scale, Color: colorPrimary, Top: 1}),
		)),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}),
		row.New(7*scale).Add(headerCols...),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf: register table header: %w", err)
	}

	for _, rec := range records {
		cols := make([]core.Col, 0, len(headers))
		for i := range headers {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			cols = append(cols, col.New(widths[i]).Add(
				text.New(v, props.Text{Size: 7.5 * scale, Align: align.Left, Top: 1}),
			))
		}
		m.AddRows(row.New(6 * scale).Add(cols...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate table: %w", err)
	}
	return doc.GetBytes(), nil
}

// columnWidths splits Maroto's 12-column grid across n columns.
func columnWidths(n int) []int {
	widths := make([]int, n)
	base := 12 / n
	rest := 12 % n
	for i := range widths {
		widths[i] = base
	}
	widths[0] += rest
	return widths
}
