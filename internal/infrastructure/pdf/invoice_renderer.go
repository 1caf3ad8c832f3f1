// Package pdf renders invoice and report documents with Maroto v2.
//
// A4 invoice layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name + GSTIN  │  Invoice no. + dates      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BUYER: name, GSTIN, place of supply, billing address       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | HSN | Rate | GST% | Amount      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: taxable / CGST+SGST or IGST / charges / balance    │
//	│  AMOUNT IN WORDS                                            │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gstbook/gstbook-api/internal/application/billing"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/pkg/config"
	"github.com/gstbook/gstbook-api/pkg/numwords"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// enIN groups digits the Indian way: 12,34,567.89.
var enIN = message.NewPrinter(language.MustParse("en-IN"))

func money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return enIN.Sprintf("Rs. %.2f", f)
}

var _ billing.InvoiceRenderer = (*InvoiceRenderer)(nil)

// InvoiceRenderer renders a sale as an A4 invoice PDF.
type InvoiceRenderer struct {
	gst config.GSTConfig
}

// NewInvoiceRenderer builds the renderer with the seller details printed on
// every invoice.
func NewInvoiceRenderer(gst config.GSTConfig) *InvoiceRenderer {
	return &InvoiceRenderer{gst: gst}
}

// RenderInvoice generates the PDF and returns its bytes. customer may be nil
// for cash sales; the inline buyer name is used instead.
func (g *InvoiceRenderer) RenderInvoice(sale *entity.Sale, customer *entity.Customer) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+sale.InvoiceNumber, true).
		WithAuthor(g.gst.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.buyerRow(sale, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(lineTableHeader())
	for _, r := range lineTableRows(sale.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(sale)...)
	m.AddRows(amountInWordsRow(sale.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *InvoiceRenderer) headerRow(sale *entity.Sale) core.Row {
	title := "TAX INVOICE"
	if sale.Series == entity.SeriesCash {
		title = "INVOICE"
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.gst.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.gst.BusinessAddress, props.Text{Size: 8, Top: 8, Color: colorGray}),
			text.New("GSTIN: "+g.gst.GSTIN, props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Date: "+sale.InvoiceDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func (g *InvoiceRenderer) buyerRow(sale *entity.Sale, customer *entity.Customer) core.Row {
	name := sale.BuyerName
	detail := ""
	address := ""
	if customer != nil {
		name = customer.Name
		detail = fmt.Sprintf("GSTIN: %s   |   Place of supply: %s",
			nonEmpty(customer.GSTNumber, "unregistered"), customer.PlaceOfSupply)
		address = customer.BillingAddress
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(address, props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

func lineTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 4, align.Left),
		h("HSN/SAC", 1, align.Center),
		h("Rate", 2, align.Right),
		h("GST%", 1, align.Center),
		h("Amount", 3, align.Right),
	)
}

func lineTableRows(lines []entity.SaleLine) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			cell(fmt.Sprintf("%d", l.Quantity), 1, align.Center),
			cell(l.Name, 4, align.Left),
			cell(l.HSNCode, 1, align.Center),
			cell(money(l.Rate), 2, align.Right),
			cell(l.GSTSlab.StringFixed(0)+"%", 1, align.Center),
			cell(money(l.TaxableAmount), 3, align.Right),
		))
	}
	return result
}

func totalsRows(sale *entity.Sale) []core.Row {
	pair := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		color := (*props.Color)(nil)
		if bold {
			style = fontstyle.Bold
			size = 10
			color = colorPrimary
		}
		return row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: size - 1, Align: align.Right, Right: 2, Color: color,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Style: style, Size: size, Align: align.Right, Right: 1, Color: color,
			})),
		)
	}

	rows := []core.Row{pair("Taxable amount:", money(sale.TaxableAmount), false)}
	if sale.IGST.IsZero() {
		rows = append(rows,
			pair("CGST:", money(sale.CGST), false),
			pair("SGST:", money(sale.SGST), false),
		)
	} else {
		rows = append(rows, pair("IGST:", money(sale.IGST), false))
	}
	if !sale.ShippingCharges.IsZero() {
		rows = append(rows, pair("Shipping:", money(sale.ShippingCharges), false))
	}
	if !sale.Discount.IsZero() {
		rows = append(rows, pair("Discount:", "- "+money(sale.Discount), false))
	}
	if !sale.OtherAdjustments.IsZero() {
		rows = append(rows, pair("Adjustments:", money(sale.OtherAdjustments), false))
	}
	rows = append(rows, pair("TOTAL:", money(sale.Total), true))
	if !sale.AdvancePaid.IsZero() {
		rows = append(rows,
			pair("Advance paid:", money(sale.AdvancePaid), false),
			pair("BALANCE DUE:", money(sale.BalanceDue), true),
		)
	}
	return rows
}

func amountInWordsRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(numwords.Rupees(total), props.Text{
				Style: fontstyle.Italic, Size: 8, Top: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
