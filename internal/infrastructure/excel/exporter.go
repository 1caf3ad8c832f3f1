// Package excel builds the .xlsx downloads with excelize: a flat export (one
// row per record) and a grouped export for the financial-year summaries.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// Exporter renders spreadsheets.
type Exporter struct{}

// NewExporter builds the exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Flat writes a header row and one row per record.
func (e *Exporter) Flat(sheet string, headers []string, records [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0D47A1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: header style: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: write header: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheet, "A1", last, headerStyle)

	for r, rec := range records {
		for c, v := range rec {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: write cell: %w", err)
			}
		}
	}
	_ = f.SetColWidth(sheet, "A", "Z", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// Grouped writes the summary pivot: a group header, then per month with
// activity a month subheader, a column header row and the data rows. rowFn
// turns a report row into spreadsheet cells matching rowHeaders.
func (e *Exporter) Grouped(sheet string, groups []dto.GroupSummary, rowHeaders []string, rowFn func(repository.ReportRow) []any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	groupStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0D47A1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: group style: %w", err)
	}
	monthStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"BBDEFB"}},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	rowNum := 1
	writeRow := func(style int, cells ...any) error {
		for c, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowNum)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("excel: write cell: %w", err)
			}
		}
		if style != 0 {
			first, _ := excelize.CoordinatesToCellName(1, rowNum)
			last, _ := excelize.CoordinatesToCellName(len(rowHeaders), rowNum)
			_ = f.SetCellStyle(sheet, first, last, style)
		}
		rowNum++
		return nil
	}

	for _, g := range groups {
		total, _ := g.TotalAmount.Float64()
		if err := writeRow(groupStyle, g.GroupLabel, fmt.Sprintf("%d records", g.Count), total); err != nil {
			return nil, err
		}
		for _, m := range g.Months {
			if len(m.Rows) == 0 {
				continue
			}
			monthTotal, _ := m.TotalAmount.Float64()
			if err := writeRow(monthStyle, m.Month, fmt.Sprintf("%d records", m.Count), monthTotal); err != nil {
				return nil, err
			}
			headerCells := make([]any, len(rowHeaders))
			for i, h := range rowHeaders {
				headerCells[i] = h
			}
			if err := writeRow(headerStyle, headerCells...); err != nil {
				return nil, err
			}
			for _, r := range m.Rows {
				if err := writeRow(0, rowFn(r)...); err != nil {
					return nil, err
				}
			}
		}
		rowNum++ // blank row between groups
	}
	_ = f.SetColWidth(sheet, "A", "Z", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write buffer: %w", err)
	}
	return buf.Bytes(), nil
}
