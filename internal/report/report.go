// Package report writes the quotes of a batch of profiles to a spreadsheet.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"honnef.co/go/cutquote"
)

const (
	QuotesSheet = "Quotes"
	ParamsSheet = "Parameters"
)

// Header is the first row of the quotes sheet.
var Header = []any{"Profile", "Width", "Height", "Rotation (rad)", "Cut length", "Material cost", "Time cost", "Total"}

// Row is the quote of one profile.
type Row struct {
	Profile  string
	Estimate cutquote.Estimate
}

// Build returns a workbook listing rows on the quotes sheet and params on
// the parameters sheet. The caller must close it.
func Build(rows []Row, params cutquote.CostParams) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), QuotesSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeQuotes(f, rows); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeParams(f, params); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeQuotes(f *excelize.File, rows []Row) error {
	if err := f.SetSheetRow(QuotesSheet, "A1", &Header); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(QuotesSheet, 1, 1, style); err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}

	for i, r := range rows {
		est := r.Estimate
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			r.Profile,
			est.Rect.Width(),
			est.Rect.Height(),
			est.Rotation,
			est.CutLength,
			est.MaterialCost,
			est.TimeCost,
			est.Total,
		}
		if err := f.SetSheetRow(QuotesSheet, cell, &values); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		last := fmt.Sprintf("H%d", len(rows)+1)
		if err := f.SetCellStyle(QuotesSheet, "F2", last, money); err != nil {
			return err
		}
	}
	return f.SetColWidth(QuotesSheet, "A", "A", 32)
}

func writeParams(f *excelize.File, p cutquote.CostParams) error {
	if _, err := f.NewSheet(ParamsSheet); err != nil {
		return err
	}
	rows := [][]any{
		{"Parameter", "Value"},
		{"Margin", p.Margin},
		{"Cost per area", p.CostPerArea},
		{"Base speed", p.BaseSpeed},
		{"Cost per time", p.CostPerTime},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(ParamsSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes the workbook for rows and params as XLSX to w.
func Write(w io.Writer, rows []Row, params cutquote.CostParams) error {
	f, err := Build(rows, params)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// Save writes the workbook for rows and params to path.
func Save(path string, rows []Row, params cutquote.CostParams) error {
	f, err := Build(rows, params)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
