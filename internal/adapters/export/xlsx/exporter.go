// Package xlsx はテーブルの行を Excel ブックとして書き出します。
package xlsx

import (
	"fmt"
	"io"

	"github.com/ogurasousui/gymledger/internal/core/dashboard"
	"github.com/ogurasousui/gymledger/internal/core/ledger"
	"github.com/ogurasousui/gymledger/internal/core/record"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Exporter は ledger.Exporter の excelize 実装です。
type Exporter struct{}

// NewExporter は Exporter を生成します。
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export は 1 シートのブックを w に書き出します。1 行目は列名、以降は ID 順の行です。
// 金額は数値セルとして、拠点は拠点色で塗りつぶして出力します。
func (e *Exporter) Export(w io.Writer, table record.Table, rows []record.Row) error {
	if !table.Valid() {
		return fmt.Errorf("%q: %w", string(table), record.ErrUnknownTable)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := table.String()
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#EEEEEE"}},
	})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	columns := table.Columns()
	header := make([]any, 0, len(columns)+1)
	header = append(header, "id")
	for _, c := range columns {
		header = append(header, c.Name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("xlsx: header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("xlsx: apply header style: %w", err)
	}

	locationStyles := map[string]int{}
	for i, row := range rows {
		rowNum := i + 2
		cells := make([]any, 0, len(columns)+1)
		cells = append(cells, row.ID)
		for _, c := range columns {
			cells = append(cells, cellValue(c, row))
		}

		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return fmt.Errorf("xlsx: write row %d: %w", row.ID, err)
		}

		if table != record.TableTransactions {
			continue
		}
		loc, ok := row.Get(record.ColLocation)
		if !ok || loc == "" {
			continue
		}
		styleID, ok := locationStyles[loc]
		if !ok {
			styleID, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{dashboard.LocationColor(record.Location(loc))}},
			})
			if err != nil {
				return fmt.Errorf("xlsx: location style: %w", err)
			}
			locationStyles[loc] = styleID
		}
		cell, _ := excelize.CoordinatesToCellName(columnIndex(columns, record.ColLocation)+2, rowNum)
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("xlsx: apply location style: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return nil
}

// cellValue は decimal 列を数値セルに、その他を文字列セルにします。NULL は空セルです。
func cellValue(c record.Column, row record.Row) any {
	v, ok := row.Get(c.Name)
	if !ok {
		return nil
	}
	if c.Kind == record.KindDecimal {
		if f, err := record.ParseAmount(v); err == nil {
			return f
		}
	}
	return v
}

func columnIndex(columns []record.Column, name string) int {
	for i, c := range columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

var _ ledger.Exporter = (*Exporter)(nil)
