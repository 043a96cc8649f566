package xlsx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ogurasousui/gymledger/internal/core/record"
	"github.com/xuri/excelize/v2"
)

func TestExporter_Transactions(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		record.NewRow(1, map[string]string{
			record.ColDate: "2024-01-05", record.ColType: "income", record.ColDescription: "Quote",
			record.ColAmount: "100", record.ColStatus: "paid", record.ColLocation: "NEXUS",
		}),
		record.NewRow(2, map[string]string{
			record.ColType: "payment", record.ColDescription: "Affitto", record.ColAmount: "49.5",
		}),
	}

	var buf bytes.Buffer
	if err := NewExporter().Export(&buf, record.TableTransactions, rows); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "transactions" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	got, err := f.GetRows("transactions")
	if err != nil {
		t.Fatalf("GetRows returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(got))
	}

	wantHeader := []string{"id", "date", "type", "description", "amount", "status", "counterparty", "location"}
	for i, name := range wantHeader {
		if got[0][i] != name {
			t.Fatalf("header[%d] = %q, want %q", i, got[0][i], name)
		}
	}
	if got[1][4] != "100" || got[1][7] != "NEXUS" {
		t.Fatalf("unexpected first row: %v", got[1])
	}
	if got[2][4] != "49.5" {
		t.Fatalf("expected amount 49.5, got %v", got[2])
	}

	cellType, err := f.GetCellType("transactions", "E2")
	if err != nil {
		t.Fatalf("GetCellType returned error: %v", err)
	}
	if cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString {
		t.Fatalf("expected numeric amount cell, got type %v", cellType)
	}
}

func TestExporter_EmptyTableWritesHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewExporter().Export(&buf, record.TableTodos, nil); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("todos")
	if err != nil {
		t.Fatalf("GetRows returned error: %v", err)
	}
	if len(got) != 1 || len(got[0]) != 4 || got[0][1] != "activity" {
		t.Fatalf("expected only the header row, got %v", got)
	}
}

func TestExporter_UnknownTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := NewExporter().Export(&buf, record.Table("members"), nil)
	if !errors.Is(err, record.ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}
