package dashboard

import (
	"testing"
	"time"

	"github.com/ogurasousui/gymledger/internal/core/record"
)

func tx(id int64, typ record.TransactionType, amount string, status record.PaymentStatus, loc record.Location) record.Row {
	values := map[string]string{
		record.ColType:     string(typ),
		record.ColAmount:   amount,
		record.ColStatus:   string(status),
		record.ColLocation: string(loc),
	}
	for k, v := range values {
		if v == "" {
			delete(values, k)
		}
	}
	return record.NewRow(id, values)
}

func appt(id int64, date string) record.Row {
	return record.NewRow(id, map[string]string{record.ColDate: date, record.ColTitle: "appt"})
}

func todo(id int64, due string, completed string) record.Row {
	return record.NewRow(id, map[string]string{
		record.ColActivity:  "todo",
		record.ColDueDate:   due,
		record.ColCompleted: completed,
	})
}

func TestCurrentBalance(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		tx(1, record.TransactionIncome, "100", "", ""),
		tx(2, record.TransactionPayment, "30", "", ""),
		tx(3, record.TransactionSupplierInvoice, "20", "", ""),
	}

	if got := CurrentBalance(rows); got != 50 {
		t.Fatalf("expected balance 50, got %v", got)
	}
}

func TestCurrentBalance_SkipsUnparseableAmounts(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		tx(1, record.TransactionIncome, "100", "", ""),
		tx(2, record.TransactionIncome, "abc", "", ""),
		tx(3, record.TransactionPayment, "", "", ""),
		tx(4, record.TransactionPayment, "40.5", "", ""),
	}

	if got := CurrentBalance(rows); got != 59.5 {
		t.Fatalf("expected balance 59.5, got %v", got)
	}
}

func TestPendingInvoices(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		tx(1, "", "1", record.StatusUnpaid, ""),
		tx(2, "", "1", record.StatusPaid, ""),
		tx(3, "", "1", record.StatusUnpaid, ""),
	}

	if got := PendingInvoices(rows); got != 2 {
		t.Fatalf("expected 2 pending invoices, got %d", got)
	}
}

func TestUpcomingAppointments_SortsAllAndTakesFirstThree(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		appt(1, "2024-05-01"),
		appt(2, "2024-01-10"),
		appt(3, "2024-03-15"),
		appt(4, "2024-12-25"),
	}

	got := UpcomingAppointments(rows, 3)
	want := []string{"2024-01-10", "2024-03-15", "2024-05-01"}
	if len(got) != len(want) {
		t.Fatalf("expected %d appointments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Value(record.ColDate) != want[i] {
			t.Fatalf("position %d: want %s got %s", i, want[i], got[i].Value(record.ColDate))
		}
	}
}

func TestUpcomingAppointments_InvalidDatesSortLast(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		appt(1, "soon"),
		appt(2, "2024-02-01"),
		record.NewRow(3, map[string]string{record.ColTitle: "no date"}),
		appt(4, "2023-02-01"),
	}

	got := UpcomingAppointments(rows, 10)
	ids := []int64{4, 2, 1, 3}
	if len(got) != len(ids) {
		t.Fatalf("expected %d rows, got %d", len(ids), len(got))
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Fatalf("position %d: want id %d got %d", i, id, got[i].ID)
		}
	}

	if got := UpcomingAppointments(nil, 3); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestDueTodos(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []record.Row{
		todo(1, "2024-01-10", "false"),
		todo(2, "2024-02-01", "false"),
		todo(3, "2024-01-05", "true"),
	}

	got := DueTodos(rows, today, DefaultTodoWindowDays)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only todo 1, got %+v", got)
	}
}

func TestDueTodos_BoundariesAndParseFailures(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)
	rows := []record.Row{
		todo(1, "2024-01-16", "0"),
		todo(2, "2024-01-17", "false"),
		todo(3, "2023-12-01", "false"),
		todo(4, "not a date", "false"),
		todo(5, "2024-01-02", "maybe"),
		record.NewRow(6, map[string]string{record.ColActivity: "no due", record.ColCompleted: "false"}),
	}

	got := DueTodos(rows, today, 15)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected todos 1 and 3, got %+v", got)
	}
}

func TestLocationBreakdown(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		tx(1, record.TransactionIncome, "100", "", record.LocationNexus),
		tx(2, record.TransactionIncome, "50", "", record.LocationNexus),
		tx(3, record.TransactionPayment, "bad", "", record.LocationAvenue),
		tx(4, record.TransactionPayment, "10", "", record.LocationAvenue),
		tx(5, record.TransactionIncome, "5", "", "CENTRO"),
		tx(6, record.TransactionIncome, "5", "", ""),
	}

	got := LocationBreakdown(rows)

	// 4 known locations + CENTRO, 3 types each.
	if len(got) != 15 {
		t.Fatalf("expected 15 totals, got %d", len(got))
	}

	find := func(loc record.Location, typ record.TransactionType) float64 {
		for _, lt := range got {
			if lt.Location == loc && lt.Type == typ {
				return lt.Total
			}
		}
		t.Fatalf("missing total for %s/%s", loc, typ)
		return 0
	}

	if v := find(record.LocationNexus, record.TransactionIncome); v != 150 {
		t.Fatalf("expected NEXUS income 150, got %v", v)
	}
	if v := find(record.LocationAvenue, record.TransactionPayment); v != 10 {
		t.Fatalf("expected AVENUE payment 10, got %v", v)
	}
	if v := find(record.LocationYounique, record.TransactionSupplierInvoice); v != 0 {
		t.Fatalf("expected YOUNIQUE zero, got %v", v)
	}
	if v := find("CENTRO", record.TransactionIncome); v != 5 {
		t.Fatalf("expected CENTRO income 5, got %v", v)
	}

	if got[0].Location != record.LocationNexus || got[len(got)-1].Location != "CENTRO" {
		t.Fatalf("unexpected ordering: first %s last %s", got[0].Location, got[len(got)-1].Location)
	}
}

func TestLocationBreakdown_EmptyHasAllKnownLocations(t *testing.T) {
	t.Parallel()

	got := LocationBreakdown(nil)
	if len(got) != len(record.Locations())*len(record.TransactionTypes()) {
		t.Fatalf("unexpected size %d", len(got))
	}
	for _, lt := range got {
		if lt.Total != 0 {
			t.Fatalf("expected zero totals, got %+v", lt)
		}
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	in := Input{
		Employees:    []record.Row{{ID: 1}, {ID: 2}},
		Transactions: []record.Row{tx(1, record.TransactionIncome, "10", record.StatusUnpaid, record.LocationElisir)},
		Appointments: []record.Row{appt(1, "2024-01-01"), appt(2, "2024-01-02"), appt(3, "2024-01-03"), appt(4, "2024-01-04")},
		Todos:        []record.Row{todo(1, "2024-01-02", "false")},
	}

	s := Compute(in, Options{Today: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	if s.EmployeeCount != 2 || s.PendingInvoices != 1 || s.CurrentBalance != 10 {
		t.Fatalf("unexpected scalar metrics: %+v", s)
	}
	if len(s.UpcomingAppointments) != DefaultUpcomingAppointments {
		t.Fatalf("expected default appointment limit, got %d", len(s.UpcomingAppointments))
	}
	if len(s.DueTodos) != 1 {
		t.Fatalf("expected one due todo, got %d", len(s.DueTodos))
	}
	if len(s.Locations) != 12 {
		t.Fatalf("expected 12 location totals, got %d", len(s.Locations))
	}
}

func TestLocationColor(t *testing.T) {
	t.Parallel()

	if LocationColor(record.LocationNexus) != "#9EC9FF" {
		t.Fatalf("unexpected NEXUS color")
	}
	if LocationColor("UNKNOWN") != defaultLocationColor {
		t.Fatalf("expected default color for unknown location")
	}
}
