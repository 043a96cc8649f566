package record

import (
	"errors"
	"testing"
	"time"
)

func TestValidate_TransactionAmount(t *testing.T) {
	t.Parallel()

	base := Transaction{
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Type:        TransactionIncome,
		Description: "Abbonamenti gennaio",
		Status:      StatusPaid,
		Location:    LocationNexus,
	}

	zero := base
	zero.Amount = 0
	_, err := Validate(TableTransactions, zero.Values())
	if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected amount 0 to be rejected, got %v", err)
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Column != ColAmount {
		t.Fatalf("expected validation error on amount column, got %v", err)
	}

	cent := base
	cent.Amount = 0.01
	values, err := Validate(TableTransactions, cent.Values())
	if err != nil {
		t.Fatalf("expected amount 0.01 to be accepted, got %v", err)
	}
	if values[3] != "0.01" {
		t.Fatalf("unexpected normalized amount %q", values[3])
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		table  Table
		values []string
		column string
	}{
		{"employee first name", TableEmployees, Employee{FirstName: " ", LastName: "Rossi"}.Values(), ColFirstName},
		{"employee last name", TableEmployees, Employee{FirstName: "Mario"}.Values(), ColLastName},
		{"supplier company", TableSuppliers, Supplier{VATNumber: "IT123"}.Values(), ColCompanyName},
		{"transaction description", TableTransactions, Transaction{Amount: 10}.Values(), ColDescription},
		{"appointment title", TableAppointments, Appointment{Description: "x"}.Values(), ColTitle},
		{"todo activity", TableTodos, Todo{}.Values(), ColActivity},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Validate(tc.table, tc.values)
			if !errors.Is(err, ErrRequired) {
				t.Fatalf("expected ErrRequired, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Column != tc.column {
				t.Fatalf("expected column %s, got %v", tc.column, err)
			}
		})
	}
}

func TestValidate_FieldCount(t *testing.T) {
	t.Parallel()

	_, err := Validate(TableTodos, []string{"Pulire spogliatoi"})
	if !errors.Is(err, ErrFieldCount) || !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrFieldCount, got %v", err)
	}
}

func TestValidate_UnknownTable(t *testing.T) {
	t.Parallel()

	if _, err := Validate(Table("dipendenti"), nil); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestValidate_Normalization(t *testing.T) {
	t.Parallel()

	values, err := Validate(TableTransactions, []string{" 2024-03-01 ", "INCOME", " Quote ", "12,50", "unpaid", "", "nexus"})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	want := []string{"2024-03-01", "income", "Quote", "12.5", "unpaid", "", "NEXUS"}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("value %d: want %q got %q", i, want[i], values[i])
		}
	}

	todo, err := Validate(TableTodos, []string{"Ordinare asciugamani", "", ""})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if todo[2] != "false" {
		t.Fatalf("expected empty completed to default to false, got %q", todo[2])
	}

	appt, err := Validate(TableAppointments, []string{"2024-05-01", "09:30:00", "Riunione", ""})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if appt[1] != "09:30" {
		t.Fatalf("expected time normalized to HH:MM, got %q", appt[1])
	}
}

func TestValidate_InvalidValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		table  Table
		values []string
		want   error
	}{
		{"bad date", TableTodos, []string{"a", "01/02/2024", "false"}, ErrInvalidDate},
		{"bad bool", TableTodos, []string{"a", "", "maybe"}, ErrInvalidBool},
		{"bad time", TableAppointments, []string{"", "25:00", "t", ""}, ErrInvalidTime},
		{"bad enum", TableEmployees, []string{"a", "b", "", "", "freelance", "", ""}, ErrInvalidEnum},
		{"negative amount", TableTransactions, []string{"", "", "d", "-5", "", "", ""}, ErrInvalidAmount},
		{"text amount", TableTransactions, []string{"", "", "d", "ten", "", "", ""}, ErrInvalidAmount},
		{"hex amount", TableTransactions, []string{"", "", "d", "0x1p-2", "", "", ""}, ErrInvalidAmount},
		{"exponent amount", TableTransactions, []string{"", "", "d", "1e2", "", "", ""}, ErrInvalidAmount},
		{"infinite amount", TableTransactions, []string{"", "", "d", "Inf", "", "", ""}, ErrInvalidAmount},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Validate(tc.table, tc.values); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	got, err := ParseTable(" Transactions ")
	if err != nil || got != TableTransactions {
		t.Fatalf("unexpected result %q %v", got, err)
	}

	if _, err := ParseTable("unknown"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestTable_ColumnsAreCopies(t *testing.T) {
	t.Parallel()

	cols := TableTodos.Columns()
	cols[0].Name = "mutated"

	if TableTodos.ColumnNames()[0] != ColActivity {
		t.Fatalf("column declarations must not be mutable through Columns()")
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	valid := map[string]float64{
		"100":    100,
		"49.5":   49.5,
		"49,5":   49.5,
		" 0.01 ": 0.01,
		".5":     0.5,
		"100.00": 100,
	}
	for raw, want := range valid {
		got, err := ParseAmount(raw)
		if err != nil || got != want {
			t.Fatalf("ParseAmount(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}

	for _, raw := range []string{"0x1p-2", "1e2", "1E-3", "+5", "Inf", "NaN", "1.2.3", "1,000,50", ".", "-", "12a"} {
		if _, err := ParseAmount(raw); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q): expected ErrInvalidAmount, got %v", raw, err)
		}
	}
}
