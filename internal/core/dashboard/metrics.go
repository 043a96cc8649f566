// Package dashboard はダッシュボードに表示する集計値を行集合から算出します。
// すべての関数は純粋関数で、日付や金額を解釈できない行は各指標の規則に従って除外されます。
package dashboard

import (
	"sort"
	"time"

	"github.com/ogurasousui/gymledger/internal/core/record"
)

const (
	DefaultTodoWindowDays       = 15
	DefaultUpcomingAppointments = 3
)

// Input は集計対象の行集合です。
type Input struct {
	Employees    []record.Row
	Transactions []record.Row
	Appointments []record.Row
	Todos        []record.Row
}

// Options は集計のパラメータです。
type Options struct {
	Today                time.Time
	TodoWindowDays       int
	UpcomingAppointments int
}

// Summary はダッシュボードの集計結果です。
type Summary struct {
	EmployeeCount        int
	PendingInvoices      int
	CurrentBalance       float64
	UpcomingAppointments []record.Row
	DueTodos             []record.Row
	Locations            []LocationTotal
}

// Compute は全指標をまとめて算出します。
func Compute(in Input, opts Options) Summary {
	window := opts.TodoWindowDays
	if window <= 0 {
		window = DefaultTodoWindowDays
	}
	limit := opts.UpcomingAppointments
	if limit <= 0 {
		limit = DefaultUpcomingAppointments
	}

	return Summary{
		EmployeeCount:        EmployeeCount(in.Employees),
		PendingInvoices:      PendingInvoices(in.Transactions),
		CurrentBalance:       CurrentBalance(in.Transactions),
		UpcomingAppointments: UpcomingAppointments(in.Appointments, limit),
		DueTodos:             DueTodos(in.Todos, opts.Today, window),
		Locations:            LocationBreakdown(in.Transactions),
	}
}

// EmployeeCount は社員数です。
func EmployeeCount(employees []record.Row) int {
	return len(employees)
}

// PendingInvoices は未払いの取引件数です。
func PendingInvoices(transactions []record.Row) int {
	count := 0
	for _, row := range transactions {
		if row.Value(record.ColStatus) == string(record.StatusUnpaid) {
			count++
		}
	}
	return count
}

// CurrentBalance は入金合計から仕入請求と支払の合計を引いた残高です。
// 金額を解釈できない行は合計から除外します。
func CurrentBalance(transactions []record.Row) float64 {
	var income, outgoing float64
	for _, row := range transactions {
		amount, err := record.ParseAmount(row.Value(record.ColAmount))
		if err != nil {
			continue
		}
		switch record.TransactionType(row.Value(record.ColType)) {
		case record.TransactionIncome:
			income += amount
		case record.TransactionSupplierInvoice, record.TransactionPayment:
			outgoing += amount
		}
	}
	return income - outgoing
}

// UpcomingAppointments は全予定を日付の昇順に並べ、先頭 n 件を返します。
// 過去の予定も対象に含みます。日付を解釈できない予定は末尾に並びます。
func UpcomingAppointments(appointments []record.Row, n int) []record.Row {
	type keyed struct {
		row   record.Row
		date  time.Time
		valid bool
	}

	items := make([]keyed, 0, len(appointments))
	for _, row := range appointments {
		d, err := record.ParseDate(row.Value(record.ColDate))
		items = append(items, keyed{row: row, date: d, valid: err == nil})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.valid != b.valid {
			return a.valid
		}
		if !a.valid {
			return false
		}
		return a.date.Before(b.date)
	})

	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}

	out := make([]record.Row, 0, n)
	for _, item := range items[:n] {
		out = append(out, item.row)
	}
	return out
}

// DueTodos は未完了かつ期限が today から windowDays 日以内（期限切れを含む）の ToDo を返します。
// 期限または完了フラグを解釈できない行は除外します。
func DueTodos(todos []record.Row, today time.Time, windowDays int) []record.Row {
	limit := truncateToDate(today).AddDate(0, 0, windowDays)

	out := make([]record.Row, 0)
	for _, row := range todos {
		completed, err := record.ParseBool(row.Value(record.ColCompleted))
		if err != nil || completed {
			continue
		}
		due, err := record.ParseDate(row.Value(record.ColDueDate))
		if err != nil {
			continue
		}
		if !due.After(limit) {
			out = append(out, row)
		}
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
