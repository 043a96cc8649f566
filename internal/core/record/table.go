package record

import (
	"fmt"
	"strings"
)

// Table は永続化されるテーブルの識別子です。
type Table string

const (
	TableEmployees    Table = "employees"
	TableSuppliers    Table = "suppliers"
	TableTransactions Table = "transactions"
	TableAppointments Table = "appointments"
	TableTodos        Table = "todos"
)

// Kind は列の値の種類を表します。
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindTime
	KindDecimal
	KindBool
	KindEnum
)

// Column はテーブルの列定義です。
type Column struct {
	Name     string
	Kind     Kind
	Required bool
	// Positive は decimal 列で 0 より大きい値のみを許可します。
	Positive bool
	Enum     []string
}

// 列名
const (
	ColFirstName     = "first_name"
	ColLastName      = "last_name"
	ColContractStart = "contract_start"
	ColContractEnd   = "contract_end"
	ColContractType  = "contract_type"
	ColPhone         = "phone"
	ColEmail         = "email"

	ColCompanyName   = "company_name"
	ColVATNumber     = "vat_number"
	ColAddress       = "address"
	ColContactPerson = "contact_person"

	ColDate         = "date"
	ColType         = "type"
	ColDescription  = "description"
	ColAmount       = "amount"
	ColStatus       = "status"
	ColCounterparty = "counterparty"
	ColLocation     = "location"

	ColTime  = "time"
	ColTitle = "title"

	ColActivity  = "activity"
	ColDueDate   = "due_date"
	ColCompleted = "completed"
)

type tableDef struct {
	columns       []Column
	searchColumns []string
}

var tableDefs = map[Table]tableDef{
	TableEmployees: {
		columns: []Column{
			{Name: ColFirstName, Kind: KindText, Required: true},
			{Name: ColLastName, Kind: KindText, Required: true},
			{Name: ColContractStart, Kind: KindDate},
			{Name: ColContractEnd, Kind: KindDate},
			{Name: ColContractType, Kind: KindEnum, Enum: contractTypeValues()},
			{Name: ColPhone, Kind: KindText},
			{Name: ColEmail, Kind: KindText},
		},
		searchColumns: []string{ColFirstName, ColLastName, ColEmail},
	},
	TableSuppliers: {
		columns: []Column{
			{Name: ColCompanyName, Kind: KindText, Required: true},
			{Name: ColVATNumber, Kind: KindText},
			{Name: ColAddress, Kind: KindText},
			{Name: ColEmail, Kind: KindText},
			{Name: ColPhone, Kind: KindText},
			{Name: ColContactPerson, Kind: KindText},
		},
		searchColumns: []string{ColCompanyName, ColContactPerson, ColVATNumber},
	},
	TableTransactions: {
		columns: []Column{
			{Name: ColDate, Kind: KindDate},
			{Name: ColType, Kind: KindEnum, Enum: transactionTypeValues()},
			{Name: ColDescription, Kind: KindText, Required: true},
			{Name: ColAmount, Kind: KindDecimal, Required: true, Positive: true},
			{Name: ColStatus, Kind: KindEnum, Enum: paymentStatusValues()},
			{Name: ColCounterparty, Kind: KindText},
			{Name: ColLocation, Kind: KindEnum, Enum: locationValues()},
		},
		searchColumns: []string{ColDescription, ColCounterparty},
	},
	TableAppointments: {
		columns: []Column{
			{Name: ColDate, Kind: KindDate},
			{Name: ColTime, Kind: KindTime},
			{Name: ColTitle, Kind: KindText, Required: true},
			{Name: ColDescription, Kind: KindText},
		},
		searchColumns: []string{ColTitle, ColDescription},
	},
	TableTodos: {
		columns: []Column{
			{Name: ColActivity, Kind: KindText, Required: true},
			{Name: ColDueDate, Kind: KindDate},
			{Name: ColCompleted, Kind: KindBool},
		},
		searchColumns: []string{ColActivity},
	},
}

// Tables は全テーブルを宣言順で返します。
func Tables() []Table {
	return []Table{TableEmployees, TableSuppliers, TableTransactions, TableAppointments, TableTodos}
}

// ParseTable は文字列をテーブル識別子へ変換します。
func ParseTable(raw string) (Table, error) {
	t := Table(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("%q: %w", raw, ErrUnknownTable)
	}
	return t, nil
}

// Valid は既知のテーブルかどうかを返します。
func (t Table) Valid() bool {
	_, ok := tableDefs[t]
	return ok
}

func (t Table) String() string {
	return string(t)
}

// Columns は id を除いた列を宣言順で返します。返却値は呼び出し側で変更しても構いません。
func (t Table) Columns() []Column {
	def, ok := tableDefs[t]
	if !ok {
		return nil
	}
	out := make([]Column, len(def.columns))
	copy(out, def.columns)
	return out
}

// ColumnNames は id を除いた列名を宣言順で返します。
func (t Table) ColumnNames() []string {
	def := tableDefs[t]
	names := make([]string, 0, len(def.columns))
	for _, c := range def.columns {
		names = append(names, c.Name)
	}
	return names
}

// Column は列名で列定義を検索します。
func (t Table) Column(name string) (Column, bool) {
	for _, c := range tableDefs[t].columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// SearchColumns は検索対象列が指定されなかった場合の既定列です。
func (t Table) SearchColumns() []string {
	cols := tableDefs[t].searchColumns
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}
