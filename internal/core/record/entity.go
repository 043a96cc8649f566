package record

import "time"

// Employee は社員登録フォームの入力です。
type Employee struct {
	FirstName     string
	LastName      string
	ContractStart time.Time
	ContractEnd   time.Time
	ContractType  ContractType
	Phone         string
	Email         string
}

// Values は employees テーブルの列順に並べた値を返します。
func (e Employee) Values() []string {
	return []string{
		e.FirstName,
		e.LastName,
		FormatDate(e.ContractStart),
		FormatDate(e.ContractEnd),
		string(e.ContractType),
		e.Phone,
		e.Email,
	}
}

// Supplier は仕入先登録フォームの入力です。
type Supplier struct {
	CompanyName   string
	VATNumber     string
	Address       string
	Email         string
	Phone         string
	ContactPerson string
}

// Values は suppliers テーブルの列順に並べた値を返します。
func (s Supplier) Values() []string {
	return []string{s.CompanyName, s.VATNumber, s.Address, s.Email, s.Phone, s.ContactPerson}
}

// Transaction は会計取引登録フォームの入力です。
type Transaction struct {
	Date         time.Time
	Type         TransactionType
	Description  string
	Amount       float64
	Status       PaymentStatus
	Counterparty string
	Location     Location
}

// Values は transactions テーブルの列順に並べた値を返します。
func (t Transaction) Values() []string {
	return []string{
		FormatDate(t.Date),
		string(t.Type),
		t.Description,
		FormatAmount(t.Amount),
		string(t.Status),
		t.Counterparty,
		string(t.Location),
	}
}

// Appointment は予定登録フォームの入力です。Time は HH:MM 形式です。
type Appointment struct {
	Date        time.Time
	Time        string
	Title       string
	Description string
}

// Values は appointments テーブルの列順に並べた値を返します。
func (a Appointment) Values() []string {
	return []string{FormatDate(a.Date), a.Time, a.Title, a.Description}
}

// Todo は ToDo 登録フォームの入力です。
type Todo struct {
	Activity  string
	DueDate   time.Time
	Completed bool
}

// Values は todos テーブルの列順に並べた値を返します。
func (t Todo) Values() []string {
	return []string{t.Activity, FormatDate(t.DueDate), FormatBool(t.Completed)}
}
