package record

// ContractType は社員の契約種別です。
type ContractType string

const (
	ContractFixedTerm                 ContractType = "fixed-term"
	ContractPermanent                 ContractType = "permanent"
	ContractPartTime                  ContractType = "part-time"
	ContractSportsCollaborator        ContractType = "sports-collaborator"
	ContractAdministrativeCollaborator ContractType = "administrative-collaborator"
	ContractVATCollaborator           ContractType = "vat-collaborator"
)

// TransactionType は会計取引の種別です。
type TransactionType string

const (
	TransactionSupplierInvoice TransactionType = "supplier-invoice"
	TransactionIncome          TransactionType = "income"
	TransactionPayment         TransactionType = "payment"
)

// PaymentStatus は会計取引の支払状態です。
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "paid"
	StatusUnpaid PaymentStatus = "unpaid"
)

// Location は取引が計上される拠点です。
type Location string

const (
	LocationNexus    Location = "NEXUS"
	LocationElisir   Location = "ELISIR"
	LocationYounique Location = "YOUNIQUE"
	LocationAvenue   Location = "AVENUE"
)

// ContractTypes は既知の契約種別を返します。
func ContractTypes() []ContractType {
	return []ContractType{
		ContractFixedTerm,
		ContractPermanent,
		ContractPartTime,
		ContractSportsCollaborator,
		ContractAdministrativeCollaborator,
		ContractVATCollaborator,
	}
}

// TransactionTypes は既知の取引種別を返します。
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionSupplierInvoice, TransactionIncome, TransactionPayment}
}

// Locations は既知の拠点を表示順で返します。
func Locations() []Location {
	return []Location{LocationNexus, LocationElisir, LocationYounique, LocationAvenue}
}

func contractTypeValues() []string {
	out := make([]string, 0, 6)
	for _, v := range ContractTypes() {
		out = append(out, string(v))
	}
	return out
}

func transactionTypeValues() []string {
	out := make([]string, 0, 3)
	for _, v := range TransactionTypes() {
		out = append(out, string(v))
	}
	return out
}

func paymentStatusValues() []string {
	return []string{string(StatusPaid), string(StatusUnpaid)}
}

func locationValues() []string {
	out := make([]string, 0, 4)
	for _, v := range Locations() {
		out = append(out, string(v))
	}
	return out
}
