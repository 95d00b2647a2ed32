package entity

// DefaultCurrencyCode is used when a record set carries no currency code.
const DefaultCurrencyCode = "MAD"

// rowKeySeparator joins the account and authorization numbers into a RowKey.
// The ASCII unit separator cannot appear in identifiers coming from any of
// the supported input formats.
const rowKeySeparator = "\x1f"

// UtilizationRecord represents one credit-authorization line of a client:
// the ceiling granted for an account/authorization pair, the amount drawn
// against it and the amount drawn beyond it. OverageAmount is computed
// upstream and trusted as received.
type UtilizationRecord struct {
	AccountNumber       string  `json:"account_number"`
	AuthorizationNumber string  `json:"authorization_number"`
	AuthorizedAmount    float64 `json:"authorized_amount"`
	UsedAmount          float64 `json:"used_amount"`
	OverageAmount       float64 `json:"overage_amount"`
	CurrencyCode        string  `json:"currency_code,omitempty"`
	ProductName         string  `json:"product_name,omitempty"`
	ProductFamily       string  `json:"product_family,omitempty"`
}

// RowKey returns the identity of the record used for selection tracking.
// Callers must guarantee that account/authorization pairs are unique within
// a record set; duplicates make selection and totals ambiguous.
func (r UtilizationRecord) RowKey() string {
	return r.AccountNumber + rowKeySeparator + r.AuthorizationNumber
}

// Overused reports whether the record drew beyond its authorized ceiling.
func (r UtilizationRecord) Overused() bool {
	return r.OverageAmount > 0
}

// SeverityLevel classifies how far a record sits beyond its ceiling.
type SeverityLevel int

const (
	SeverityNormal SeverityLevel = iota
	SeverityMinorOverage
	SeverityModerateOverage
	SeverityCriticalOverage
)

// String returns the semantic name of the severity level. Presentation
// (colors, badges) stays downstream of this value.
func (s SeverityLevel) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityMinorOverage:
		return "minor_overage"
	case SeverityModerateOverage:
		return "moderate_overage"
	case SeverityCriticalOverage:
		return "critical_overage"
	default:
		return "unknown"
	}
}
