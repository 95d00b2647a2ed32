package entity

// ReviewRow is one visible line of the review table: the input record plus
// the derived fields attached by the view-model assembly.
type ReviewRow struct {
	Record                 UtilizationRecord `json:"record"`
	RowKey                 string            `json:"row_key"`
	OveragePercent         float64           `json:"overage_percent"`
	UtilizationRatePercent float64           `json:"utilization_rate_percent"`
	Severity               SeverityLevel     `json:"severity"`
	SeverityName           string            `json:"severity_name"`
	Selected               bool              `json:"selected"`
}

// AggregateStats are portfolio-wide statistics over the full input set,
// regardless of the current filter.
type AggregateStats struct {
	TotalAuthorized        float64 `json:"total_authorized"`
	TotalUsed              float64 `json:"total_used"`
	OverusedCount          int     `json:"overused_count"`
	UtilizationRatePercent float64 `json:"utilization_rate_percent"`
	TotalAccounts          int     `json:"total_accounts"`
}

// SelectionTotals are running totals over the rows that are both currently
// visible and selected. A selected row hidden by the active filter does not
// contribute.
type SelectionTotals struct {
	TotalAuthorized float64 `json:"total_authorized"`
	TotalUsed       float64 `json:"total_used"`
	TotalOverage    float64 `json:"total_overage"`
	Count           int     `json:"count"`
}

// ReviewViewModel is the full data handed to the rendering layer, rebuilt
// from scratch after every state change and never mutated in place.
//
// Empty is the explicit no-data variant: it is set only when the input
// record set is absent or has zero length. A populated input whose visible
// rows were all filtered out is not the empty variant, so renderers must
// branch on Empty rather than on len(Rows).
type ReviewViewModel struct {
	Empty              bool            `json:"empty"`
	Rows               []ReviewRow     `json:"rows"`
	Aggregate          AggregateStats  `json:"aggregate"`
	Selection          SelectionTotals `json:"selection"`
	AllVisibleSelected bool            `json:"all_visible_selected"`
	CurrencyCode       string          `json:"currency_code"`
}
