package usecase

import (
	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
)

// OveragePercent retorna o excedente como percentual do valor autorizado.
// Divisão protegida: 0 quando não há valor autorizado, nunca NaN/Inf.
func OveragePercent(record entity.UtilizationRecord) float64 {
	if record.AuthorizedAmount == 0 {
		return 0
	}
	return record.OverageAmount / record.AuthorizedAmount * 100.0
}

// UtilizationRatePercent retorna o valor utilizado como percentual do valor
// autorizado. Pode legitimamente exceder 100.
func UtilizationRatePercent(record entity.UtilizationRecord) float64 {
	if record.AuthorizedAmount == 0 {
		return 0
	}
	return record.UsedAmount / record.AuthorizedAmount * 100.0
}

// ComputeAggregateStats computes portfolio-wide statistics over the full
// input set, regardless of the active filter.
func ComputeAggregateStats(records []entity.UtilizationRecord) entity.AggregateStats {
	stats := entity.AggregateStats{
		TotalAccounts: len(records),
	}

	for _, record := range records {
		stats.TotalAuthorized += record.AuthorizedAmount
		stats.TotalUsed += record.UsedAmount
		if record.Overused() {
			stats.OverusedCount++
		}
	}

	if stats.TotalAuthorized != 0 {
		stats.UtilizationRatePercent = stats.TotalUsed / stats.TotalAuthorized * 100.0
	}

	return stats
}

// ComputeSelectionTotals sums only records that are currently visible and
// present in the selection. A selected key hidden by the active filter stays
// in the selection but does not contribute here.
func ComputeSelectionTotals(visible []entity.UtilizationRecord, selection *Selection) entity.SelectionTotals {
	var totals entity.SelectionTotals

	for _, record := range visible {
		if !selection.Has(record.RowKey()) {
			continue
		}
		totals.TotalAuthorized += record.AuthorizedAmount
		totals.TotalUsed += record.UsedAmount
		totals.TotalOverage += record.OverageAmount
		totals.Count++
	}

	return totals
}
