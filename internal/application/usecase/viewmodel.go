package usecase

import (
	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
)

// DeriveViewModel rebuilds the full review view model from the current
// state: input records, filter mode, sort mode and selection. It is called
// after every mutating operation, so the rendering layer never observes an
// intermediate state.
func DeriveViewModel(
	records []entity.UtilizationRecord,
	filter FilterMode,
	sortMode SortMode,
	selection *Selection,
) entity.ReviewViewModel {
	if len(records) == 0 {
		return emptyViewModel()
	}

	visible := DeriveView(records, filter, sortMode)

	rows := make([]entity.ReviewRow, 0, len(visible))
	visibleKeys := make([]string, 0, len(visible))
	for _, record := range visible {
		key := record.RowKey()
		visibleKeys = append(visibleKeys, key)

		overagePercent := OveragePercent(record)
		severity := Classify(overagePercent)

		rows = append(rows, entity.ReviewRow{
			Record:                 record,
			RowKey:                 key,
			OveragePercent:         overagePercent,
			UtilizationRatePercent: UtilizationRatePercent(record),
			Severity:               severity,
			SeverityName:           severity.String(),
			Selected:               selection.Has(key),
		})
	}

	return entity.ReviewViewModel{
		Rows:               rows,
		Aggregate:          ComputeAggregateStats(records),
		Selection:          ComputeSelectionTotals(visible, selection),
		AllVisibleSelected: selection.IsAllVisibleSelected(visibleKeys),
		CurrencyCode:       currencyForRecords(records),
	}
}

// emptyViewModel is the explicit no-data variant, distinct from a populated
// view whose rows were all filtered out.
func emptyViewModel() entity.ReviewViewModel {
	return entity.ReviewViewModel{
		Empty:        true,
		Rows:         []entity.ReviewRow{},
		CurrencyCode: entity.DefaultCurrencyCode,
	}
}

// currencyForRecords returns the record set's currency code, falling back
// to the documented default when the first record carries none.
func currencyForRecords(records []entity.UtilizationRecord) string {
	if len(records) > 0 && records[0].CurrencyCode != "" {
		return records[0].CurrencyCode
	}
	return entity.DefaultCurrencyCode
}
