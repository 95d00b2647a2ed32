package usecase

import (
	"testing"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestOveragePercent(t *testing.T) {
	tests := []struct {
		name   string
		record entity.UtilizationRecord
		want   float64
	}{
		{"zero authorized guards the division", entity.UtilizationRecord{AuthorizedAmount: 0, OverageAmount: 500}, 0},
		{"regular overage", entity.UtilizationRecord{AuthorizedAmount: 1000, OverageAmount: 200}, 20},
		{"no overage", entity.UtilizationRecord{AuthorizedAmount: 1000, OverageAmount: 0}, 0},
		{"overage beyond 100 percent", entity.UtilizationRecord{AuthorizedAmount: 100, OverageAmount: 250}, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OveragePercent(tt.record), 1e-9)
		})
	}
}

func TestUtilizationRatePercent(t *testing.T) {
	tests := []struct {
		name   string
		record entity.UtilizationRecord
		want   float64
	}{
		{"zero authorized guards the division", entity.UtilizationRecord{AuthorizedAmount: 0, UsedAmount: 900}, 0},
		{"under the ceiling", entity.UtilizationRecord{AuthorizedAmount: 500, UsedAmount: 400}, 80},
		{"over the ceiling may exceed 100", entity.UtilizationRecord{AuthorizedAmount: 1000, UsedAmount: 1200}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, UtilizationRatePercent(tt.record), 1e-9)
		})
	}
}

func TestComputeAggregateStats(t *testing.T) {
	records := []entity.UtilizationRecord{
		{AccountNumber: "A1", AuthorizationNumber: "1", AuthorizedAmount: 1000, UsedAmount: 1200, OverageAmount: 200, CurrencyCode: "MAD"},
		{AccountNumber: "A2", AuthorizationNumber: "1", AuthorizedAmount: 500, UsedAmount: 400, OverageAmount: 0, CurrencyCode: "MAD"},
	}

	stats := ComputeAggregateStats(records)

	assert.InDelta(t, 1500.0, stats.TotalAuthorized, 1e-9)
	assert.InDelta(t, 1600.0, stats.TotalUsed, 1e-9)
	assert.Equal(t, 1, stats.OverusedCount)
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.InDelta(t, 106.67, stats.UtilizationRatePercent, 0.01)
}

func TestComputeAggregateStatsZeroAuthorized(t *testing.T) {
	records := []entity.UtilizationRecord{
		{AccountNumber: "A1", AuthorizationNumber: "1", AuthorizedAmount: 0, UsedAmount: 100, OverageAmount: 100},
	}

	stats := ComputeAggregateStats(records)
	assert.Zero(t, stats.UtilizationRatePercent)
}

func TestComputeSelectionTotalsScopedToVisible(t *testing.T) {
	a1 := entity.UtilizationRecord{AccountNumber: "A1", AuthorizationNumber: "1", AuthorizedAmount: 1000, UsedAmount: 1200, OverageAmount: 200}
	a2 := entity.UtilizationRecord{AccountNumber: "A2", AuthorizationNumber: "1", AuthorizedAmount: 500, UsedAmount: 400, OverageAmount: 0}
	records := []entity.UtilizationRecord{a1, a2}

	selection := NewSelection()
	selection.Toggle(a1.RowKey(), true)
	selection.Toggle(a2.RowKey(), true)

	// Both visible: both contribute.
	totals := ComputeSelectionTotals(records, selection)
	assert.Equal(t, 2, totals.Count)
	assert.InDelta(t, 1500.0, totals.TotalAuthorized, 1e-9)

	// Filter hides A2; it stays selected but stops contributing.
	visible := DeriveView(records, FilterOverusedOnly, SortInputOrder)
	totals = ComputeSelectionTotals(visible, selection)
	assert.Equal(t, 1, totals.Count)
	assert.InDelta(t, 1000.0, totals.TotalAuthorized, 1e-9)
	assert.InDelta(t, 1200.0, totals.TotalUsed, 1e-9)
	assert.InDelta(t, 200.0, totals.TotalOverage, 1e-9)
	assert.True(t, selection.Has(a2.RowKey()))
}

func TestComputeSelectionTotalsEmptySelection(t *testing.T) {
	records := []entity.UtilizationRecord{
		{AccountNumber: "A1", AuthorizationNumber: "1", AuthorizedAmount: 1000, UsedAmount: 1200, OverageAmount: 200},
	}

	totals := ComputeSelectionTotals(records, NewSelection())
	assert.Zero(t, totals.Count)
	assert.Zero(t, totals.TotalAuthorized)
	assert.Zero(t, totals.TotalUsed)
	assert.Zero(t, totals.TotalOverage)
}
