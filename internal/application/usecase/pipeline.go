package usecase

import (
	"fmt"
	"sort"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
)

// FilterMode selects which records are visible.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterOverusedOnly
)

// SortMode selects the ordering of the visible records.
type SortMode int

const (
	SortInputOrder SortMode = iota
	SortAuthorizedAmountDesc
	SortOverageDesc
)

// ParseFilterMode converts a CLI/config string into a FilterMode.
func ParseFilterMode(value string) (FilterMode, error) {
	switch value {
	case "", "all":
		return FilterAll, nil
	case "overused":
		return FilterOverusedOnly, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter mode %q (expected 'all' or 'overused')", value)
	}
}

// ParseSortMode converts a CLI/config string into a SortMode.
func ParseSortMode(value string) (SortMode, error) {
	switch value {
	case "", "input":
		return SortInputOrder, nil
	case "authorized":
		return SortAuthorizedAmountDesc, nil
	case "overage":
		return SortOverageDesc, nil
	default:
		return SortInputOrder, fmt.Errorf("unknown sort mode %q (expected 'input', 'authorized' or 'overage')", value)
	}
}

// String returns the canonical CLI spelling of the filter mode.
func (m FilterMode) String() string {
	if m == FilterOverusedOnly {
		return "overused"
	}
	return "all"
}

// String returns the canonical CLI spelling of the sort mode.
func (m SortMode) String() string {
	switch m {
	case SortAuthorizedAmountDesc:
		return "authorized"
	case SortOverageDesc:
		return "overage"
	default:
		return "input"
	}
}

// DeriveView produces the ordered, visible slice of records for the current
// filter and sort modes. The input slice is never mutated; the sort is
// stable so records with equal keys keep their relative input order.
func DeriveView(records []entity.UtilizationRecord, filter FilterMode, sortMode SortMode) []entity.UtilizationRecord {
	visible := make([]entity.UtilizationRecord, 0, len(records))
	for _, record := range records {
		if filter == FilterOverusedOnly && !record.Overused() {
			continue
		}
		visible = append(visible, record)
	}

	switch sortMode {
	case SortAuthorizedAmountDesc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].AuthorizedAmount > visible[j].AuthorizedAmount
		})
	case SortOverageDesc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].OverageAmount > visible[j].OverageAmount
		})
	}

	return visible
}
