package repository

import (
	"context"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
)

// RecordRepository defines the interface for fetching a client's
// credit-authorization utilization records.
type RecordRepository interface {
	LoadRecords(ctx context.Context, path string) ([]entity.UtilizationRecord, error)
}
