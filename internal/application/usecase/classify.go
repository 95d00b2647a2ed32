package usecase

import (
	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
)

// Severity tier bounds, inclusive on the upper side: an overage of exactly
// 10% is still minor, exactly 20% still moderate.
const (
	minorOverageMaxPercent    = 10.0
	moderateOverageMaxPercent = 20.0
)

// Classify maps an overage percentage to a severity level. A percentage of
// zero (including the guarded zero produced for records with no authorized
// amount) classifies as normal.
func Classify(overagePercent float64) entity.SeverityLevel {
	switch {
	case overagePercent <= 0:
		return entity.SeverityNormal
	case overagePercent <= minorOverageMaxPercent:
		return entity.SeverityMinorOverage
	case overagePercent <= moderateOverageMaxPercent:
		return entity.SeverityModerateOverage
	default:
		return entity.SeverityCriticalOverage
	}
}
