package usecase

import (
	"testing"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		overagePercent float64
		want           entity.SeverityLevel
	}{
		{"no overage", 0, entity.SeverityNormal},
		{"negative percent treated as normal", -5, entity.SeverityNormal},
		{"just above zero", 0.01, entity.SeverityMinorOverage},
		{"mid minor", 5, entity.SeverityMinorOverage},
		{"exactly 10 stays minor", 10, entity.SeverityMinorOverage},
		{"just above 10", 10.01, entity.SeverityModerateOverage},
		{"exactly 20 stays moderate", 20, entity.SeverityModerateOverage},
		{"just above 20", 20.0001, entity.SeverityCriticalOverage},
		{"unbounded percent", 450, entity.SeverityCriticalOverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.overagePercent))
		})
	}
}
