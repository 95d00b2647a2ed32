package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() entity.ReviewViewModel {
	record := entity.UtilizationRecord{
		AccountNumber:       "A1",
		AuthorizationNumber: "1",
		AuthorizedAmount:    1000,
		UsedAmount:          1200,
		OverageAmount:       200,
		CurrencyCode:        "MAD",
		ProductName:         "Revolving Credit",
	}

	return entity.ReviewViewModel{
		Rows: []entity.ReviewRow{{
			Record:                 record,
			RowKey:                 record.RowKey(),
			OveragePercent:         20,
			UtilizationRatePercent: 120,
			Severity:               entity.SeverityModerateOverage,
			SeverityName:           "moderate_overage",
			Selected:               true,
		}},
		Aggregate: entity.AggregateStats{
			TotalAuthorized:        1000,
			TotalUsed:              1200,
			OverusedCount:          1,
			UtilizationRatePercent: 120,
			TotalAccounts:          1,
		},
		Selection: entity.SelectionTotals{
			TotalAuthorized: 1000,
			TotalUsed:       1200,
			TotalOverage:    200,
			Count:           1,
		},
		AllVisibleSelected: true,
		CurrencyCode:       "MAD",
	}
}

func TestExportToCSV(t *testing.T) {
	repo := NewExportRepository()
	path, err := repo.ExportToCSV(sampleView(), "review", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	// Header, one data row, one totals row.
	require.Len(t, rows, 3)

	assert.Equal(t, "Account", rows[0][0])
	assert.Equal(t, "A1", rows[1][0])
	assert.Equal(t, "moderate_overage", rows[1][9])
	assert.Equal(t, "true", rows[1][10])
	assert.Equal(t, "PORTFOLIO TOTAL", rows[2][0])
}

func TestExportToJSON(t *testing.T) {
	repo := NewExportRepository()
	path, err := repo.ExportToJSON(sampleView(), "review", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.ReviewViewModel
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, "A1", decoded.Rows[0].Record.AccountNumber)
	assert.Equal(t, 1, decoded.Aggregate.OverusedCount)
	assert.True(t, decoded.AllVisibleSelected)
}

func TestExportToPDF(t *testing.T) {
	repo := NewExportRepository()
	path, err := repo.ExportToPDF(sampleView(), "review", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportEmptyViewToPDF(t *testing.T) {
	view := entity.ReviewViewModel{Empty: true, CurrencyCode: entity.DefaultCurrencyCode}

	repo := NewExportRepository()
	path, err := repo.ExportToPDF(view, "review", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)
}
