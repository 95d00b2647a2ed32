package repository

import (
	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(view entity.ReviewViewModel, filename string, outputDir string) (string, error)
	ExportToJSON(view entity.ReviewViewModel, filename string, outputDir string) (string, error)
	ExportToPDF(view entity.ReviewViewModel, filename string, outputDir string) (string, error)
}
