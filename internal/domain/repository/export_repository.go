package repository

import (
	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing estimate reports to disk.
type ExportRepository interface {
	ExportToCSV(data entity.EstimateData, filename string, outputDir string) (string, error)
	ExportToJSON(data entity.EstimateData, filename string, outputDir string) (string, error)
	ExportToPDF(data entity.EstimateData, filename string, outputDir string) (string, error)
}
