package service

import (
	"github.com/carson-networks/procurement-reports/internal/source"
)

// Service holds all business logic services.
type Service struct {
	Reports *ReportService
}

// NewService creates a new Service reading the export at sourceURL.
func NewService(fetcher source.Fetcher, writer SheetWriter, sourceURL string) *Service {
	return &Service{
		Reports: NewReportService(fetcher, writer, sourceURL),
	}
}
