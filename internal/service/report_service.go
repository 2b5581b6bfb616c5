package service

import (
	"context"

	"github.com/carson-networks/procurement-reports/internal/goodsreceipt"
	"github.com/carson-networks/procurement-reports/internal/logging"
	"github.com/carson-networks/procurement-reports/internal/report"
	"github.com/carson-networks/procurement-reports/internal/source"
	"github.com/carson-networks/procurement-reports/internal/spreadsheet"
)

// SheetWriter encodes one worksheet.
type SheetWriter interface {
	WriteSheet(title string, header []string, rows [][]any) ([]byte, error)
}

// ReportService builds the cost reduction and supplier reports. The export is
// fetched and parsed again for every call.
type ReportService struct {
	fetcher   source.Fetcher
	writer    SheetWriter
	sourceURL string
}

// NewReportService creates a new ReportService.
func NewReportService(fetcher source.Fetcher, writer SheetWriter, sourceURL string) *ReportService {
	return &ReportService{
		fetcher:   fetcher,
		writer:    writer,
		sourceURL: sourceURL,
	}
}

// CostReduction returns the vendor's cost reductions in export order.
func (s *ReportService) CostReduction(ctx context.Context, vendor string) ([]report.CostReductionRow, error) {
	results, err := s.costReductions(ctx, vendor)
	if err != nil {
		return nil, err
	}
	return report.CostReductionRows(results), nil
}

// CostReductionWorkbook returns the vendor's cost reductions as an xlsx workbook.
func (s *ReportService) CostReductionWorkbook(ctx context.Context, vendor string, layout report.Layout) (*Workbook, error) {
	results, err := s.costReductions(ctx, vendor)
	if err != nil {
		return nil, err
	}
	return s.encode(ctx, report.CostReductionSheet(results, layout))
}

// TopSuppliers returns the vendors with the highest received value.
func (s *ReportService) TopSuppliers(ctx context.Context) ([]report.SupplierRow, error) {
	ranked, err := s.topSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return report.SupplierRows(ranked), nil
}

// TopSuppliersWorkbook returns the supplier ranking as an xlsx workbook.
func (s *ReportService) TopSuppliersWorkbook(ctx context.Context) (*Workbook, error) {
	ranked, err := s.topSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return s.encode(ctx, report.SupplierSheet(ranked))
}

func (s *ReportService) costReductions(ctx context.Context, vendor string) ([]goodsreceipt.CostReduction, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := startBuildTimer(logData)
	vendorRecords := goodsreceipt.FilterByVendor(records, vendor)
	results := goodsreceipt.CostReductions(vendorRecords)
	stopTimer()

	if logData != nil {
		logData.AddData("vendor", vendor)
		logData.AddData("rowCount", len(results))
	}
	return results, nil
}

func (s *ReportService) topSuppliers(ctx context.Context) ([]goodsreceipt.VendorTotal, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := startBuildTimer(logData)
	ranked := goodsreceipt.TopSuppliers(records)
	stopTimer()

	if logData != nil {
		logData.AddData("rowCount", len(ranked))
	}
	return ranked, nil
}

func (s *ReportService) loadRecords(ctx context.Context) ([]goodsreceipt.Record, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("fetchSourceMs")
	}
	raw, err := s.fetcher.Fetch(ctx, s.sourceURL)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, err
	}

	records := goodsreceipt.Parse(raw)
	if logData != nil {
		logData.AddData("recordCount", len(records))
	}
	return records, nil
}

func (s *ReportService) encode(ctx context.Context, sheet report.Sheet) (*Workbook, error) {
	stopTimer := startBuildTimer(logging.GetLogData(ctx))
	data, err := s.writer.WriteSheet(sheet.Title, sheet.Header, sheet.Rows)
	stopTimer()
	if err != nil {
		return nil, err
	}

	return &Workbook{
		Filename:    sheet.Filename,
		ContentType: spreadsheet.ContentType,
		Data:        data,
	}, nil
}

// startBuildTimer adds to buildReportMs, which spans computing the report and
// encoding it.
func startBuildTimer(logData *logging.LogData) func() {
	if logData == nil {
		return func() {}
	}
	return logData.AddToExistingTiming("buildReportMs")
}
