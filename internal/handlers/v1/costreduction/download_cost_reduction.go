package costreduction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/procurement-reports/internal/report"
	"github.com/carson-networks/procurement-reports/internal/service"
)

// DownloadCostReductionInput is the Huma input for the cost reduction download.
type DownloadCostReductionInput struct {
	Vendor string `query:"vendor" doc:"Vendor identifier, matched exactly"`
	Layout string `query:"layout" enum:"material,vendor" default:"material" doc:"First column of the sheet: the material or the vendor"`
}

// DownloadCostReductionOutput is the Huma output for the cost reduction download.
type DownloadCostReductionOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// costReductionExporter is the interface for exporting cost reductions.
type costReductionExporter interface {
	CostReductionWorkbook(ctx context.Context, vendor string, layout report.Layout) (*service.Workbook, error)
}

// DownloadCostReductionHandler handles GET /downloadCostReduction.
type DownloadCostReductionHandler struct {
	ReportService costReductionExporter
}

// NewDownloadCostReductionHandler creates a new DownloadCostReductionHandler.
func NewDownloadCostReductionHandler(svc costReductionExporter) *DownloadCostReductionHandler {
	return &DownloadCostReductionHandler{ReportService: svc}
}

// Register registers the cost reduction download endpoint with the Huma API.
func (h *DownloadCostReductionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "download-cost-reduction",
		Method:      http.MethodGet,
		Path:        "/downloadCostReduction",
		Summary:     "Download cost reduction by vendor",
		Description: "Returns the vendor's cost reduction report as an xlsx attachment.",
		Tags:        []string{"Cost Reduction"},
	}, h.handle)
}

func (h *DownloadCostReductionHandler) handle(ctx context.Context, input *DownloadCostReductionInput) (*DownloadCostReductionOutput, error) {
	wb, err := h.ReportService.CostReductionWorkbook(ctx, input.Vendor, report.Layout(input.Layout))
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build cost reduction workbook", err)
	}

	return &DownloadCostReductionOutput{
		ContentType:        wb.ContentType,
		ContentDisposition: "attachment; filename=" + wb.Filename,
		Body:               wb.Data,
	}, nil
}
