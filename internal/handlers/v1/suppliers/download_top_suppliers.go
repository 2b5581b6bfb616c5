package suppliers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/procurement-reports/internal/service"
)

// DownloadTopSuppliersOutput is the Huma output for the supplier ranking download.
type DownloadTopSuppliersOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// topSuppliersExporter is the interface for exporting the supplier ranking.
type topSuppliersExporter interface {
	TopSuppliersWorkbook(ctx context.Context) (*service.Workbook, error)
}

// DownloadTopSuppliersHandler handles GET /downloadTopSuppliers.
type DownloadTopSuppliersHandler struct {
	ReportService topSuppliersExporter
}

// NewDownloadTopSuppliersHandler creates a new DownloadTopSuppliersHandler.
func NewDownloadTopSuppliersHandler(svc topSuppliersExporter) *DownloadTopSuppliersHandler {
	return &DownloadTopSuppliersHandler{ReportService: svc}
}

// Register registers the supplier ranking download endpoint with the Huma API.
func (h *DownloadTopSuppliersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "download-top-suppliers",
		Method:      http.MethodGet,
		Path:        "/downloadTopSuppliers",
		Summary:     "Download top suppliers",
		Description: "Returns the supplier ranking as an xlsx attachment.",
		Tags:        []string{"Suppliers"},
	}, h.handle)
}

func (h *DownloadTopSuppliersHandler) handle(ctx context.Context, input *struct{}) (*DownloadTopSuppliersOutput, error) {
	wb, err := h.ReportService.TopSuppliersWorkbook(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build supplier workbook", err)
	}

	return &DownloadTopSuppliersOutput{
		ContentType:        wb.ContentType,
		ContentDisposition: "attachment; filename=" + wb.Filename,
		Body:               wb.Data,
	}, nil
}
