package suppliers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/procurement-reports/internal/report"
)

// GetTopSuppliersOutput is the Huma output for the supplier ranking.
type GetTopSuppliersOutput struct {
	Body []Supplier
}

// topSuppliersReader is the interface for reading the supplier ranking.
type topSuppliersReader interface {
	TopSuppliers(ctx context.Context) ([]report.SupplierRow, error)
}

// GetTopSuppliersHandler handles GET /getTopSuppliers.
type GetTopSuppliersHandler struct {
	ReportService topSuppliersReader
}

// NewGetTopSuppliersHandler creates a new GetTopSuppliersHandler.
func NewGetTopSuppliersHandler(svc topSuppliersReader) *GetTopSuppliersHandler {
	return &GetTopSuppliersHandler{ReportService: svc}
}

// Register registers the supplier ranking endpoint with the Huma API.
func (h *GetTopSuppliersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-top-suppliers",
		Method:      http.MethodGet,
		Path:        "/getTopSuppliers",
		Summary:     "Top suppliers",
		Description: "Returns the ten vendors with the highest positive total goods receipt value.",
		Tags:        []string{"Suppliers"},
	}, h.handle)
}

func (h *GetTopSuppliersHandler) handle(ctx context.Context, input *struct{}) (*GetTopSuppliersOutput, error) {
	rows, err := h.ReportService.TopSuppliers(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build supplier ranking", err)
	}

	resp := make([]Supplier, len(rows))
	for i, row := range rows {
		resp[i] = Supplier{Vendor: row.Vendor, GRValue: row.GRValue}
	}

	return &GetTopSuppliersOutput{Body: resp}, nil
}
