package costreduction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/procurement-reports/internal/report"
)

// GetCostReductionInput is the Huma input for the cost reduction report.
type GetCostReductionInput struct {
	Vendor string `query:"vendor" doc:"Vendor identifier, matched exactly"`
}

// GetCostReductionOutput is the Huma output for the cost reduction report.
type GetCostReductionOutput struct {
	Body []CostReduction
}

// costReductionReader is the interface for reading cost reductions.
type costReductionReader interface {
	CostReduction(ctx context.Context, vendor string) ([]report.CostReductionRow, error)
}

// GetCostReductionHandler handles GET /costReduction.
type GetCostReductionHandler struct {
	ReportService costReductionReader
}

// NewGetCostReductionHandler creates a new GetCostReductionHandler.
func NewGetCostReductionHandler(svc costReductionReader) *GetCostReductionHandler {
	return &GetCostReductionHandler{ReportService: svc}
}

// Register registers the cost reduction endpoint with the Huma API.
func (h *GetCostReductionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-cost-reduction",
		Method:      http.MethodGet,
		Path:        "/costReduction",
		Summary:     "Cost reduction by vendor",
		Description: "Returns, per goods receipt line of the vendor, the saving had it been priced at the vendor's lowest net price.",
		Tags:        []string{"Cost Reduction"},
	}, h.handle)
}

func (h *GetCostReductionHandler) handle(ctx context.Context, input *GetCostReductionInput) (*GetCostReductionOutput, error) {
	rows, err := h.ReportService.CostReduction(ctx, input.Vendor)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build cost reduction report", err)
	}

	return &GetCostReductionOutput{Body: fromReportRows(rows)}, nil
}
