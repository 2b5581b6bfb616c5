package costreduction

import (
	"github.com/carson-networks/procurement-reports/internal/report"
)

// CostReduction is the API response model for one cost reduction line.
type CostReduction struct {
	Material           string   `json:"material" doc:"Material identifier"`
	CostReductionValue *float64 `json:"costReductionValue" nullable:"true" doc:"Floored saving against the vendor's lowest net price, null when the line has no valid price or quantity"`
}

func fromReportRows(rows []report.CostReductionRow) []CostReduction {
	out := make([]CostReduction, len(rows))
	for i, row := range rows {
		out[i] = CostReduction{Material: row.Material}
		if row.CostReductionValue.Valid {
			v := row.CostReductionValue.Value
			out[i].CostReductionValue = &v
		}
	}
	return out
}
