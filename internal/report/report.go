// Package report shapes calculator and ranker output into JSON rows and
// spreadsheet rows.
package report

import (
	"github.com/carson-networks/procurement-reports/internal/goodsreceipt"
)

const (
	CostReductionTitle    = "Cost Reduction"
	CostReductionFilename = "cost_reduction.xlsx"
	TopSuppliersTitle     = "Top Suppliers"
	TopSuppliersFilename  = "top_suppliers.xlsx"

	// NaNCell is written in place of an invalid number.
	NaNCell = "NaN"
)

// Layout selects what the first column of a cost reduction sheet holds.
type Layout string

const (
	LayoutMaterial Layout = "material"
	LayoutVendor   Layout = "vendor"
)

var (
	materialCostReductionHeader = []string{"Material", "Cost Reduction Value"}
	vendorCostReductionHeader   = []string{"Vendor", "Cost Reduction Value"}
	topSuppliersHeader          = []string{"Vendor", "GR Value"}
)

// CostReductionRow is one line of the cost reduction report.
type CostReductionRow struct {
	Material           string
	CostReductionValue goodsreceipt.Number
}

// SupplierRow is one line of the supplier ranking.
type SupplierRow struct {
	Vendor  string
	GRValue float64
}

// Sheet is a single worksheet ready for the spreadsheet writer.
type Sheet struct {
	Title    string
	Filename string
	Header   []string
	Rows     [][]any
}

// CostReductionRows shapes cost reductions for the JSON API.
func CostReductionRows(results []goodsreceipt.CostReduction) []CostReductionRow {
	rows := make([]CostReductionRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, CostReductionRow{
			Material:           r.Material,
			CostReductionValue: r.Value,
		})
	}
	return rows
}

// CostReductionSheet shapes cost reductions for spreadsheet delivery. An
// unknown layout falls back to LayoutMaterial.
func CostReductionSheet(results []goodsreceipt.CostReduction, layout Layout) Sheet {
	header := materialCostReductionHeader
	label := func(r goodsreceipt.CostReduction) string { return r.Material }
	if layout == LayoutVendor {
		header = vendorCostReductionHeader
		label = func(r goodsreceipt.CostReduction) string { return r.Vendor }
	}

	rows := make([][]any, 0, len(results))
	for _, r := range results {
		rows = append(rows, []any{label(r), numberCell(r.Value)})
	}

	return Sheet{
		Title:    CostReductionTitle,
		Filename: CostReductionFilename,
		Header:   header,
		Rows:     rows,
	}
}

// SupplierRows shapes a vendor ranking for the JSON API.
func SupplierRows(ranked []goodsreceipt.VendorTotal) []SupplierRow {
	rows := make([]SupplierRow, 0, len(ranked))
	for _, v := range ranked {
		rows = append(rows, SupplierRow{Vendor: v.Vendor, GRValue: v.GRValue})
	}
	return rows
}

// SupplierSheet shapes a vendor ranking for spreadsheet delivery.
func SupplierSheet(ranked []goodsreceipt.VendorTotal) Sheet {
	rows := make([][]any, 0, len(ranked))
	for _, v := range ranked {
		rows = append(rows, []any{v.Vendor, v.GRValue})
	}

	return Sheet{
		Title:    TopSuppliersTitle,
		Filename: TopSuppliersFilename,
		Header:   topSuppliersHeader,
		Rows:     rows,
	}
}

func numberCell(n goodsreceipt.Number) any {
	if !n.Valid {
		return NaNCell
	}
	return n.Value
}
