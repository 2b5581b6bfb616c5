package suppliers

// Supplier is the API response model for a ranked supplier.
type Supplier struct {
	Vendor  string  `json:"vendor" doc:"Vendor identifier"`
	GRValue float64 `json:"grValue" doc:"Floored total goods receipt value"`
}
