package goodsreceipt

// VendorTotals maps vendors to a summed numeric field. It remembers the order
// in which vendors were first seen.
type VendorTotals struct {
	order []string
	sums  map[string]float64
}

func newVendorTotals() *VendorTotals {
	return &VendorTotals{sums: make(map[string]float64)}
}

func (t *VendorTotals) add(vendor string, v float64) {
	if _, ok := t.sums[vendor]; !ok {
		t.order = append(t.order, vendor)
	}
	t.sums[vendor] += v
}

// Get returns the total for vendor and whether the vendor has one.
func (t *VendorTotals) Get(vendor string) (float64, bool) {
	v, ok := t.sums[vendor]
	return v, ok
}

// Len is the number of vendors with a total.
func (t *VendorTotals) Len() int {
	return len(t.order)
}

// Vendors returns vendors in first-seen order.
func (t *VendorTotals) Vendors() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// SumByVendor sums field per vendor in record order. Records whose field is
// invalid are skipped, so a vendor with no valid values has no total.
func SumByVendor(records []Record, field NumericField) *VendorTotals {
	totals := newVendorTotals()
	for _, r := range records {
		n := field(r)
		if !n.Valid {
			continue
		}
		totals.add(r.Vendor, n.Value)
	}
	return totals
}
