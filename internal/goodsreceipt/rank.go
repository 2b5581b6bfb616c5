package goodsreceipt

import (
	"cmp"
	"math"
	"slices"
)

// TopSupplierCount is how many vendors the supplier ranking keeps.
const TopSupplierCount = 10

// VendorTotal is one entry of a vendor ranking.
type VendorTotal struct {
	Vendor  string
	GRValue float64
}

// TopVendors drops totals that are not strictly positive (or overflowed), orders the rest by
// total descending and keeps the first n. Equal totals keep the order in which
// their vendors were first seen. Values are floored.
func TopVendors(totals *VendorTotals, n int) []VendorTotal {
	ranked := make([]VendorTotal, 0, totals.Len())
	for _, vendor := range totals.order {
		sum := totals.sums[vendor]
		if sum > 0 && !math.IsInf(sum, 1) {
			ranked = append(ranked, VendorTotal{Vendor: vendor, GRValue: sum})
		}
	}

	slices.SortStableFunc(ranked, func(a, b VendorTotal) int {
		return cmp.Compare(b.GRValue, a.GRValue)
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].GRValue = math.Floor(ranked[i].GRValue)
	}
	return ranked
}

// TopSuppliers ranks vendors by summed received value.
func TopSuppliers(records []Record) []VendorTotal {
	return TopVendors(SumByVendor(records, ReceivedValue), TopSupplierCount)
}
