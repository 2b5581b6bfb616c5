package goodsreceipt

import "strings"

const testHeader = "PInt,Purch.Doc.,Created On,Vendor,POrg,Material,Commodity,Order Qty,GR Qty,GR Value,Net Price,Crcy,Per,Mat. Doc.,Pstng Date"

// testLine builds a full export line with the given vendor, material and numeric columns.
func testLine(vendor, material, grQty, grValue, netPrice string) string {
	return strings.Join([]string{
		"1", "4500000001", "01.02.2024", vendor, "1000", material, "RAW",
		"10", grQty, grValue, netPrice, "EUR", "1", "5000000001", "03.02.2024",
	}, ",")
}

func testExport(lines ...string) string {
	return testHeader + "\n" + strings.Join(lines, "\n") + "\n"
}

func num(v float64) Number {
	return NewNumber(v)
}
