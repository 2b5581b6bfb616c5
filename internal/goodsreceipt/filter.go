package goodsreceipt

// FilterByVendor returns the records whose vendor equals vendor exactly.
// No trimming or case folding is applied.
func FilterByVendor(records []Record, vendor string) []Record {
	matched := make([]Record, 0)
	for _, r := range records {
		if r.Vendor == vendor {
			matched = append(matched, r)
		}
	}
	return matched
}
