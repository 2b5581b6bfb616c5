package goodsreceipt

// CostReduction is the saving a record would have carried had it been priced at
// the vendor's lowest observed net price.
type CostReduction struct {
	Vendor   string
	Material string
	Value    Number
}

// LowestNetPrice returns the minimum valid net price in records. It is invalid
// when no record carries a valid net price.
func LowestNetPrice(records []Record) Number {
	lowest := Number{}
	for _, r := range records {
		if !r.NetPrice.Valid {
			continue
		}
		if !lowest.Valid || r.NetPrice.Value < lowest.Value {
			lowest = r.NetPrice
		}
	}
	return lowest
}

// CostReductions computes floor((netPrice - lowest) * receivedQuantity) for
// every record, keeping input order. records is expected to hold a single
// vendor's lines. A record with an invalid net price or received quantity, or a
// set with no valid lowest price, yields an invalid value.
func CostReductions(records []Record) []CostReduction {
	lowest := LowestNetPrice(records)

	results := make([]CostReduction, 0, len(records))
	for _, r := range records {
		results = append(results, CostReduction{
			Vendor:   r.Vendor,
			Material: r.Material,
			Value:    costReductionValue(r, lowest),
		})
	}
	return results
}

func costReductionValue(r Record, lowest Number) Number {
	if !lowest.Valid || !r.NetPrice.Valid || !r.ReceivedQuantity.Valid {
		return Number{}
	}
	return NewNumber((r.NetPrice.Value - lowest.Value) * r.ReceivedQuantity.Value).Floor()
}
