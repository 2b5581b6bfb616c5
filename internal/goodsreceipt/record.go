package goodsreceipt

import (
	"math"
)

// Column positions in the goods receipt export. The order is fixed.
const (
	colPurchaseInternalID = iota
	colPurchaseDocument
	colCreatedOn
	colVendor
	colPurchasingOrg
	colMaterial
	colCommodity
	colOrderQuantity
	colReceivedQuantity
	colReceivedValue
	colNetPrice
	colCurrency
	colUnitOfMeasure
	colMaterialDocument
	colPostingDate

	columnCount
)

// Number is a numeric column value that may be missing or malformed.
// The zero value is invalid.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a valid Number. Non-finite input yields an invalid Number.
func NewNumber(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{Value: v, Valid: true}
}

// Floor rounds toward negative infinity. Invalid stays invalid. A zero result
// is always positive zero.
func (n Number) Floor() Number {
	if !n.Valid {
		return n
	}
	v := math.Floor(n.Value)
	if v == 0 {
		v = 0
	}
	return NewNumber(v)
}

// Record is one goods receipt line.
type Record struct {
	PurchaseInternalID string
	PurchaseDocument   string
	CreatedOn          string
	Vendor             string
	PurchasingOrg      string
	Material           string
	Commodity          string
	OrderQuantity      Number
	ReceivedQuantity   Number
	ReceivedValue      Number
	NetPrice           Number
	Currency           string
	UnitOfMeasure      string
	MaterialDocument   string
	PostingDate        string
}

// NumericField selects one numeric column of a Record.
type NumericField func(Record) Number

var (
	OrderQuantity    NumericField = func(r Record) Number { return r.OrderQuantity }
	ReceivedQuantity NumericField = func(r Record) Number { return r.ReceivedQuantity }
	ReceivedValue    NumericField = func(r Record) Number { return r.ReceivedValue }
	NetPrice         NumericField = func(r Record) Number { return r.NetPrice }
)
