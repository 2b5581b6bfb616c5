package goodsreceipt

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse turns a goods receipt export into records.
//
// The first line is a header and is always dropped. Every other line is split on
// commas with no quoting support. Short lines produce records whose missing
// columns are empty strings or invalid numbers. A trailing empty line, left by
// a final newline, is ignored.
func Parse(raw string) []Record {
	lines := strings.Split(raw, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		records = append(records, parseLine(line))
	}
	return records
}

func parseLine(line string) Record {
	fields := strings.Split(line, ",")
	col := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	return Record{
		PurchaseInternalID: col(colPurchaseInternalID),
		PurchaseDocument:   col(colPurchaseDocument),
		CreatedOn:          col(colCreatedOn),
		Vendor:             col(colVendor),
		PurchasingOrg:      col(colPurchasingOrg),
		Material:           col(colMaterial),
		Commodity:          col(colCommodity),
		OrderQuantity:      ParseNumber(col(colOrderQuantity)),
		ReceivedQuantity:   ParseNumber(col(colReceivedQuantity)),
		ReceivedValue:      ParseNumber(col(colReceivedValue)),
		NetPrice:           ParseNumber(col(colNetPrice)),
		Currency:           col(colCurrency),
		UnitOfMeasure:      col(colUnitOfMeasure),
		MaterialDocument:   col(colMaterialDocument),
		PostingDate:        col(colPostingDate),
	}
}

// ParseNumber reads the longest decimal number at the start of s, after leading
// whitespace. Text such as "12.5 KG" yields 12.5. Text with no numeric prefix,
// or a value that overflows float64, yields an invalid Number.
func ParseNumber(s string) Number {
	s = strings.TrimLeftFunc(s, isSpace)
	end := numericPrefix(s)
	if end == 0 {
		return Number{}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return Number{}
	}
	return NewNumber(v)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// numericPrefix returns the length of the decimal literal at the start of s,
// or 0 when there is none.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intStart := i
	i = skipDigits(s, i)
	intDigits := i - intStart

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		fracDigits = j - (i + 1)
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
