package goodsreceipt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- FilterByVendor tests --

func TestFilterByVendor_ExactMatch(t *testing.T) {
	records := Parse(testExport(
		testLine("V1", "M1", "1", "1", "1"),
		testLine("v1", "M2", "1", "1", "1"),
		testLine(" V1", "M3", "1", "1", "1"),
		testLine("V1", "M4", "1", "1", "1"),
	))

	matched := FilterByVendor(records, "V1")

	require.Len(t, matched, 2)
	assert.Equal(t, "M1", matched[0].Material)
	assert.Equal(t, "M4", matched[1].Material)
}

func TestFilterByVendor_UnknownVendor(t *testing.T) {
	records := Parse(testExport(testLine("V1", "M1", "1", "1", "1")))

	matched := FilterByVendor(records, "nobody")

	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestFilterByVendor_EmptyVendorMatchesMissingColumn(t *testing.T) {
	records := Parse("header\n1,2\n" + testLine("V1", "M1", "1", "1", "1") + "\n")

	matched := FilterByVendor(records, "")

	require.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].PurchaseInternalID)
}

// -- LowestNetPrice tests --

func TestLowestNetPrice(t *testing.T) {
	records := Parse(testExport(
		testLine("V1", "M1", "1", "1", "7.5"),
		testLine("V1", "M2", "1", "1", "3.25"),
		testLine("V1", "M3", "1", "1", "9"),
	))

	assert.Equal(t, num(3.25), LowestNetPrice(records))
}

func TestLowestNetPrice_SkipsInvalid(t *testing.T) {
	records := Parse(testExport(
		testLine("V1", "M1", "1", "1", "bad"),
		testLine("V1", "M2", "1", "1", "4"),
	))

	assert.Equal(t, num(4), LowestNetPrice(records))
}

func TestLowestNetPrice_Empty(t *testing.T) {
	assert.False(t, LowestNetPrice(nil).Valid)
}

// -- CostReductions tests --

func TestCostReductions_Scenario(t *testing.T) {
	records := Parse(testExport(
		testLine("A", "M1", "2", "20", "10"),
		testLine("A", "M2", "5", "25", "5"),
	))

	results := CostReductions(FilterByVendor(records, "A"))

	require.Len(t, results, 2)
	assert.Equal(t, CostReduction{Vendor: "A", Material: "M1", Value: num(10)}, results[0])
	assert.Equal(t, CostReduction{Vendor: "A", Material: "M2", Value: num(0)}, results[1])
}

func TestCostReductions_FloorsProductOnce(t *testing.T) {
	// (10.4 - 10) * 2.5 = 1.0000000000000009, floored once to 1.
	// Flooring the price gap first would give 0.
	records := Parse(testExport(
		testLine("A", "M1", "2.5", "1", "10.4"),
		testLine("A", "M2", "1", "1", "10"),
	))

	results := CostReductions(records)

	assert.Equal(t, num(1), results[0].Value)
	assert.Equal(t, num(0), results[1].Value)
}

func TestCostReductions_NegativeQuantityFloorsDown(t *testing.T) {
	records := Parse(testExport(
		testLine("A", "M1", "-1.5", "1", "11"),
		testLine("A", "M2", "1", "1", "10"),
	))

	results := CostReductions(records)

	assert.Equal(t, num(-2), results[0].Value)
}

func TestCostReductions_NegativeQuantityOnMinimumIsZero(t *testing.T) {
	records := Parse(testExport(
		testLine("A", "M1", "-5", "1", "10"),
		testLine("A", "M2", "2", "1", "15"),
	))

	results := CostReductions(records)

	require.Len(t, results, 2)
	assert.Equal(t, num(0), results[0].Value)
	assert.False(t, math.Signbit(results[0].Value.Value))
	assert.Equal(t, num(10), results[1].Value)
}

func TestCostReductions_MinimumRecordIsZero(t *testing.T) {
	records := Parse(testExport(
		testLine("A", "M1", "3", "1", "8"),
		testLine("A", "M2", "1000", "1", "2"),
		testLine("A", "M3", "4", "1", "6"),
	))

	results := CostReductions(records)

	assert.Equal(t, num(18), results[0].Value)
	assert.Equal(t, num(0), results[1].Value)
	assert.Equal(t, num(16), results[2].Value)
}

func TestCostReductions_InvalidInputsPropagate(t *testing.T) {
	records := Parse(testExport(
		testLine("A", "M1", "x", "1", "10"),
		testLine("A", "M2", "2", "1", "y"),
		testLine("A", "M3", "2", "1", "4"),
	))

	results := CostReductions(records)

	require.Len(t, results, 3)
	assert.False(t, results[0].Value.Valid)
	assert.False(t, results[1].Value.Valid)
	assert.Equal(t, num(0), results[2].Value)
}

func TestCostReductions_NoValidPrice(t *testing.T) {
	records := Parse(testExport(
		testLine("A", "M1", "1", "1", ""),
		testLine("A", "M2", "1", "1", "-"),
	))

	results := CostReductions(records)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Value.Valid)
	}
}

func TestCostReductions_EmptySet(t *testing.T) {
	results := CostReductions(nil)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

// -- Number tests --

func TestNumber_Floor(t *testing.T) {
	assert.Equal(t, num(-3), num(-2.5).Floor())
	assert.Equal(t, num(2), num(2.9).Floor())
	assert.False(t, Number{}.Floor().Valid)
}

func TestNumber_FloorZeroIsPositive(t *testing.T) {
	assert.False(t, math.Signbit(NewNumber(math.Copysign(0, -1)).Floor().Value))
	assert.True(t, math.Signbit(num(-0.5).Floor().Value))
}
