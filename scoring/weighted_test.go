package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func innovationImpact() []Category {
	return []Category{
		{Name: "Innovation", Weight: ptr(1), OptOutAllowed: true},
		{Name: "Impact", Weight: ptr(2)},
	}
}

func TestCalculateTotalAllScored(t *testing.T) {
	entries := []Entry{
		{Category: "Innovation", Score: ptr(4)},
		{Category: "Impact", Score: ptr(5)},
	}
	assert.InDelta(t, 14.0, CalculateTotal(entries, innovationImpact()), 1e-9)
}

func TestCalculateTotalPartialOptOut(t *testing.T) {
	entries := []Entry{
		{Category: "Innovation", OptedOut: true},
		{Category: "Impact", Score: ptr(5)},
	}
	assert.InDelta(t, 15.0, CalculateTotal(entries, innovationImpact()), 1e-9)
}

func TestCalculateTotalAllOptedOut(t *testing.T) {
	entries := []Entry{
		{Category: "Innovation", Score: ptr(4), OptedOut: true},
		{Category: "Impact", Score: ptr(5), OptedOut: true},
	}
	assert.Equal(t, 0.0, CalculateTotal(entries, innovationImpact()))
}

func TestCalculateTotalIgnoresUnknownAndNull(t *testing.T) {
	entries := []Entry{
		{Category: "Design", Score: ptr(10)},
		{Category: "Innovation", Score: nil},
		{Category: "Impact", Score: ptr(3)},
	}
	// only Impact counts: 3*2/2 * 3
	assert.InDelta(t, 9.0, CalculateTotal(entries, innovationImpact()), 1e-9)
	assert.Equal(t, 0.0, CalculateTotal([]Entry{{Category: "Design", Score: ptr(10)}}, innovationImpact()))
}

func TestCalculateTotalOrderInvariant(t *testing.T) {
	categories := []Category{
		{Name: "A", Weight: ptr(1.5)},
		{Name: "B", Weight: ptr(3)},
		{Name: "C", Weight: ptr(0.5)},
	}
	entries := []Entry{
		{Category: "A", Score: ptr(7)},
		{Category: "B", Score: ptr(2)},
		{Category: "C", Score: ptr(9)},
	}
	reversedEntries := []Entry{entries[2], entries[1], entries[0]}
	reversedCategories := []Category{categories[2], categories[0], categories[1]}

	expected := CalculateTotal(entries, categories)
	assert.InDelta(t, expected, CalculateTotal(reversedEntries, categories), 1e-9)
	assert.InDelta(t, expected, CalculateTotal(entries, reversedCategories), 1e-9)
}

func TestCalculateTotalWeightScaling(t *testing.T) {
	// weighted mean is unchanged by scaling, total configured weight scales by k
	entries := []Entry{
		{Category: "Innovation", Score: ptr(4)},
		{Category: "Impact", Score: ptr(5)},
	}
	base := CalculateTotal(entries, innovationImpact())
	for _, k := range []float64{0.5, 2, 10} {
		scaled := []Category{
			{Name: "Innovation", Weight: ptr(1 * k)},
			{Name: "Impact", Weight: ptr(2 * k)},
		}
		assert.InDelta(t, base*k, CalculateTotal(entries, scaled), 1e-9)
	}
}

func TestTotalConfiguredWeightFallbacks(t *testing.T) {
	assert.Equal(t, 3.0, TotalConfiguredWeight(innovationImpact()))
	assert.Equal(t, 2.0, TotalConfiguredWeight([]Category{{Name: "A", Weight: ptr(0)}, {Name: "B", Weight: ptr(0)}}))
	assert.Equal(t, 1.0, TotalConfiguredWeight(nil))
	assert.Equal(t, 2.0, TotalConfiguredWeight([]Category{{Name: "A"}, {Name: "B"}}))
}

func TestCalculateTotalDefaultWeights(t *testing.T) {
	categories := []Category{{Name: "A"}, {Name: "B"}}
	entries := []Entry{{Category: "A", Score: ptr(3)}, {Category: "B", Score: ptr(5)}}
	assert.InDelta(t, 8.0, CalculateTotal(entries, categories), 1e-9)
}

func TestNormalize(t *testing.T) {
	entries := []Entry{
		{Category: "Innovation", Score: ptr(4), OptedOut: true},
		{Category: "Impact", Score: ptr(5), OptedOut: true},
	}
	normalized := Normalize(entries, innovationImpact())

	assert.True(t, normalized[0].OptedOut)
	assert.Nil(t, normalized[0].Score)
	assert.False(t, normalized[1].OptedOut, "mandatory category cannot be skipped")
	assert.Equal(t, 5.0, *normalized[1].Score)
	// input untouched
	assert.True(t, entries[1].OptedOut)

	assert.InDelta(t, 15.0, CalculateTotal(normalized, innovationImpact()), 1e-9)
}
