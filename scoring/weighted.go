package scoring

// Category is the scoring-relevant part of an event's judging category.
// A nil weight counts as 1.
type Category struct {
	Name          string
	Weight        *float64
	OptOutAllowed bool
}

func (c Category) EffectiveWeight() float64 {
	if c.Weight == nil {
		return 1
	}
	return *c.Weight
}

// Entry is one category value a judge submitted for a team.
type Entry struct {
	Category string
	Score    *float64
	OptedOut bool
}

// TotalConfiguredWeight sums the weights of all configured categories. A zero
// sum falls back to the category count, and an empty list to 1.
func TotalConfiguredWeight(categories []Category) float64 {
	total := 0.0
	for _, category := range categories {
		total += category.EffectiveWeight()
	}
	if total != 0 {
		return total
	}
	if len(categories) > 0 {
		return float64(len(categories))
	}
	return 1
}

// CalculateTotal re-normalizes the weighted mean of the scored categories onto
// the full configured weight, so opting out of a category neither helps nor
// hurts a team. Entries for unknown categories are ignored.
func CalculateTotal(entries []Entry, categories []Category) float64 {
	weights := make(map[string]float64, len(categories))
	for _, category := range categories {
		weights[category.Name] = category.EffectiveWeight()
	}

	weightedSum := 0.0
	usedWeight := 0.0
	for _, entry := range entries {
		weight, ok := weights[entry.Category]
		if !ok || entry.OptedOut || entry.Score == nil {
			continue
		}
		weightedSum += *entry.Score * weight
		usedWeight += weight
	}
	if usedWeight == 0 {
		return 0
	}
	return weightedSum / usedWeight * TotalConfiguredWeight(categories)
}

// Normalize clears opt-outs the event does not allow for a category and drops
// the raw score of honored opt-outs.
func Normalize(entries []Entry, categories []Category) []Entry {
	optOutAllowed := make(map[string]bool, len(categories))
	for _, category := range categories {
		optOutAllowed[category.Name] = category.OptOutAllowed
	}
	normalized := make([]Entry, len(entries))
	for i, entry := range entries {
		if entry.OptedOut {
			if optOutAllowed[entry.Category] {
				entry.Score = nil
			} else {
				entry.OptedOut = false
			}
		}
		normalized[i] = entry
	}
	return normalized
}
