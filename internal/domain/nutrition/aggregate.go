// Package nutrition turns nut quantities into nutrient totals and the
// percent-of-RDA figures shown by the calculator, the nut explorer and
// the plan renderer. Every function here is pure.
package nutrition

import (
	"sort"

	"nutriplan/internal/domain/entity"
)

// NutrientPercent is one nutrient's amount and its share of the RDA.
type NutrientPercent struct {
	Nutrient entity.Nutrient `json:"key"`
	Unit     string          `json:"unit"`
	Value    float64         `json:"value"`
	Percent  float64         `json:"percent"`
}

// Aggregate sums the nutrients of items. Items with an unknown nut id
// or non-positive grams contribute nothing.
func Aggregate(items []entity.MixItem, nuts map[string]entity.NutProfile) entity.NutrientVector {
	var total entity.NutrientVector
	for _, item := range items {
		if item.Grams <= 0 {
			continue
		}
		nut, ok := nuts[item.NutID]
		if !ok {
			continue
		}
		total = total.Add(nut.NutrientsPer100g.Portion(item.Grams))
	}

	return total
}

// Percent returns 100*value/rda, using 1 as divisor when rda is zero.
func Percent(value, rda float64) float64 {
	if rda == 0 {
		rda = 1
	}

	return 100 * value / rda
}

// PercentOfRDA computes the percent of RDA for every field.
func PercentOfRDA(v, rda entity.NutrientVector) map[entity.Nutrient]float64 {
	out := make(map[entity.Nutrient]float64, len(entity.AllNutrients()))
	for _, n := range entity.AllNutrients() {
		out[n] = Percent(v.Get(n), rda.Get(n))
	}

	return out
}

// Percentages lists every field with its percent of RDA in field order.
func Percentages(v, rda entity.NutrientVector) []NutrientPercent {
	return percentagesOf(entity.AllNutrients(), v, rda)
}

// TopN returns the n nutrients with the highest percent of RDA, skipping
// those for which exclude returns true. Ties keep field order.
func TopN(v, rda entity.NutrientVector, n int, exclude func(entity.Nutrient) bool) []NutrientPercent {
	candidates := make([]entity.Nutrient, 0, len(entity.AllNutrients()))
	for _, nutrient := range entity.AllNutrients() {
		if exclude != nil && exclude(nutrient) {
			continue
		}
		candidates = append(candidates, nutrient)
	}

	ranked := percentagesOf(candidates, v, rda)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// TopMicronutrients ranks micronutrients only, as shown on the nut badges.
func TopMicronutrients(v, rda entity.NutrientVector, n int) []NutrientPercent {
	return TopN(v, rda, n, entity.Nutrient.IsMacro)
}

func percentagesOf(nutrients []entity.Nutrient, v, rda entity.NutrientVector) []NutrientPercent {
	out := make([]NutrientPercent, 0, len(nutrients))
	for _, n := range nutrients {
		out = append(out, NutrientPercent{
			Nutrient: n,
			Unit:     n.Unit(),
			Value:    v.Get(n),
			Percent:  Percent(v.Get(n), rda.Get(n)),
		})
	}

	return out
}
