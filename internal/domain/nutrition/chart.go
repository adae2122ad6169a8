package nutrition

import (
	"math"

	"nutriplan/internal/domain/entity"
)

// VisualPercentCap bounds the bar length of a chart row.
const VisualPercentCap = 120

// CoverageLevel classifies a percent of RDA for display.
type CoverageLevel string

const (
	CoverageOptimal CoverageLevel = "optimal"
	CoverageGood    CoverageLevel = "good"
	CoverageMuted   CoverageLevel = "muted"
	CoverageLow     CoverageLevel = "low"
)

// GutHealthLevel groups gut benefit scores.
type GutHealthLevel string

const (
	GutHealthExcellent GutHealthLevel = "excellent"
	GutHealthVeryGood  GutHealthLevel = "veryGood"
	GutHealthGood      GutHealthLevel = "good"
	GutHealthStandard  GutHealthLevel = "standard"
)

// ChartRow is one bar of the detailed nutrient profile.
type ChartRow struct {
	Nutrient      entity.Nutrient `json:"key"`
	Unit          string          `json:"unit"`
	Value         float64         `json:"actual"`
	RDA           float64         `json:"rda"`
	Percent       float64         `json:"percent"`
	VisualPercent float64         `json:"visualPercent"`
	Level         CoverageLevel   `json:"level"`
}

// Milestone is a coverage threshold highlighted by the mix calculator.
type Milestone struct {
	ID      string `json:"id"`
	Reached bool   `json:"reached"`
}

// ChartNutrients lists the nutrients shown in the profile chart.
func ChartNutrients() []entity.Nutrient {
	return []entity.Nutrient{
		entity.NutrientProtein, entity.NutrientCarbs, entity.NutrientFat,
		entity.NutrientSelenium, entity.NutrientVitaminE, entity.NutrientMagnesium,
		entity.NutrientOmega3, entity.NutrientZinc, entity.NutrientIron,
		entity.NutrientCalcium, entity.NutrientPotassium, entity.NutrientB1, entity.NutrientB6,
	}
}

// ChartRows builds the chart rows for v.
func ChartRows(v, rda entity.NutrientVector) []ChartRow {
	keys := ChartNutrients()
	rows := make([]ChartRow, 0, len(keys))
	for _, n := range keys {
		divisor := rda.Get(n)
		if divisor == 0 {
			divisor = 1
		}
		percent := Percent(v.Get(n), divisor)
		rows = append(rows, ChartRow{
			Nutrient:      n,
			Unit:          n.Unit(),
			Value:         v.Get(n),
			RDA:           divisor,
			Percent:       percent,
			VisualPercent: math.Min(percent, VisualPercentCap),
			Level:         Coverage(percent),
		})
	}

	return rows
}

// Coverage classifies a percent of RDA.
func Coverage(percent float64) CoverageLevel {
	switch {
	case percent >= 100:
		return CoverageOptimal
	case percent >= 50:
		return CoverageGood
	case percent >= 25:
		return CoverageMuted
	default:
		return CoverageLow
	}
}

// Milestones evaluates the calculator's highlighted thresholds.
func Milestones(v, rda entity.NutrientVector) []Milestone {
	return []Milestone{
		{ID: "selenium", Reached: v.Selenium >= rda.Selenium},
		{ID: "magnesiumHalf", Reached: v.Magnesium >= rda.Magnesium*0.5},
		{ID: "vitaminE", Reached: v.VitaminE >= rda.VitaminE},
		{ID: "omega3", Reached: v.Omega3 >= rda.Omega3},
	}
}

// GutHealth classifies a 0-10 gut benefit score.
func GutHealth(score float64) GutHealthLevel {
	switch {
	case score >= 9.5:
		return GutHealthExcellent
	case score >= 8.5:
		return GutHealthVeryGood
	case score >= 7.5:
		return GutHealthGood
	default:
		return GutHealthStandard
	}
}

// TotalGrams sums the positive quantities of items.
func TotalGrams(items []entity.MixItem) float64 {
	var total float64
	for _, item := range items {
		if item.Grams > 0 {
			total += item.Grams
		}
	}

	return total
}

// GutScore is the gram-weighted mean gut benefit score of a mix.
// It is zero for an empty mix.
func GutScore(items []entity.MixItem, nuts map[string]entity.NutProfile) float64 {
	var weighted, grams float64
	for _, item := range items {
		nut, ok := nuts[item.NutID]
		if !ok || item.Grams <= 0 {
			continue
		}
		weighted += nut.GutHealthScore * item.Grams
		grams += item.Grams
	}
	if grams == 0 {
		return 0
	}

	return weighted / grams
}
