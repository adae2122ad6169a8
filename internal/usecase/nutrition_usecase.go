package usecase

import (
	"nutriplan/internal/domain/catalog"
	"nutriplan/internal/domain/entity"
	"nutriplan/internal/domain/nutrition"
)

// NutDetail is a nut profile scaled to a portion.
type NutDetail struct {
	Nut               entity.NutProfile           `json:"nut"`
	Grams             float64                     `json:"grams"`
	Nutrients         entity.NutrientVector       `json:"nutrients"`
	Percentages       []nutrition.NutrientPercent `json:"percentages"`
	Chart             []nutrition.ChartRow        `json:"chart"`
	TopMicronutrients []nutrition.NutrientPercent `json:"topMicronutrients"`
	GutHealth         nutrition.GutHealthLevel    `json:"gutHealth"`
}

// MixInput selects a mix either by items or by a preset id.
type MixInput struct {
	Items    []entity.MixItem `json:"items"`
	PresetID string           `json:"preset"`
	Language entity.Language  `json:"lang"`
}

// MixResult is the calculator view of a mix.
type MixResult struct {
	Items             []entity.MixItem            `json:"items"`
	Totals            entity.NutrientVector       `json:"totals"`
	PercentOfRDA      map[entity.Nutrient]float64 `json:"percentOfRda"`
	TopMicronutrients []nutrition.NutrientPercent `json:"topMicronutrients"`
	Chart             []nutrition.ChartRow        `json:"chart"`
	Milestones        []nutrition.Milestone       `json:"milestones"`
	TotalGrams        float64                     `json:"totalGrams"`
	GutScore          float64                     `json:"gutScore"`
	GutHealth         nutrition.GutHealthLevel    `json:"gutHealth"`
}

// NutritionUsecase serves the read-only catalog views.
type NutritionUsecase interface {
	ListNuts(lang entity.Language) []entity.NutProfile
	GetNut(id string, lang entity.Language, grams float64) (*NutDetail, error)
	ListPresets() []catalog.Preset
	CalculateMix(in MixInput) (*MixResult, error)
	// NutQRCode renders a PNG pointing at the shop page of a nut.
	NutQRCode(id string, lang entity.Language) ([]byte, error)
}
