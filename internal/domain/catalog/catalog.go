// Package catalog is the static nutrient reference store: per-100g nut
// profiles, the RDA vector and the calculator presets. All data is
// read-only for the lifetime of the process.
package catalog

import (
	"net/url"

	"nutriplan/internal/domain/entity"
)

const shopSearchURL = "https://www.2die4livefoods.com/search?q="

type nutBase struct {
	id             string
	imageColor     string
	gutHealthScore float64
	shopURL        string
	per100g        entity.NutrientVector
}

type nutText struct {
	name        string
	description string
	benefits    string
}

// RDA returns the recommended daily allowances used as percentage denominators.
func RDA() entity.NutrientVector {
	return entity.NutrientVector{
		Energy:       2000,
		Protein:      50,
		Carbs:        260,
		Sugar:        50,
		Fat:          70,
		SaturatedFat: 20,
		Magnesium:    375,
		Calcium:      1000,
		Iron:         14,
		Zinc:         10,
		Potassium:    4000,
		VitaminE:     12,
		B1:           1.1,
		B6:           1.4,
		Selenium:     70,
		Omega3:       2.0,
	}
}

// Nuts returns the catalog in display order with texts in lang.
func Nuts(lang entity.Language) []entity.NutProfile {
	texts := nutTexts[entity.ParseLanguage(string(lang))]
	out := make([]entity.NutProfile, 0, len(nutBases))
	for _, base := range nutBases {
		text := texts[base.id]
		out = append(out, entity.NutProfile{
			ID:               base.id,
			Name:             text.name,
			Description:      text.description,
			Benefits:         text.benefits,
			ImageColor:       base.imageColor,
			NutrientsPer100g: base.per100g,
			GutHealthScore:   base.gutHealthScore,
			ShopURL:          base.shopURL,
		})
	}

	return out
}

// Index returns the catalog keyed by nut id.
func Index(lang entity.Language) map[string]entity.NutProfile {
	nuts := Nuts(lang)
	out := make(map[string]entity.NutProfile, len(nuts))
	for _, nut := range nuts {
		out[nut.ID] = nut
	}

	return out
}

// Nut looks up a single catalog entry.
func Nut(id string, lang entity.Language) (entity.NutProfile, bool) {
	nut, ok := Index(lang)[id]

	return nut, ok
}

// SearchURL returns the shop search link for a product not in the catalog.
func SearchURL(name string) string {
	return shopSearchURL + url.QueryEscape(name)
}
