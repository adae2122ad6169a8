package catalog

import (
	"testing"

	"nutriplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuts_LocalizedInStableOrder(t *testing.T) {
	wantIDs := []string{"cashew", "almond", "hazelnut", "walnut", "pistachio", "brazil", "pecan", "pumpkin"}

	for _, lang := range []entity.Language{entity.LanguageDE, entity.LanguageEN} {
		t.Run(string(lang), func(t *testing.T) {
			nuts := Nuts(lang)
			require.Len(t, nuts, len(wantIDs))
			for i, nut := range nuts {
				assert.Equal(t, wantIDs[i], nut.ID)
				assert.NotEmpty(t, nut.Name)
				assert.NotEmpty(t, nut.ShopURL)
				assert.GreaterOrEqual(t, nut.GutHealthScore, 0.0)
				assert.LessOrEqual(t, nut.GutHealthScore, 10.0)
			}
		})
	}
}

func TestNuts_UnknownLanguageFallsBackToGerman(t *testing.T) {
	nut, ok := Nut("walnut", entity.Language("fr"))
	require.True(t, ok)
	assert.Equal(t, "Walnüsse", nut.Name)
}

func TestNut_SameNutrientsAcrossLanguages(t *testing.T) {
	de, ok := Nut("brazil", entity.LanguageDE)
	require.True(t, ok)
	en, ok := Nut("brazil", entity.LanguageEN)
	require.True(t, ok)

	assert.Equal(t, de.NutrientsPer100g, en.NutrientsPer100g)
	assert.Equal(t, "Paranüsse", de.Name)
	assert.Equal(t, "Brazil Nuts", en.Name)
	assert.InDelta(t, 1917, de.NutrientsPer100g.Selenium, 1e-9)
}

func TestNut_Unknown(t *testing.T) {
	_, ok := Nut("macadamia", entity.LanguageDE)
	assert.False(t, ok)
}

func TestRDA_AllFieldsPositive(t *testing.T) {
	rda := RDA()
	for _, n := range entity.AllNutrients() {
		assert.Positive(t, rda.Get(n), "rda for %s", n)
	}
}

func TestFindPreset(t *testing.T) {
	preset, ok := FindPreset("family250")
	require.True(t, ok)

	var total float64
	for _, item := range preset.Items {
		_, known := Nut(item.NutID, entity.LanguageDE)
		assert.True(t, known, "preset references %s", item.NutID)
		total += item.Grams
	}
	assert.InDelta(t, 250, total, 1e-9)

	_, ok = FindPreset("missing")
	assert.False(t, ok)
}

func TestSearchURL_EscapesName(t *testing.T) {
	assert.Equal(t, "https://www.2die4livefoods.com/search?q=Macadamia+N%C3%BCsse", SearchURL("Macadamia Nüsse"))
}
