package catalog

import "nutriplan/internal/domain/entity"

// Preset is a predefined calculator mix.
type Preset struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Items []entity.MixItem `json:"items"`
}

// Presets returns the calculator presets sized after typical pack contents.
func Presets() []Preset {
	return []Preset{
		{
			ID:   "power100",
			Name: "100g Power-Mix",
			Items: []entity.MixItem{
				{NutID: "walnut", Grams: 30},
				{NutID: "almond", Grams: 30},
				{NutID: "cashew", Grams: 20},
				{NutID: "brazil", Grams: 20},
			},
		},
		{
			ID:   "family250",
			Name: "250g Wellness",
			Items: []entity.MixItem{
				{NutID: "walnut", Grams: 50},
				{NutID: "almond", Grams: 50},
				{NutID: "hazelnut", Grams: 50},
				{NutID: "pistachio", Grams: 50},
				{NutID: "pumpkin", Grams: 50},
			},
		},
		{
			ID:   "immune100",
			Name: "Immuno-Boost",
			Items: []entity.MixItem{
				{NutID: "brazil", Grams: 20},
				{NutID: "pumpkin", Grams: 50},
				{NutID: "pecan", Grams: 30},
			},
		},
	}
}

// FindPreset looks up a preset by id.
func FindPreset(id string) (Preset, bool) {
	for _, preset := range Presets() {
		if preset.ID == id {
			return preset, true
		}
	}

	return Preset{}, false
}
