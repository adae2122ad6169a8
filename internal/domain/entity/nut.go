package entity

// NutProfile is a static catalog entry for one nut variety.
type NutProfile struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Benefits         string         `json:"benefits"`
	ImageColor       string         `json:"imageColor"`
	NutrientsPer100g NutrientVector `json:"nutrientsPer100g"`
	// GutHealthScore is a fixed 0-10 score.
	GutHealthScore float64 `json:"gutHealthScore"`
	ShopURL        string  `json:"shopUrl"`
}

// MixItem is a quantity of one nut in a mix.
type MixItem struct {
	NutID string  `json:"nutId"`
	Grams float64 `json:"grams"`
}
