package catalog

import "nutriplan/internal/domain/entity"

//nolint:gochecknoglobals
var nutBases = []nutBase{
	{
		id:             "cashew",
		imageColor:     "bg-orange-100",
		gutHealthScore: 7.5,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-cashew-nusse",
		per100g: entity.NutrientVector{
			Energy: 616, Protein: 18.0, Carbs: 26.3, Sugar: 4.8, Fat: 47.3, SaturatedFat: 8.1,
			Magnesium: 270, Calcium: 37, Iron: 2.8, Zinc: 2.08, Potassium: 660, VitaminE: 0.9,
			B1: 0.63, B6: 0.42, Selenium: 19, Omega3: 0.1,
		},
	},
	{
		id:             "almond",
		imageColor:     "bg-amber-200",
		gutHealthScore: 9.5,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-mandeln",
		per100g: entity.NutrientVector{
			Energy: 598, Protein: 24.0, Carbs: 21.0, Sugar: 4.8, Fat: 54.7, SaturatedFat: 3.7,
			Magnesium: 218, Calcium: 85, Iron: 3.11, Zinc: 3.1, Potassium: 676, VitaminE: 25.0,
			B1: 0.22, B6: 0.1, Selenium: 4, Omega3: 0,
		},
	},
	{
		id:             "hazelnut",
		imageColor:     "bg-amber-700",
		gutHealthScore: 8.5,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-haselnusse",
		per100g: entity.NutrientVector{
			Energy: 643, Protein: 14.8, Carbs: 5.1, Sugar: 1.2, Fat: 61.4, SaturatedFat: 2.7,
			Magnesium: 163, Calcium: 114, Iron: 3.43, Zinc: 2.5, Potassium: 745, VitaminE: 24.5,
			B1: 0.46, B6: 0.66, Selenium: 5, Omega3: 0.1,
		},
	},
	{
		id:             "walnut",
		imageColor:     "bg-stone-600",
		gutHealthScore: 8.0,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-walnusse",
		per100g: entity.NutrientVector{
			Energy: 694, Protein: 16.0, Carbs: 13.7, Sugar: 3.0, Fat: 69.2, SaturatedFat: 4.4,
			Magnesium: 140, Calcium: 98, Iron: 2.78, Zinc: 2.64, Potassium: 444, VitaminE: 25.5,
			B1: 0.34, B6: 0.60, Selenium: 4.9, Omega3: 10.2,
		},
	},
	{
		id:             "pistachio",
		imageColor:     "bg-green-200",
		gutHealthScore: 9.0,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-pistazien",
		per100g: entity.NutrientVector{
			Energy: 607, Protein: 21.0, Carbs: 15.1, Sugar: 5.9, Fat: 50.6, SaturatedFat: 5.8,
			Magnesium: 109, Calcium: 105, Iron: 4.0, Zinc: 2.3, Potassium: 1010, VitaminE: 2.8,
			B1: 0.87, B6: 1.1, Selenium: 10, Omega3: 0.3,
		},
	},
	{
		id:             "brazil",
		imageColor:     "bg-stone-300",
		gutHealthScore: 6.5,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-paranusse",
		per100g: entity.NutrientVector{
			Energy: 689, Protein: 14.4, Carbs: 12.0, Sugar: 2.4, Fat: 68.5, SaturatedFat: 14.8,
			Magnesium: 160, Calcium: 130, Iron: 3.4, Zinc: 4.0, Potassium: 645, VitaminE: 7.1,
			B1: 1.0, B6: 0.11, Selenium: 1917, Omega3: 0.05,
		},
	},
	{
		id:             "pecan",
		imageColor:     "bg-amber-900",
		gutHealthScore: 7.5,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-pekannuessen",
		per100g: entity.NutrientVector{
			Energy: 710, Protein: 9.8, Carbs: 13.5, Sugar: 4.3, Fat: 71.9, SaturatedFat: 4.5,
			Magnesium: 140, Calcium: 55, Iron: 2.4, Zinc: 5.3, Potassium: 500, VitaminE: 1.4,
			B1: 0.86, B6: 0.2, Selenium: 3, Omega3: 1.0,
		},
	},
	{
		id:             "pumpkin",
		imageColor:     "bg-emerald-800",
		gutHealthScore: 9.8,
		shopURL:        "https://www.2die4livefoods.com/de-de/products/aktivierte-bio-kurbiskerne",
		per100g: entity.NutrientVector{
			Energy: 562, Protein: 30.0, Carbs: 10.7, Sugar: 1.6, Fat: 48.0, SaturatedFat: 10.0,
			Magnesium: 592, Calcium: 46, Iron: 8.8, Zinc: 7.8, Potassium: 809, VitaminE: 2.2,
			B1: 0.3, B6: 0.14, Selenium: 9, Omega3: 0.1,
		},
	},
}

//nolint:gochecknoglobals
var nutTexts = map[entity.Language]map[string]nutText{
	entity.LanguageDE: {
		"cashew":    {"Cashewkerne", "Nerven & Energiestoffwechsel (B1, B6, Mg)", "Ersetzt Magnesium-Supplemente, unterstützt Nervenfunktion"},
		"almond":    {"Mandeln", "Zellschutz & Vitamin-E Champion", "Ersetzt Vitamin E Supplemente, starkes Antioxidans"},
		"hazelnut":  {"Haselnüsse", "Haut & Immunsystem (E, B6, Folat)", "Ersetzt Vitamin E und Folsäure-Supplemente"},
		"walnut":    {"Walnüsse", "Omega-3 (ALA) & Biotin Booster", "Ersetzt Omega-3 Kapseln & Biotin-Tabletten"},
		"pistachio": {"Pistazien", "Kalium & Blutbildung (K, Fe, B6)", "Ersetzt Kalium- und Vitamin B6-Supplemente"},
		"brazil":    {"Paranüsse", "Der natürliche Selen-Ersatz", "Ersetzt Selen-Tabletten vollständig (1-2 Nüsse/Tag)"},
		"pecan":     {"Pekannüsse", "Zink & Energiestoffwechsel (Zn, B1)", "Ersetzt Zink-Supplemente, gut für Haut & Immunsystem"},
		"pumpkin":   {"Kürbiskerne", "Protein, Magnesium & Eisen-Kraftwerk", "Ersetzt Magnesium-, Eisen- und Zink-Supplemente"},
	},
	entity.LanguageEN: {
		"cashew":    {"Cashews", "Nerve & Energy metabolism (B1, B6, Mg)", "Replaces Magnesium supplements"},
		"almond":    {"Almonds", "Cell protection & Vitamin-E Champion", "Replaces Vitamin E supplements"},
		"hazelnut":  {"Hazelnuts", "Skin & Immune support (E, B6, Folate)", "Replaces Vitamin E & Folate supplements"},
		"walnut":    {"Walnuts", "Omega-3 (ALA) & Biotin Booster", "Replaces Omega-3 capsules & Biotin tablets"},
		"pistachio": {"Pistachios", "Potassium & Blood formation", "Replaces Potassium & Vitamin B6 supplements"},
		"brazil":    {"Brazil Nuts", "The natural Selenium replacement", "Replaces Selenium tablets completely"},
		"pecan":     {"Pecans", "Zinc & Energy metabolism", "Replaces Zinc supplements"},
		"pumpkin":   {"Pumpkin Seeds", "Protein, Magnesium & Iron Powerhouse", "Replaces Magnesium & Iron supplements"},
	},
}
