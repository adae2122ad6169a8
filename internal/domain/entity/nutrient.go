package entity

// Nutrient identifies one field of a NutrientVector.
type Nutrient string

// Nutrient fields. Units: energy kcal; protein, carbs, sugar, fat, saturatedFat, omega3 g;
// selenium µg; every other field mg.
const (
	NutrientEnergy       Nutrient = "energy"
	NutrientProtein      Nutrient = "protein"
	NutrientCarbs        Nutrient = "carbs"
	NutrientSugar        Nutrient = "sugar"
	NutrientFat          Nutrient = "fat"
	NutrientSaturatedFat Nutrient = "saturatedFat"
	NutrientMagnesium    Nutrient = "magnesium"
	NutrientCalcium      Nutrient = "calcium"
	NutrientIron         Nutrient = "iron"
	NutrientZinc         Nutrient = "zinc"
	NutrientPotassium    Nutrient = "potassium"
	NutrientVitaminE     Nutrient = "vitaminE"
	NutrientB1           Nutrient = "b1"
	NutrientB6           Nutrient = "b6"
	NutrientSelenium     Nutrient = "selenium"
	NutrientOmega3       Nutrient = "omega3"
)

// AllNutrients lists every field in declaration order.
func AllNutrients() []Nutrient {
	return []Nutrient{
		NutrientEnergy, NutrientProtein, NutrientCarbs, NutrientSugar,
		NutrientFat, NutrientSaturatedFat, NutrientMagnesium, NutrientCalcium,
		NutrientIron, NutrientZinc, NutrientPotassium, NutrientVitaminE,
		NutrientB1, NutrientB6, NutrientSelenium, NutrientOmega3,
	}
}

// IsMacro reports whether the nutrient is excluded from micronutrient rankings.
func (n Nutrient) IsMacro() bool {
	switch n {
	case NutrientEnergy, NutrientFat, NutrientSaturatedFat, NutrientCarbs, NutrientSugar, NutrientProtein:
		return true
	default:
		return false
	}
}

// Unit returns the unit the nutrient is always expressed in.
func (n Nutrient) Unit() string {
	switch n {
	case NutrientEnergy:
		return "kcal"
	case NutrientProtein, NutrientCarbs, NutrientSugar, NutrientFat, NutrientSaturatedFat, NutrientOmega3:
		return "g"
	case NutrientSelenium:
		return "µg"
	default:
		return "mg"
	}
}

// NutrientVector is a fixed-shape record of nutrient amounts.
// Methods never mutate the receiver.
type NutrientVector struct {
	Energy       float64 `json:"energy"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Sugar        float64 `json:"sugar"`
	Fat          float64 `json:"fat"`
	SaturatedFat float64 `json:"saturatedFat"`
	Magnesium    float64 `json:"magnesium"`
	Calcium      float64 `json:"calcium"`
	Iron         float64 `json:"iron"`
	Zinc         float64 `json:"zinc"`
	Potassium    float64 `json:"potassium"`
	VitaminE     float64 `json:"vitaminE"`
	B1           float64 `json:"b1"`
	B6           float64 `json:"b6"`
	Selenium     float64 `json:"selenium"`
	Omega3       float64 `json:"omega3"`
}

// Get returns the value of a single field. Unknown nutrients read as zero.
func (v NutrientVector) Get(n Nutrient) float64 {
	switch n {
	case NutrientEnergy:
		return v.Energy
	case NutrientProtein:
		return v.Protein
	case NutrientCarbs:
		return v.Carbs
	case NutrientSugar:
		return v.Sugar
	case NutrientFat:
		return v.Fat
	case NutrientSaturatedFat:
		return v.SaturatedFat
	case NutrientMagnesium:
		return v.Magnesium
	case NutrientCalcium:
		return v.Calcium
	case NutrientIron:
		return v.Iron
	case NutrientZinc:
		return v.Zinc
	case NutrientPotassium:
		return v.Potassium
	case NutrientVitaminE:
		return v.VitaminE
	case NutrientB1:
		return v.B1
	case NutrientB6:
		return v.B6
	case NutrientSelenium:
		return v.Selenium
	case NutrientOmega3:
		return v.Omega3
	default:
		return 0
	}
}

// Map returns the vector keyed by nutrient.
func (v NutrientVector) Map() map[Nutrient]float64 {
	out := make(map[Nutrient]float64, len(AllNutrients()))
	for _, n := range AllNutrients() {
		out[n] = v.Get(n)
	}

	return out
}

// Add returns the field-wise sum of v and o.
func (v NutrientVector) Add(o NutrientVector) NutrientVector {
	return NutrientVector{
		Energy:       v.Energy + o.Energy,
		Protein:      v.Protein + o.Protein,
		Carbs:        v.Carbs + o.Carbs,
		Sugar:        v.Sugar + o.Sugar,
		Fat:          v.Fat + o.Fat,
		SaturatedFat: v.SaturatedFat + o.SaturatedFat,
		Magnesium:    v.Magnesium + o.Magnesium,
		Calcium:      v.Calcium + o.Calcium,
		Iron:         v.Iron + o.Iron,
		Zinc:         v.Zinc + o.Zinc,
		Potassium:    v.Potassium + o.Potassium,
		VitaminE:     v.VitaminE + o.VitaminE,
		B1:           v.B1 + o.B1,
		B6:           v.B6 + o.B6,
		Selenium:     v.Selenium + o.Selenium,
		Omega3:       v.Omega3 + o.Omega3,
	}
}

// Portion returns the amounts contained in grams of a food whose
// per-100g amounts are v.
func (v NutrientVector) Portion(grams float64) NutrientVector {
	return NutrientVector{
		Energy:       v.Energy * grams / 100,
		Protein:      v.Protein * grams / 100,
		Carbs:        v.Carbs * grams / 100,
		Sugar:        v.Sugar * grams / 100,
		Fat:          v.Fat * grams / 100,
		SaturatedFat: v.SaturatedFat * grams / 100,
		Magnesium:    v.Magnesium * grams / 100,
		Calcium:      v.Calcium * grams / 100,
		Iron:         v.Iron * grams / 100,
		Zinc:         v.Zinc * grams / 100,
		Potassium:    v.Potassium * grams / 100,
		VitaminE:     v.VitaminE * grams / 100,
		B1:           v.B1 * grams / 100,
		B6:           v.B6 * grams / 100,
		Selenium:     v.Selenium * grams / 100,
		Omega3:       v.Omega3 * grams / 100,
	}
}
