package entity

// Gender of the person a plan is generated for.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderDiverse Gender = "diverse"
)

// LifeStage separates child and adult plans.
type LifeStage string

const (
	LifeStageAdult LifeStage = "adult"
	LifeStageChild LifeStage = "child"
)

// AdultAge is the first age that counts as adult.
const AdultAge = 18

// Goal is the nutrition objective of a plan.
type Goal string

const (
	GoalBalance       Goal = "balance"
	GoalMuscle        Goal = "muscle"
	GoalEnergy        Goal = "energy"
	GoalImmunity      Goal = "immunity"
	GoalGrowthFocus   Goal = "growth_focus"
	GoalKeto          Goal = "keto"
	GoalConcentration Goal = "concentration"
	GoalDiet          Goal = "diet"
)

// ValidGoals lists the accepted goals for both adult and child profiles.
func ValidGoals() []Goal {
	return []Goal{
		GoalBalance, GoalMuscle, GoalEnergy, GoalImmunity,
		GoalGrowthFocus, GoalKeto, GoalConcentration, GoalDiet,
	}
}

// Language of generated and displayed content.
type Language string

const (
	LanguageDE Language = "de"
	LanguageEN Language = "en"
)

// ParseLanguage returns the language for s, falling back to German.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageEN {
		return LanguageEN
	}

	return LanguageDE
}

// UserProfile holds the fields a plan is tailored to.
// Only its fingerprint and the derived plan are ever persisted.
type UserProfile struct {
	Age       int       `json:"age"`
	Gender    Gender    `json:"gender"`
	LifeStage LifeStage `json:"lifeStage"`
	Goal      Goal      `json:"goal"`
	Weight    float64   `json:"weight"`
	Duration  int       `json:"duration"`
	Language  Language  `json:"language"`
}

// IsChild reports whether the profile is a child profile.
func (p UserProfile) IsChild() bool {
	return p.LifeStage == LifeStageChild
}
