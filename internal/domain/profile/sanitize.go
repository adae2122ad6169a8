package profile

import (
	"math"
	"slices"

	"nutriplan/internal/domain/entity"
)

// Default is the profile used when nothing usable was submitted.
func Default() entity.UserProfile {
	return entity.UserProfile{
		Age:       30,
		Gender:    entity.GenderFemale,
		LifeStage: entity.LifeStageAdult,
		Goal:      entity.GoalBalance,
		Weight:    70,
		Duration:  4,
		Language:  entity.LanguageDE,
	}
}

// Sanitize turns any input into a usable profile: missing or zero values
// take their defaults, numbers are clamped to their legal range and
// unknown enum values are replaced.
func Sanitize(in Input) entity.UserProfile {
	def := Default()

	out := entity.UserProfile{
		Age:       int(math.Floor(clamp(orDefault(in.Age, float64(def.Age)), 5, 120))),
		Gender:    def.Gender,
		LifeStage: def.LifeStage,
		Goal:      def.Goal,
		Weight:    clamp(orDefault(in.Weight, def.Weight), 5, 300),
		Duration:  int(math.Floor(clamp(orDefault(in.Duration, float64(def.Duration)), 1, 52))),
		Language:  def.Language,
	}

	if g := entity.Gender(in.Gender); g == entity.GenderMale || g == entity.GenderFemale || g == entity.GenderDiverse {
		out.Gender = g
	}
	if ls := entity.LifeStage(in.LifeStage); ls == entity.LifeStageAdult || ls == entity.LifeStageChild {
		out.LifeStage = ls
	}
	if slices.Contains(entity.ValidGoals(), entity.Goal(in.Goal)) {
		out.Goal = entity.Goal(in.Goal)
	}
	if l := entity.Language(in.Language); l == entity.LanguageDE || l == entity.LanguageEN {
		out.Language = l
	}

	return out
}

func orDefault(v *float64, def float64) float64 {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return def
	}

	return *v
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
