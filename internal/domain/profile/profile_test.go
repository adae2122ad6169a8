package profile

import (
	"encoding/json"
	"testing"

	"nutriplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateProfile(p entity.UserProfile) []ValidationError {
	return Validate(FromProfile(p))
}

func validProfile() entity.UserProfile {
	return entity.UserProfile{
		Age:       30,
		Gender:    entity.GenderFemale,
		LifeStage: entity.LifeStageAdult,
		Goal:      entity.GoalEnergy,
		Weight:    70,
		Duration:  4,
		Language:  entity.LanguageDE,
	}
}

func ptr(f float64) *float64 { return &f }

func fields(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}

	return out
}

func TestFingerprint_KnownValues(t *testing.T) {
	p := validProfile()
	assert.Equal(t,
		`{"age":30,"gender":"female","lifeStage":"adult","goal":"energy","weight":70,"duration":4,"language":"de"}`,
		Canonical(p))
	assert.Equal(t, "304234324", Fingerprint(p))

	p.Language = entity.LanguageEN
	assert.Equal(t, "304272764", Fingerprint(p))

	child := entity.UserProfile{
		Age: 12, Gender: entity.GenderMale, LifeStage: entity.LifeStageChild,
		Goal: entity.GoalGrowthFocus, Weight: 38.5, Duration: 8, Language: entity.LanguageDE,
	}
	assert.Equal(t, "1926304140", Fingerprint(child))
	assert.Equal(t, int64(1926304140), Seed(child))
}

func TestFingerprint_DependsOnEveryField(t *testing.T) {
	base := validProfile()
	variants := []func(p *entity.UserProfile){
		func(p *entity.UserProfile) { p.Age = 31 },
		func(p *entity.UserProfile) { p.Gender = entity.GenderMale },
		func(p *entity.UserProfile) { p.LifeStage = entity.LifeStageChild },
		func(p *entity.UserProfile) { p.Goal = entity.GoalKeto },
		func(p *entity.UserProfile) { p.Weight = 70.5 },
		func(p *entity.UserProfile) { p.Duration = 5 },
		func(p *entity.UserProfile) { p.Language = entity.LanguageEN },
	}

	seen := map[string]bool{Fingerprint(base): true}
	for i, mutate := range variants {
		p := base
		mutate(&p)
		fp := Fingerprint(p)
		assert.False(t, seen[fp], "variant %d collided", i)
		seen[fp] = true
	}

	assert.Equal(t, Fingerprint(base), Fingerprint(validProfile()))
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, validateProfile(validProfile()))

	child := validProfile()
	child.Age = 17
	child.LifeStage = entity.LifeStageChild
	assert.Empty(t, validateProfile(child))

	adult := validProfile()
	adult.Age = entity.AdultAge
	assert.Empty(t, validateProfile(adult))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	p := validProfile()
	p.Age = 3

	errs := validateProfile(p)
	assert.Equal(t, []string{"age", "lifeStage"}, fields(errs))
	assert.Equal(t, []string{
		"Age must be between 5 and 120 years",
		`Life stage "adult" is only valid for ages >= 18`,
	}, Messages(errs))
}

func TestValidate_EveryField(t *testing.T) {
	in := Input{
		Age:       ptr(200),
		Gender:    "robot",
		LifeStage: "teen",
		Goal:      "speed",
		Weight:    ptr(1),
		Duration:  ptr(60),
		Language:  "fr",
	}

	errs := Validate(in)
	require.Equal(t, []string{"age", "gender", "lifeStage", "goal", "weight", "duration", "language"}, fields(errs))
	assert.Equal(t, "Goal must be one of: balance, muscle, energy, immunity, growth_focus, keto, concentration, diet", errs[3].Message)
	assert.Equal(t, `Language must be either "de" or "en"`, errs[6].Message)
}

func TestValidate_LifeStageRules(t *testing.T) {
	child := validProfile()
	child.LifeStage = entity.LifeStageChild
	child.Age = 18

	errs := validateProfile(child)
	require.Len(t, errs, 1)
	assert.Equal(t, `Life stage "child" is only valid for ages < 18`, errs[0].Message)

	// no age means only the age error is reported
	in := FromProfile(child)
	in.Age = nil
	assert.Equal(t, []string{"age"}, fields(Validate(in)))
}

func TestValidate_NonWholeNumbers(t *testing.T) {
	in := FromProfile(validProfile())
	in.Age = ptr(30.5)
	in.Duration = ptr(2.5)

	errs := Validate(in)
	assert.Equal(t, []string{"age", "duration"}, fields(errs))
	assert.Equal(t, "Duration must be a whole number of weeks", errs[1].Message)
}

func TestInput_UnmarshalJSON_Lenient(t *testing.T) {
	var in Input
	require.NoError(t, json.Unmarshal([]byte(`{"age":"30","gender":"female","lifeStage":"adult","goal":"energy","weight":70,"duration":4,"language":"de","extra":true}`), &in))

	assert.Nil(t, in.Age)
	require.NotNil(t, in.Weight)
	assert.InDelta(t, 70.0, *in.Weight, 1e-9)
	assert.Equal(t, []string{"age"}, fields(Validate(in)))

	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &in))
}

func TestInput_Profile(t *testing.T) {
	assert.Equal(t, validProfile(), FromProfile(validProfile()).Profile())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, Default(), Sanitize(Input{}))

	got := Sanitize(Input{
		Age:       ptr(300),
		Gender:    "male",
		LifeStage: "child",
		Goal:      "nope",
		Weight:    ptr(-4),
		Duration:  ptr(3.9),
		Language:  "en",
	})

	assert.Equal(t, entity.UserProfile{
		Age:       120,
		Gender:    entity.GenderMale,
		LifeStage: entity.LifeStageChild,
		Goal:      entity.GoalBalance,
		Weight:    5,
		Duration:  3,
		Language:  entity.LanguageEN,
	}, got)

	assert.Equal(t, validProfile(), Sanitize(FromProfile(validProfile())))
}
