// Package profile validates, sanitizes and fingerprints user profiles.
package profile

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"

	"nutriplan/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// ValidationError is one rule violation of a profile.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Input is a profile as submitted. Numeric fields are nil when the
// submitted value was missing or not a number.
type Input struct {
	Age       *float64 `json:"age" validate:"required,gte=5,lte=120,whole"`
	Gender    string   `json:"gender" validate:"oneof=male female diverse"`
	LifeStage string   `json:"lifeStage" validate:"oneof=adult child"`
	Goal      string   `json:"goal" validate:"oneof=balance muscle energy immunity growth_focus keto concentration diet"`
	Weight    *float64 `json:"weight" validate:"required,gte=5,lte=300"`
	Duration  *float64 `json:"duration" validate:"required,gte=1,lte=52,whole"`
	Language  string   `json:"language" validate:"oneof=de en"`
}

// UnmarshalJSON accepts any JSON object; values of the wrong type are
// left empty so that Validate can report them.
func (in *Input) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*in = Input{
		Age:       number(raw["age"]),
		Gender:    text(raw["gender"]),
		LifeStage: text(raw["lifeStage"]),
		Goal:      text(raw["goal"]),
		Weight:    number(raw["weight"]),
		Duration:  number(raw["duration"]),
		Language:  text(raw["language"]),
	}

	return nil
}

// FromProfile converts a typed profile back into an Input.
func FromProfile(p entity.UserProfile) Input {
	age := float64(p.Age)
	weight := p.Weight
	duration := float64(p.Duration)

	return Input{
		Age:       &age,
		Gender:    string(p.Gender),
		LifeStage: string(p.LifeStage),
		Goal:      string(p.Goal),
		Weight:    &weight,
		Duration:  &duration,
		Language:  string(p.Language),
	}
}

// Profile converts a valid Input into a UserProfile.
func (in Input) Profile() entity.UserProfile {
	return entity.UserProfile{
		Age:       int(deref(in.Age)),
		Gender:    entity.Gender(in.Gender),
		LifeStage: entity.LifeStage(in.LifeStage),
		Goal:      entity.Goal(in.Goal),
		Weight:    deref(in.Weight),
		Duration:  int(deref(in.Duration)),
		Language:  entity.Language(in.Language),
	}
}

//nolint:gochecknoglobals
var (
	validateOnce sync.Once
	validate     *validator.Validate

	fieldOrder = map[string]int{
		"age": 0, "gender": 1, "lifeStage": 2, "goal": 3,
		"weight": 4, "duration": 5, "language": 6,
	}
)

func profileValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

			return name
		})
		_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()

			return f == math.Trunc(f)
		})
		v.RegisterStructValidation(lifeStageMatchesAge, Input{})
		validate = v
	})

	return validate
}

// lifeStageMatchesAge reports child profiles aged 18+ and adult profiles under 18.
func lifeStageMatchesAge(sl validator.StructLevel) {
	in, ok := sl.Current().Interface().(Input)
	if !ok || in.Age == nil {
		return
	}

	age := *in.Age
	switch entity.LifeStage(in.LifeStage) {
	case entity.LifeStageChild:
		if age >= entity.AdultAge {
			sl.ReportError(in.LifeStage, "lifeStage", "LifeStage", "child_age", "")
		}
	case entity.LifeStageAdult:
		if age < entity.AdultAge {
			sl.ReportError(in.LifeStage, "lifeStage", "LifeStage", "adult_age", "")
		}
	}
}

// Validate checks every rule and returns all violations in field order.
// An empty result means the profile is valid.
func Validate(in Input) []ValidationError {
	err := profileValidator().Struct(in)
	if err == nil {
		return []ValidationError{}
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "profile", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe.Field(), fe.Tag()),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return fieldOrder[out[i].Field] < fieldOrder[out[j].Field]
	})

	return out
}

// Messages returns the messages of errs in order.
func Messages(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}

	return out
}

func message(field, tag string) string {
	switch field {
	case "age":
		return "Age must be between 5 and 120 years"
	case "gender":
		return "Invalid gender selection"
	case "lifeStage":
		switch tag {
		case "child_age":
			return `Life stage "child" is only valid for ages < 18`
		case "adult_age":
			return `Life stage "adult" is only valid for ages >= 18`
		default:
			return "Invalid life stage"
		}
	case "goal":
		return "Goal must be one of: " + strings.Join(goalNames(), ", ")
	case "weight":
		return "Weight must be between 5kg and 300kg"
	case "duration":
		if tag == "whole" {
			return "Duration must be a whole number of weeks"
		}

		return "Duration must be between 1 and 52 weeks"
	case "language":
		return `Language must be either "de" or "en"`
	default:
		return "Invalid " + field
	}
}

func goalNames() []string {
	goals := entity.ValidGoals()
	out := make([]string, 0, len(goals))
	for _, g := range goals {
		out = append(out, string(g))
	}

	return out
}

func number(v any) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}

	return &f
}

func text(v any) string {
	s, _ := v.(string)

	return s
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}

	return *f
}
