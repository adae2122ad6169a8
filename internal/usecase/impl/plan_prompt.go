package impl

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"nutriplan/internal/domain/catalog"
	"nutriplan/internal/domain/entity"
	"nutriplan/internal/errors"
)

const (
	childDailyGrams = 35
	adultDailyGrams = 65

	childBrazilLimit = "MAX 3g (ca. 1/2 Paranuss)"
	adultBrazilLimit = "MAX 8g (ca. 2 Paranüsse)"
)

// goalPreference ranks catalog nuts for a goal.
type goalPreference struct {
	primary   []string
	secondary []string
	rationale string
}

//go:embed templates/weekly_plan.tmpl
var weeklyPlanTemplate string

//nolint:gochecknoglobals
var (
	promptTemplate = template.Must(
		template.New("weekly_plan").Funcs(template.FuncMap{"join": strings.Join}).Parse(weeklyPlanTemplate),
	)

	goalPreferences = map[entity.Goal]goalPreference{
		entity.GoalBalance: {
			primary:   []string{"almond", "cashew", "walnut"},
			secondary: []string{"hazelnut", "pumpkin", "brazil"},
			rationale: "Ausgewogene Mischung aller Makro- und Mikronährstoffe für allgemeine Gesundheit",
		},
		entity.GoalEnergy: {
			primary:   []string{"cashew", "almond", "hazelnut"},
			secondary: []string{"pumpkin", "brazil"},
			rationale: "B-Vitamine (B1, B6) und Magnesium für Energiestoffwechsel und Nervenfunktion",
		},
		entity.GoalMuscle: {
			primary:   []string{"pumpkin", "almond", "cashew"},
			secondary: []string{"pistachio", "walnut"},
			rationale: "Hoher Proteingehalt (Kürbiskerne: 30g/100g), Zink und Magnesium für Muskelaufbau",
		},
		entity.GoalImmunity: {
			primary:   []string{"brazil", "pumpkin", "almond"},
			secondary: []string{"cashew", "hazelnut"},
			rationale: "Selen (Paranüsse), Zink und Vitamin E für Immunfunktion und Zellschutz",
		},
		entity.GoalKeto: {
			primary:   []string{"hazelnut", "pecan", "walnut"},
			secondary: []string{"almond", "brazil"},
			rationale: "Niedrige Kohlenhydrate (Haselnüsse: 5g/100g), hoher Fettanteil für ketogene Ernährung",
		},
		entity.GoalGrowthFocus: {
			primary:   []string{"almond", "pumpkin", "cashew"},
			secondary: []string{"hazelnut", "walnut"},
			rationale: "Calcium, Protein und Zink für Knochenaufbau und Wachstum bei Kindern",
		},
		entity.GoalConcentration: {
			primary:   []string{"walnut", "cashew", "pumpkin"},
			secondary: []string{"almond", "hazelnut"},
			rationale: "Omega-3 (Walnüsse: 10g ALA/100g), B-Vitamine und Magnesium für Gehirnfunktion und Konzentration",
		},
	}
)

type promptData struct {
	LanguageInstruction string
	Goal                entity.Goal
	LifeStage           entity.LifeStage
	Age                 int
	Gender              entity.Gender
	DailyGrams          int
	BrazilLimit         string
	Primary             []string
	Secondary           []string
	Rationale           string
	RDA                 string
	Nuts                string
}

// preferenceFor returns the nut ranking of goal. Goals without their own
// ranking use the balance ranking.
func preferenceFor(goal entity.Goal) goalPreference {
	if pref, ok := goalPreferences[goal]; ok {
		return pref
	}

	return goalPreferences[entity.GoalBalance]
}

// BuildPlanPrompt renders the instruction for a weekly plan tailored to p.
func BuildPlanPrompt(p entity.UserProfile) (string, error) {
	nutsJSON, err := compactJSON(catalog.Nuts(p.Language))
	if err != nil {
		return "", errors.Wrap(err, "encode catalog")
	}
	rdaJSON, err := compactJSON(catalog.RDA())
	if err != nil {
		return "", errors.Wrap(err, "encode rda")
	}

	data := promptData{
		LanguageInstruction: "Antworte strikt auf DEUTSCH.",
		Goal:                p.Goal,
		LifeStage:           p.LifeStage,
		Age:                 p.Age,
		Gender:              p.Gender,
		DailyGrams:          adultDailyGrams,
		BrazilLimit:         adultBrazilLimit,
		RDA:                 rdaJSON,
		Nuts:                nutsJSON,
	}
	if p.Language == entity.LanguageEN {
		data.LanguageInstruction = "Respond strictly in British ENGLISH."
	}
	if p.IsChild() {
		data.DailyGrams = childDailyGrams
		data.BrazilLimit = childBrazilLimit
	}

	pref := preferenceFor(p.Goal)
	index := catalog.Index(p.Language)
	data.Primary = nutNames(pref.primary, index)
	data.Secondary = nutNames(pref.secondary, index)
	data.Rationale = pref.rationale

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "render plan prompt")
	}

	return buf.String(), nil
}

func nutNames(ids []string, index map[string]entity.NutProfile) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if nut, ok := index[id]; ok {
			names = append(names, nut.Name)
		}
	}

	return names
}

func compactJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
