package nutrition

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"nutriplan/internal/domain/catalog"
	"nutriplan/internal/domain/entity"
)

//nolint:gochecknoglobals
var (
	gramsPattern       = regexp.MustCompile(`(?i)(\d+)\s*g`)
	leadingPunctuation = regexp.MustCompile(`^[-,.]\s*`)
)

// ShoppingItem is one line of a plan's shopping list.
type ShoppingItem struct {
	Name               string `json:"name"`
	NutID              string `json:"nutId,omitempty"`
	Amount             int    `json:"amount"`
	PackRecommendation string `json:"packRecommendation"`
	URL                string `json:"url"`
}

// MixMatcher resolves free-text mix lines like "30g Mandeln (eine Handvoll)"
// against a localized catalog.
type MixMatcher struct {
	nuts []entity.NutProfile // longest name first
}

// NewMixMatcher builds a matcher over nuts.
func NewMixMatcher(nuts []entity.NutProfile) *MixMatcher {
	sorted := make([]entity.NutProfile, len(nuts))
	copy(sorted, nuts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len([]rune(sorted[i].Name)) > len([]rune(sorted[j].Name))
	})

	return &MixMatcher{nuts: sorted}
}

// Parse extracts the gram amount and the catalog nut named in line.
// ok is false when the line carries no gram amount.
func (m *MixMatcher) Parse(line string) (grams int, nut *entity.NutProfile, ok bool) {
	match := gramsPattern.FindStringSubmatch(line)
	if match == nil {
		return 0, nil, false
	}
	grams, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, nil, false
	}

	lower := strings.ToLower(line)
	for i := range m.nuts {
		if strings.Contains(lower, strings.ToLower(m.nuts[i].Name)) {
			return grams, &m.nuts[i], true
		}
	}

	return grams, nil, true
}

// DailyNutrients totals the nutrients of one day's mix lines. Lines that
// name no catalog nut are ignored.
func (m *MixMatcher) DailyNutrients(mix []string) entity.NutrientVector {
	var total entity.NutrientVector
	for _, line := range mix {
		grams, nut, ok := m.Parse(line)
		if !ok || nut == nil {
			continue
		}
		total = total.Add(nut.NutrientsPer100g.Portion(float64(grams)))
	}

	return total
}

// ShoppingList sums each product over the schedule and the plan duration
// in weeks, largest amount first.
func (m *MixMatcher) ShoppingList(schedule []entity.DayPlan, durationWeeks int) []ShoppingItem {
	totals := make(map[string]int)
	nutIDs := make(map[string]string)
	var order []string

	for _, day := range schedule {
		for _, line := range day.Mix {
			grams, nut, ok := m.Parse(line)
			if !ok {
				continue
			}

			var key string
			if nut != nil {
				key = nut.Name
				nutIDs[key] = nut.ID
			} else {
				key = productName(line)
			}

			if _, seen := totals[key]; !seen {
				order = append(order, key)
			}
			totals[key] += grams * durationWeeks
		}
	}

	items := make([]ShoppingItem, 0, len(order))
	for _, name := range order {
		amount := totals[name]
		items = append(items, ShoppingItem{
			Name:               name,
			NutID:              nutIDs[name],
			Amount:             amount,
			PackRecommendation: PackRecommendation(amount),
			URL:                m.shopURL(name),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})

	return items
}

func (m *MixMatcher) shopURL(name string) string {
	if name != "" {
		lower := strings.ToLower(name)
		for _, nut := range m.nuts {
			nutName := strings.ToLower(nut.Name)
			if lower == nutName || strings.Contains(nutName, lower) {
				return nut.ShopURL
			}
		}
	}

	return catalog.SearchURL(name)
}

// productName strips the first gram amount and leading punctuation.
func productName(line string) string {
	if loc := gramsPattern.FindStringIndex(line); loc != nil {
		line = line[:loc[0]] + line[loc[1]:]
	}
	line = leadingPunctuation.ReplaceAllString(line, "")

	return strings.TrimSpace(line)
}

// PackRecommendation suggests pack sizes for a total amount in grams.
func PackRecommendation(amount int) string {
	switch {
	case amount < 80:
		return "1x 100g"
	case amount <= 250:
		return "1x 250g"
	default:
		return fmt.Sprintf("%dx 250g", int(math.Ceil(float64(amount)/250)))
	}
}

// PlanText formats a plan and its shopping list for sharing.
func PlanText(plan *entity.WeeklyPlan, shopping []ShoppingItem, lang entity.Language) string {
	if plan == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🥜 %s\n\n%s\n\n", plan.Title, plan.Strategy)

	for i, day := range plan.Schedule {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "📅 %s\n", day.Day)
		for _, item := range day.Mix {
			fmt.Fprintf(&b, "  • %s\n", item)
		}
		fmt.Fprintf(&b, "   🎯 %s", day.Focus)
	}

	shoppingTitle, createdWith := "Einkaufsliste", "Erstellt mit"
	if lang == entity.LanguageEN {
		shoppingTitle, createdWith = "Shopping List", "Created with"
	}

	fmt.Fprintf(&b, "\n\n🛒 %s:\n", shoppingTitle)
	for i, item := range shopping {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  • %s: %dg", item.Name, item.Amount)
	}

	fmt.Fprintf(&b, "\n\n%s\n\n---\n%s NutriPlan AI • 2die4livefoods.com", plan.Summary, createdWith)

	return b.String()
}
