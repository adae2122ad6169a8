package impl

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"nutriplan/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testProfile() entity.UserProfile {
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

// testProfileFingerprint is the fingerprint of testProfile.
const testProfileFingerprint = "304234324"

func samplePlan(days int) *entity.WeeklyPlan {
	plan := &entity.WeeklyPlan{
		Title:    "Energie-Woche",
		Strategy: "Cashews und Mandeln im Wechsel",
		Summary:  "Solide Versorgung mit Magnesium",
	}
	for i := 1; i <= days; i++ {
		plan.Schedule = append(plan.Schedule, entity.DayPlan{
			Day:        fmt.Sprintf("Tag %d", i),
			Mix:        []string{"30g Cashewkerne (eine Handvoll)", "5g Paranüsse (1 Nuss)"},
			Focus:      "Magnesium",
			Supplement: "Trägt zur Deckung des Tagesbedarfs an Selen bei",
		})
	}

	return plan
}

func planJSON(t *testing.T, plan *entity.WeeklyPlan) string {
	t.Helper()

	data, err := json.Marshal(plan)
	require.NoError(t, err)

	return string(data)
}
