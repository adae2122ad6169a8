package impl

import (
	"testing"

	"nutriplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanPrompt_Adult(t *testing.T) {
	prompt, err := BuildPlanPrompt(testProfile())
	require.NoError(t, err)

	assert.Contains(t, prompt, "Antworte strikt auf DEUTSCH.")
	assert.Contains(t, prompt, "Ziel: energy")
	assert.Contains(t, prompt, "Alter: 30 Jahre")
	assert.Contains(t, prompt, "Tagesbudget: ca. 65g Nüsse")
	assert.Contains(t, prompt, "Paranüsse: MAX 8g (ca. 2 Paranüsse)")
	assert.Contains(t, prompt, "Primär verwenden: Cashewkerne, Mandeln, Haselnüsse")
	assert.Contains(t, prompt, "Sekundär/ergänzend: Kürbiskerne, Paranüsse")
	assert.Contains(t, prompt, `"selenium":70`)
	assert.Contains(t, prompt, `"id":"brazil"`)
	assert.Contains(t, prompt, "Nerven & Energiestoffwechsel")
}

func TestBuildPlanPrompt_ChildInEnglish(t *testing.T) {
	p := entity.UserProfile{
		Age: 12, Gender: entity.GenderMale, LifeStage: entity.LifeStageChild,
		Goal: entity.GoalGrowthFocus, Weight: 38.5, Duration: 8, Language: entity.LanguageEN,
	}

	prompt, err := BuildPlanPrompt(p)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Respond strictly in British ENGLISH.")
	assert.Contains(t, prompt, "Tagesbudget: ca. 35g Nüsse")
	assert.Contains(t, prompt, "max. 35g/Tag")
	assert.Contains(t, prompt, "MAX 3g (ca. 1/2 Paranuss)")
	assert.Contains(t, prompt, "Primär verwenden: Almonds, Pumpkin Seeds, Cashews")
}

func TestBuildPlanPrompt_GoalWithoutRankingUsesBalance(t *testing.T) {
	p := testProfile()
	p.Goal = entity.GoalDiet

	prompt, err := BuildPlanPrompt(p)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Primär verwenden: Mandeln, Cashewkerne, Walnüsse")
	assert.Contains(t, prompt, goalPreferences[entity.GoalBalance].rationale)
}

func TestBuildPlanPrompt_Deterministic(t *testing.T) {
	first, err := BuildPlanPrompt(testProfile())
	require.NoError(t, err)
	second, err := BuildPlanPrompt(testProfile())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
