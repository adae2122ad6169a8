package impl

import (
	"strings"
	"testing"

	domainerrors "nutriplan/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan_Plain(t *testing.T) {
	want := samplePlan(7)

	got, err := ParsePlan(planJSON(t, want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParsePlan_StripsFence(t *testing.T) {
	want := samplePlan(7)

	for name, text := range map[string]string{
		"json tag":   "```json\n" + planJSON(t, want) + "\n```",
		"no tag":     "```\n" + planJSON(t, want) + "\n```",
		"with prose": "Hier ist dein Plan:\n```json\n" + planJSON(t, want) + "\n```\nGuten Appetit!",
		"padded":     "  \n" + planJSON(t, want) + "\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ParsePlan(text)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParsePlan_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		details string
	}{
		{name: "six days", text: planJSON(t, samplePlan(6)), details: "schedule has 6 entries, want 7"},
		{name: "empty schedule", text: `{"title":"x","schedule":[]}`, details: "schedule has 0 entries, want 7"},
		{name: "eight days", text: planJSON(t, samplePlan(8)), details: "schedule has 8 entries, want 7"},
		{name: "missing schedule", text: `{"title":"x"}`, details: "schedule is not an array"},
		{name: "null schedule", text: `{"schedule":null}`, details: "schedule is not an array"},
		{name: "schedule object", text: `{"schedule":{"day":"Tag 1"}}`, details: "schedule is not an array"},
		{name: "null entry", text: `{"schedule":[{},{},{},null,{},{},{}]}`, details: "schedule entry 4 is null"},
		{name: "array", text: `[1,2,3]`, details: "response is not a JSON object"},
		{name: "prose", text: "Leider kann ich das nicht.", details: "response is not a JSON object"},
		{name: "empty", text: "", details: "response is not a JSON object"},
		{name: "wrong day shape", text: `{"schedule":[1,2,3,4,5,6,7]}`, details: "plan does not match the expected shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ParsePlan(tt.text)
			assert.Nil(t, plan)
			require.ErrorIs(t, err, domainerrors.ErrMalformedArtifact)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.True(t, strings.HasPrefix(appErr.Details(), tt.details), appErr.Details())
		})
	}
}
