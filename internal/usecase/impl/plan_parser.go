package impl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
)

//nolint:gochecknoglobals
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// ParsePlan decodes generated text into a plan. The text may be wrapped in
// a fenced code block. Anything that is not an object with a schedule of
// exactly seven day entries is rejected with ErrMalformedArtifact.
func ParsePlan(text string) (*entity.WeeklyPlan, error) {
	body := strings.TrimSpace(text)
	if m := fencedBlock.FindStringSubmatch(body); m != nil {
		body = strings.TrimSpace(m[1])
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, domainerrors.ErrMalformedArtifact.WithDetails("response is not a JSON object: " + err.Error())
	}

	var days []json.RawMessage
	if err := json.Unmarshal(raw["schedule"], &days); err != nil || days == nil {
		return nil, domainerrors.ErrMalformedArtifact.WithDetails("schedule is not an array")
	}
	if len(days) != entity.PlanDays {
		return nil, domainerrors.ErrMalformedArtifact.WithDetails(
			fmt.Sprintf("schedule has %d entries, want %d", len(days), entity.PlanDays))
	}
	for i, day := range days {
		if bytes.Equal(bytes.TrimSpace(day), []byte("null")) {
			return nil, domainerrors.ErrMalformedArtifact.WithDetails(fmt.Sprintf("schedule entry %d is null", i+1))
		}
	}

	var plan entity.WeeklyPlan
	if err := json.Unmarshal([]byte(body), &plan); err != nil {
		return nil, domainerrors.ErrMalformedArtifact.WithDetails("plan does not match the expected shape: " + err.Error())
	}

	return &plan, nil
}
