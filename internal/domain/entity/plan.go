package entity

import (
	"encoding/json"
	"time"
)

// PlanDays is the number of entries a valid schedule has.
const PlanDays = 7

// DayPlan is one day of a weekly plan.
type DayPlan struct {
	Day string `json:"day"`
	// Mix entries look like "30g Mandeln (eine Handvoll)".
	Mix        []string `json:"mix"`
	Focus      string   `json:"focus"`
	Supplement string   `json:"supplement"`
}

// WeeklyPlan is the generated 7-day nutrition schedule.
type WeeklyPlan struct {
	Title    string    `json:"title"`
	Strategy string    `json:"strategy"`
	Schedule []DayPlan `json:"schedule"`
	Summary  string    `json:"summary"`
}

// IsComplete reports whether the schedule has exactly PlanDays entries.
func (p *WeeklyPlan) IsComplete() bool {
	return p != nil && len(p.Schedule) == PlanDays
}

// PlanRecord is one append-only row of the plan cache.
type PlanRecord struct {
	ID          int64           `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Fingerprint *string         `json:"profile_hash"`
	Payload     json.RawMessage `json:"plan_data"`
}

// Plan decodes the stored payload.
func (r *PlanRecord) Plan() (*WeeklyPlan, error) {
	var plan WeeklyPlan
	if err := json.Unmarshal(r.Payload, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}
