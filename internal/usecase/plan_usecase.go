// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"encoding/json"

	"nutriplan/internal/domain/entity"
	"nutriplan/internal/domain/nutrition"
	"nutriplan/internal/domain/profile"
)

// PlanCacheUsecase is the gateway to the append-only plan store.
type PlanCacheUsecase interface {
	// Save appends a plan payload. An empty fingerprint is stored as NULL.
	Save(ctx context.Context, plan json.RawMessage, fingerprint string) (*entity.PlanRecord, error)

	// Latest returns the newest payload stored under fingerprint, or across
	// all records when fingerprint is empty. It returns nil when none exists.
	Latest(ctx context.Context, fingerprint string) (json.RawMessage, error)

	// Get is the retried, best-effort read. Any failure reads as no plan.
	Get(ctx context.Context, fingerprint string) *entity.WeeklyPlan

	// Put is the retried, best-effort write. Failures are logged only.
	Put(ctx context.Context, plan *entity.WeeklyPlan, fingerprint string)
}

// GeneratedPlan is a plan together with the profile fingerprint it belongs to.
type GeneratedPlan struct {
	Plan        *entity.WeeklyPlan
	Fingerprint string
	// Cached is true when the plan came from the store.
	Cached bool
}

// PlanGenerationUsecase produces plans for valid profiles.
type PlanGenerationUsecase interface {
	// GeneratePlan returns a cached complete plan for the profile or
	// generates a fresh one. It never returns a plan without seven days.
	GeneratePlan(ctx context.Context, p entity.UserProfile) (*GeneratedPlan, error)
}

// DayNutrients are the nutrient totals of one schedule day.
type DayNutrients struct {
	Day               string                      `json:"day"`
	Nutrients         entity.NutrientVector       `json:"nutrients"`
	TopMicronutrients []nutrition.NutrientPercent `json:"topMicronutrients"`
}

// PlanResult is a plan with everything derived from it for display.
type PlanResult struct {
	Plan         *entity.WeeklyPlan       `json:"plan"`
	Fingerprint  string                   `json:"fingerprint,omitempty"`
	Cached       bool                     `json:"cached"`
	ShoppingList []nutrition.ShoppingItem `json:"shoppingList"`
	Daily        []DayNutrients           `json:"daily"`
	ShareText    string                   `json:"shareText"`
}

// PlannerUsecase is the caller of the generation client: it validates,
// generates and persists plans.
type PlannerUsecase interface {
	// CreatePlan validates in, then returns a plan. Fresh plans are stored
	// in the background under the profile fingerprint.
	CreatePlan(ctx context.Context, in profile.Input) (*PlanResult, error)

	// LatestPlan returns the most recently stored plan, or nil.
	LatestPlan(ctx context.Context, lang entity.Language, durationWeeks int) *PlanResult
}
