package model

import (
	"encoding/json"
	"time"

	"nutriplan/internal/domain/entity"

	"gorm.io/datatypes"
)

// PlanModel is the GORM-specific struct for the 'plans' table.
// Rows are only ever inserted.
type PlanModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now()"`
	ProfileHash *string        `gorm:"column:profile_hash;type:text;index:idx_plans_profile_hash"`
	PlanData    datatypes.JSON `gorm:"column:plan_data;type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}

// FromPlanRecord maps a record to its row. An empty fingerprint becomes NULL.
func FromPlanRecord(record *entity.PlanRecord) *PlanModel {
	if record == nil {
		return nil
	}

	return &PlanModel{
		ID:          record.ID,
		CreatedAt:   record.CreatedAt,
		ProfileHash: NullableFingerprint(record.Fingerprint),
		PlanData:    datatypes.JSON(record.Payload),
	}
}

// ToPlanRecord maps a row back to the domain record.
func (m *PlanModel) ToPlanRecord() *entity.PlanRecord {
	if m == nil {
		return nil
	}

	return &entity.PlanRecord{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		Fingerprint: m.ProfileHash,
		Payload:     json.RawMessage(m.PlanData),
	}
}

// NullableFingerprint returns nil for a missing or empty fingerprint.
func NullableFingerprint(fp *string) *string {
	if fp == nil || *fp == "" {
		return nil
	}
	v := *fp

	return &v
}
