package model

import (
	"encoding/json"
	"testing"
	"time"

	"nutriplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanModel_RoundTrip(t *testing.T) {
	fp := "304234324"
	record := &entity.PlanRecord{
		ID:          7,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Fingerprint: &fp,
		Payload:     json.RawMessage(`{"title":"x"}`),
	}

	m := FromPlanRecord(record)
	require.NotNil(t, m.ProfileHash)
	assert.NotSame(t, &fp, m.ProfileHash)
	assert.Equal(t, record, m.ToPlanRecord())
}

func TestNullableFingerprint(t *testing.T) {
	empty := ""
	assert.Nil(t, NullableFingerprint(nil))
	assert.Nil(t, NullableFingerprint(&empty))

	m := FromPlanRecord(&entity.PlanRecord{Fingerprint: &empty, Payload: json.RawMessage(`{}`)})
	assert.Nil(t, m.ProfileHash)
	assert.Nil(t, FromPlanRecord(nil))
	assert.Equal(t, "plans", PlanModel{}.TableName())
}
