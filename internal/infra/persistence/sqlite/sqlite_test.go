package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepository(t *testing.T) *planRepository {
	t.Helper()

	db, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, ok := NewPlanRepository(db).(*planRepository)
	require.True(t, ok)

	return repo
}

func insert(t *testing.T, repo *planRepository, fp *string, payload string) *entity.PlanRecord {
	t.Helper()

	stored, err := repo.Insert(context.Background(), &entity.PlanRecord{Fingerprint: fp, Payload: json.RawMessage(payload)})
	require.NoError(t, err)

	return stored
}

func TestPlanRepository_EmptyStore(t *testing.T) {
	repo := newMemoryRepository(t)

	got, err := repo.FindLatestAny(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindLatest(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlanRepository_InsertReturnsStoredRow(t *testing.T) {
	repo := newMemoryRepository(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	fp := "abc123"
	stored := insert(t, repo, &fp, `{"title":"A"}`)

	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, fixed, stored.CreatedAt)
	require.NotNil(t, stored.Fingerprint)
	assert.Equal(t, fp, *stored.Fingerprint)

	got, err := repo.FindLatest(context.Background(), fp)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.True(t, fixed.Equal(got.CreatedAt))
	assert.JSONEq(t, `{"title":"A"}`, string(got.Payload))
}

func TestPlanRepository_LatestWinsOnTimestampTie(t *testing.T) {
	repo := newMemoryRepository(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	k := "k"
	other := "other"
	insert(t, repo, &k, `{"title":"A"}`)
	insert(t, repo, &k, `{"title":"B"}`)
	insert(t, repo, &other, `{"title":"C"}`)

	got, err := repo.FindLatest(context.Background(), k)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"B"}`, string(got.Payload))

	got, err = repo.FindLatestAny(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"C"}`, string(got.Payload))
}

func TestPlanRepository_NullFingerprint(t *testing.T) {
	repo := newMemoryRepository(t)

	empty := ""
	stored := insert(t, repo, &empty, `{"title":"unkeyed"}`)
	assert.Nil(t, stored.Fingerprint)
	insert(t, repo, nil, `{"title":"also unkeyed"}`)

	got, err := repo.FindLatest(context.Background(), "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"also unkeyed"}`, string(got.Payload))
	assert.Nil(t, got.Fingerprint)
}

func TestPlanRepository_RejectsMissingOrInvalidPayload(t *testing.T) {
	repo := newMemoryRepository(t)

	_, err := repo.Insert(context.Background(), &entity.PlanRecord{})
	assert.ErrorIs(t, err, domainerrors.ErrPlanMissing)

	_, err = repo.Insert(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrPlanMissing)

	_, err = repo.Insert(context.Background(), &entity.PlanRecord{Payload: json.RawMessage(`{not json`)})
	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
}

func TestPlanRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.db")
	fp := "durable"

	db, err := Open(path)
	require.NoError(t, err)
	_, err = NewPlanRepository(db).Insert(context.Background(), &entity.PlanRecord{Fingerprint: &fp, Payload: json.RawMessage(`{"title":"kept"}`)})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := NewPlanRepository(db).FindLatest(context.Background(), fp)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"title":"kept"}`, string(got.Payload))
}
