// Package sqlite implements the plan store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/errors"
	"nutriplan/internal/infra/persistence/model"
	"nutriplan/internal/infra/persistence/schema"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const createPlansTable = `
CREATE TABLE IF NOT EXISTS plans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TIMESTAMP NOT NULL,
	profile_hash TEXT NULL,
	plan_data TEXT NOT NULL CHECK (json_valid(plan_data))
);
CREATE INDEX IF NOT EXISTS idx_plans_profile_hash ON plans(profile_hash);
`

const selectLatest = `SELECT id, created_at, profile_hash, plan_data FROM plans`

// Open opens the database file at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}
	// one writer, and a single connection keeps :memory: to one database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "ping sqlite database")
	}
	if path != MemoryPath {
		if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
			_ = db.Close()

			return nil, errors.Wrap(err, "enable WAL mode")
		}
	}

	return db, nil
}

type planRepository struct {
	db     *sql.DB
	schema schema.Guard
	now    func() time.Time
}

// NewPlanRepository returns a plan store on db.
func NewPlanRepository(db *sql.DB) repository.PlanRepository {
	return &planRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *planRepository) EnsureSchema(ctx context.Context) error {
	return r.schema.Ensure(ctx, func(ctx context.Context) error {
		if _, err := r.db.ExecContext(ctx, createPlansTable); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to ensure plans table")
		}

		return nil
	})
}

func (r *planRepository) Insert(ctx context.Context, record *entity.PlanRecord) (*entity.PlanRecord, error) {
	if record == nil || len(record.Payload) == 0 {
		return nil, domainerrors.ErrPlanMissing
	}
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	stored := &entity.PlanRecord{
		CreatedAt:   r.now().UTC(),
		Fingerprint: model.NullableFingerprint(record.Fingerprint),
		Payload:     append([]byte(nil), record.Payload...),
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (created_at, profile_hash, plan_data) VALUES (?, ?, ?)`,
		stored.CreatedAt, stored.Fingerprint, string(stored.Payload),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert plan")
	}

	if stored.ID, err = res.LastInsertId(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read plan id")
	}

	return stored, nil
}

func (r *planRepository) FindLatest(ctx context.Context, fingerprint string) (*entity.PlanRecord, error) {
	if fingerprint == "" {
		return r.FindLatestAny(ctx)
	}

	return r.findLatest(ctx, selectLatest+` WHERE profile_hash = ? ORDER BY created_at DESC, id DESC LIMIT 1`, fingerprint)
}

func (r *planRepository) FindLatestAny(ctx context.Context) (*entity.PlanRecord, error) {
	return r.findLatest(ctx, selectLatest+` ORDER BY created_at DESC, id DESC LIMIT 1`)
}

func (r *planRepository) findLatest(ctx context.Context, query string, args ...any) (*entity.PlanRecord, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var (
		record      entity.PlanRecord
		fingerprint sql.NullString
		payload     string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt, &fingerprint, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest plan")
	}

	if fingerprint.Valid {
		record.Fingerprint = &fingerprint.String
	}
	record.Payload = []byte(payload)

	return &record, nil
}
