package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"straysense/pkg/triage"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS triage_records (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL DEFAULT '',
	animal_name   TEXT NOT NULL DEFAULT '',
	species       TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	urgency       TEXT NOT NULL,
	urgency_score INT  NOT NULL,
	concern_flags TEXT[] NOT NULL DEFAULT '{}',
	actions       TEXT[] NOT NULL DEFAULT '{}',
	created_at    TIMESTAMPTZ NOT NULL
)`

// PostgresStore keeps records in a Postgres table via a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createRecordsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure records table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Save(ctx context.Context, rec *Record) (string, error) {
	rec.prepare()

	flags := make([]string, 0, len(rec.ConcernFlags))
	for _, f := range rec.ConcernFlags {
		flags = append(flags, string(f))
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO triage_records
			(id, user_id, animal_name, species, description, urgency, urgency_score, concern_flags, actions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.UserID, rec.AnimalName, rec.Species, rec.Description,
		string(rec.Urgency), rec.UrgencyScore, flags, rec.Actions, rec.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("save record: %w", err)
	}
	return rec.ID, nil
}

func (s *PostgresStore) List(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, animal_name, species, description, urgency, urgency_score, concern_flags, actions, created_at
		FROM triage_records
		WHERE $1 = '' OR user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec     Record
			urgency string
			flags   []string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.AnimalName, &rec.Species, &rec.Description,
			&urgency, &rec.UrgencyScore, &flags, &rec.Actions, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Urgency = triage.Urgency(urgency)
		rec.ConcernFlags = make([]triage.Concern, 0, len(flags))
		for _, f := range flags {
			rec.ConcernFlags = append(rec.ConcernFlags, triage.Concern(f))
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
