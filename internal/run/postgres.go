package run

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/geosohn7/FunRun/internal/db"

	"github.com/jackc/pgx/v5"
)

// PostgresStore persists sessions in the runs table; the path is stored as
// a jsonb array of GPS fixes.
type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(db db.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	path, err := json.Marshal(s.Path)
	if err != nil {
		return err
	}
	row := p.db.QueryRow(ctx, `
		INSERT INTO runs (id, user_id, status, path, distance_m, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at
	`, s.ID, s.UserID, s.Status, path, s.DistanceM, s.CreatedAt)
	return row.Scan(&s.CreatedAt)
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	row := p.db.QueryRow(ctx, `
		SELECT id, user_id, status, path, COALESCE(distance_m,0), created_at, ended_at
		FROM runs WHERE id=$1
	`, id)

	var s Session
	var path []byte
	if err := row.Scan(&s.ID, &s.UserID, &s.Status, &path, &s.DistanceM, &s.CreatedAt, &s.EndedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	if len(path) > 0 {
		if err := json.Unmarshal(path, &s.Path); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	path, err := json.Marshal(s.Path)
	if err != nil {
		return err
	}
	tag, err := p.db.Exec(ctx, `
		UPDATE runs
		SET status=$2, path=$3, distance_m=$4, ended_at=$5
		WHERE id=$1
	`, s.ID, s.Status, path, s.DistanceM, s.EndedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRunNotFound
	}
	return nil
}
