package user

import (
	"context"
	"errors"

	"github.com/geosohn7/FunRun/internal/db"

	"github.com/jackc/pgx/v5"
)

type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(db db.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, nickname, tier, total_xp, COALESCE(total_distance_m,0), created_at`

func (p *PostgresStore) FindByNickname(ctx context.Context, nickname string) (*User, error) {
	row := p.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE nickname=$1
	`, nickname)
	return scanUser(row)
}

func (p *PostgresStore) FindByID(ctx context.Context, id string) (*User, error) {
	row := p.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE id=$1
	`, id)
	return scanUser(row)
}

func (p *PostgresStore) Create(ctx context.Context, u *User) error {
	row := p.db.QueryRow(ctx, `
		INSERT INTO users (id, nickname, tier, total_xp, total_distance_m)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`, u.ID, u.Nickname, u.Tier, u.TotalXP, u.TotalDistanceM)
	return row.Scan(&u.CreatedAt)
}

func (p *PostgresStore) Save(ctx context.Context, u *User) error {
	tag, err := p.db.Exec(ctx, `
		UPDATE users
		SET tier=$2, total_xp=$3, total_distance_m=$4
		WHERE id=$1
	`, u.ID, u.Tier, u.TotalXP, u.TotalDistanceM)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Nickname, &u.Tier, &u.TotalXP, &u.TotalDistanceM, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
