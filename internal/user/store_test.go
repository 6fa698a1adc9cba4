package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errUserStore = errors.New("user store error")

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "nickname", "tier", "total_xp", "total_distance_m", "created_at"})
}

func TestPostgresStoreFindByNickname(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, nickname, tier, total_xp, COALESCE\(total_distance_m,0\), created_at`).
		WithArgs("runner").
		WillReturnRows(userRows().AddRow("user-1", "runner", TierBronze, int64(0), 0.0, time.Now()))

	store := NewPostgresStore(mock)
	u, err := store.FindByNickname(context.Background(), "runner")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.ID != "user-1" || u.Tier != TierBronze {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestPostgresStoreFindByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, nickname, tier, total_xp, COALESCE\(total_distance_m,0\), created_at`).
		WithArgs("missing").
		WillReturnRows(userRows())

	store := NewPostgresStore(mock)
	if _, err := store.FindByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestPostgresStoreCreate(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("user-1", "runner", TierBronze, int64(0), 0.0).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	store := NewPostgresStore(mock)
	u := &User{ID: "user-1", Nickname: "runner", Tier: TierBronze}
	if err := store.Create(context.Background(), u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("expected created_at from insert")
	}
}

func TestPostgresStoreSave(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1", TierSilver, int64(1200), 120000.0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	store := NewPostgresStore(mock)
	u := &User{ID: "user-1", Tier: TierSilver, TotalXP: 1200, TotalDistanceM: 120000}
	if err := store.Save(context.Background(), u); err != nil {
		t.Fatalf("save: %v", err)
	}

	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1", TierSilver, int64(1200), 120000.0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := store.Save(context.Background(), u); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected user not found for missing row, got %v", err)
	}
}

func TestPostgresStoreQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, nickname, tier, total_xp, COALESCE\(total_distance_m,0\), created_at`).
		WithArgs("runner").
		WillReturnError(errUserStore)

	store := NewPostgresStore(mock)
	if _, err := store.FindByNickname(context.Background(), "runner"); err == nil {
		t.Fatalf("expected error")
	}
}
