package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// LoginOrCreate returns the existing user with the nickname, or registers
// a fresh one starting at BRONZE with zero XP and distance.
func (s *Service) LoginOrCreate(ctx context.Context, nickname string) (*User, error) {
	u, err := s.store.FindByNickname(ctx, nickname)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	u = &User{
		ID:             uuid.NewString(),
		Nickname:       nickname,
		Tier:           TierBronze,
		TotalXP:        0,
		TotalDistanceM: 0,
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.store.FindByID(ctx, id)
}
