package services

import (
	"context"
	"fmt"

	"github.com/planit-app/planit-server/internal/api/validate"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store"
)

type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

func (s *UserService) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	if err := validate.UserID(u.UserID); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	if err := validate.Email(u.Email); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	if u.TimeZone == "" {
		u.TimeZone = "UTC"
	}
	return s.store.Users().Create(ctx, u)
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().Get(ctx, userID)
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.store.Users().Delete(ctx, userID)
}
