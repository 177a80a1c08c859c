package service

import (
	"context"
	"fmt"

	"readdash-service/internal/models"
	"readdash-service/internal/repository"
)

type UserService struct {
	Users        *repository.UserRepository
	Achievements *repository.AchievementRepository
}

func NewUserService(users *repository.UserRepository, achievements *repository.AchievementRepository) *UserService {
	return &UserService{Users: users, Achievements: achievements}
}

// EnsureUser upserts the profile from the identity tuple carried in the
// session token and returns the stored profile with progress fields.
func (s *UserService) EnsureUser(ctx context.Context, identity models.User) (*models.User, error) {
	if err := s.Users.Upsert(ctx, &identity); err != nil {
		return nil, err
	}
	return s.Users.FindByUID(ctx, identity.UID)
}

func (s *UserService) Profile(ctx context.Context, uid string) (*models.User, error) {
	return s.Users.FindByUID(ctx, uid)
}

func (s *UserService) UserAchievements(ctx context.Context, uid string) ([]models.Achievement, error) {
	return s.Achievements.FindByUser(ctx, uid)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.FindAll(ctx)
}

func (s *UserService) SetRole(ctx context.Context, uid, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("invalid role %q", role)
	}
	return s.Users.UpdateRole(ctx, uid, role)
}
