package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecanay/blogfolio-backend/internal/auth"
	"github.com/ecanay/blogfolio-backend/internal/config"
	"github.com/ecanay/blogfolio-backend/internal/models"
	repo "github.com/ecanay/blogfolio-backend/internal/repository"
)

type UserService struct {
	r repo.Users
	c config.Config
}

func NewUserService(r repo.Users, c config.Config) *UserService {
	return &UserService{r: r, c: c}
}

// Signup persists a new account with the default role. The role is
// never taken from the request.
func (s *UserService) Signup(ctx context.Context, username, email, password string, gender models.Gender) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.r.GetByEmail(ctx, email); err == nil {
		return models.User{}, ErrUserExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: hash,
		Gender:       gender,
		Role:         models.RoleUser,
		ProfilePic:   s.c.AvatarBaseURL + "/" + string(gender),
	}
	created, err := s.r.Create(ctx, u)
	if errors.Is(err, repo.ErrDuplicate) {
		// lost the insert race on the unique email index
		return models.User{}, ErrUserExists
	}
	return created, err
}

func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.r.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := s.r.TouchLastLogin(ctx, u.ID); err != nil {
		return models.User{}, err
	}
	now := time.Now()
	u.LastLogin = &now
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// EditProfile applies only the fields present in the patch and
// returns the updated user.
func (s *UserService) EditProfile(ctx context.Context, userID string, p models.ProfilePatch) (models.User, error) {
	u, err := s.r.UpdateProfile(ctx, userID, p)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	return u, err
}
