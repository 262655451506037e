package repository

import (
	"context"
	"errors"

	"github.com/ecanay/blogfolio-backend/internal/models"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a
	// unique index (SQLSTATE 23505). Racing writers lose with this.
	ErrDuplicate = errors.New("duplicate record")
)

// BlogFilter is a conjunctive search filter; zero-value fields are not
// applied. Text matches are case-insensitive substring matches.
type BlogFilter struct {
	Title    string
	Category string
	Content  string
	Featured *bool
}

func (f BlogFilter) Empty() bool {
	return f.Title == "" && f.Category == "" && f.Content == "" && f.Featured == nil
}

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, id string, p models.ProfilePatch) (models.User, error)
	TouchLastLogin(ctx context.Context, id string) error
}

type Blogs interface {
	Create(ctx context.Context, b models.Blog) (models.Blog, error)
	GetByID(ctx context.Context, id string) (models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Search(ctx context.Context, f BlogFilter) ([]models.Blog, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, b models.Blog) (models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
