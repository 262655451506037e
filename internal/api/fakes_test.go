package api_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecanay/blogfolio-backend/internal/models"
	repo "github.com/ecanay/blogfolio-backend/internal/repository"
)

// In-memory repositories backing the router tests. They enforce the
// same uniqueness rules the storage layer does.

type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]models.User{}} }

func (m *memUsers) Create(_ context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return models.User{}, repo.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = u
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (m *memUsers) UpdateProfile(_ context.Context, id string, p models.ProfilePatch) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&u.Bio, p.Bio)
	set(&u.Github, p.Github)
	set(&u.Linkedin, p.Linkedin)
	set(&u.Twitter, p.Twitter)
	set(&u.Portfolio, p.Portfolio)
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return u, nil
}

func (m *memUsers) TouchLastLogin(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		now := time.Now()
		u.LastLogin = &now
		m.users[id] = u
	}
	return nil
}

type memBlogs struct {
	mu    sync.Mutex
	blogs map[string]models.Blog
	seq   int
}

func newMemBlogs() *memBlogs { return &memBlogs{blogs: map[string]models.Blog{}} }

func (m *memBlogs) Create(_ context.Context, b models.Blog) (models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.blogs {
		if ex.Slug == b.Slug || ex.Title == b.Title {
			return models.Blog{}, repo.ErrDuplicate
		}
	}
	b.ID = uuid.NewString()
	m.seq++
	b.CreatedAt = time.Unix(int64(m.seq), 0)
	b.UpdatedAt = b.CreatedAt
	m.blogs[b.ID] = b
	return b, nil
}

func (m *memBlogs) GetByID(_ context.Context, id string) (models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blogs[id]
	if !ok {
		return models.Blog{}, repo.ErrNotFound
	}
	return b, nil
}

func (m *memBlogs) GetBySlug(_ context.Context, slug string) (models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.blogs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return models.Blog{}, repo.ErrNotFound
}

func (m *memBlogs) sorted(match func(models.Blog) bool) []models.Blog {
	out := []models.Blog{}
	for _, b := range m.blogs {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memBlogs) List(_ context.Context) ([]models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(models.Blog) bool { return true }), nil
}

func (m *memBlogs) Search(_ context.Context, f repo.BlogFilter) ([]models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	has := func(s, sub string) bool {
		return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}
	return m.sorted(func(b models.Blog) bool {
		if !has(b.Title, f.Title) || !has(b.Category, f.Category) || !has(b.Content, f.Content) {
			return false
		}
		return f.Featured == nil || b.IsFeatured == *f.Featured
	}), nil
}

func (m *memBlogs) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.blogs {
		if b.Slug == slug && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBlogs) Update(_ context.Context, b models.Blog) (models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.blogs[b.ID]
	if !ok {
		return models.Blog{}, repo.ErrNotFound
	}
	b.CreatedAt = old.CreatedAt
	b.UpdatedAt = time.Now()
	m.blogs[b.ID] = b
	return b, nil
}

func (m *memBlogs) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blogs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

type memAudit struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func (m *memAudit) Create(_ context.Context, l models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, l)
	return nil
}

func (m *memAudit) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.logs)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeMailer) SendContact(_ context.Context, name, email, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, name)
	return nil
}
