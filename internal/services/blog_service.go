package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ecanay/blogfolio-backend/internal/metrics"
	"github.com/ecanay/blogfolio-backend/internal/models"
	repo "github.com/ecanay/blogfolio-backend/internal/repository"
	"github.com/ecanay/blogfolio-backend/internal/slug"
	"github.com/ecanay/blogfolio-backend/internal/worker"
)

type BlogService struct {
	r     repo.Blogs
	audit repo.AuditLogs
	wp    *worker.Pool
}

func NewBlogService(r repo.Blogs, audit repo.AuditLogs, wp *worker.Pool) *BlogService {
	return &BlogService{r: r, audit: audit, wp: wp}
}

// BlogUpdate carries the optional fields of an update request. Empty
// strings mean "keep"; IsFeatured is a pointer so an explicit false is
// applied rather than dropped.
type BlogUpdate struct {
	Title      string
	Content    string
	Image      string
	Category   string
	IsFeatured *bool
}

func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.r.List(ctx)
}

func (s *BlogService) GetBySlug(ctx context.Context, sl string) (models.Blog, error) {
	b, err := s.r.GetBySlug(ctx, sl)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Blog{}, ErrNotFound
	}
	return b, err
}

// SearchTitle is the simple search: case-insensitive substring match
// on the title only.
func (s *BlogService) SearchTitle(ctx context.Context, query string) ([]models.Blog, error) {
	return s.r.Search(ctx, repo.BlogFilter{Title: query})
}

func (s *BlogService) AdvancedSearch(ctx context.Context, f repo.BlogFilter) ([]models.Blog, error) {
	return s.r.Search(ctx, f)
}

func (s *BlogService) Create(ctx context.Context, userID, title, content, image, category string, isFeatured bool) (models.Blog, error) {
	title = strings.TrimSpace(title)
	sl := slug.Make(title)

	taken, err := s.r.SlugExists(ctx, sl, "")
	if err != nil {
		return models.Blog{}, err
	}
	if taken {
		return models.Blog{}, ErrTitleTaken
	}

	if image == "" {
		image = models.DefaultBlogImage
	}
	if category == "" {
		category = models.DefaultBlogCategory
	}
	b, err := s.r.Create(ctx, models.Blog{
		UserID:     userID,
		Title:      title,
		Slug:       sl,
		Content:    content,
		Image:      image,
		Category:   category,
		IsFeatured: isFeatured,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		// racing create landed first; the unique index decides
		return models.Blog{}, ErrTitleTaken
	}
	if err != nil {
		return models.Blog{}, err
	}
	metrics.BlogOpsTotal.WithLabelValues("create").Inc()
	s.recordAudit(models.AuditBlogCreate, b.ID, map[string]any{"title": b.Title, "by": userID})
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, id string, in BlogUpdate) (models.Blog, error) {
	b, err := s.r.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Blog{}, ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}

	if t := strings.TrimSpace(in.Title); t != "" && t != b.Title {
		newSlug := slug.Make(t)
		taken, err := s.r.SlugExists(ctx, newSlug, b.ID)
		if err != nil {
			return models.Blog{}, err
		}
		if taken {
			return models.Blog{}, ErrSlugTaken
		}
		b.Title = t
		b.Slug = newSlug
	}
	if in.Content != "" {
		b.Content = in.Content
	}
	if in.Image != "" {
		b.Image = in.Image
	}
	if in.Category != "" {
		b.Category = in.Category
	}
	if in.IsFeatured != nil {
		b.IsFeatured = *in.IsFeatured
	}

	updated, err := s.r.Update(ctx, b)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.Blog{}, ErrSlugTaken
	}
	if err != nil {
		return models.Blog{}, err
	}
	metrics.BlogOpsTotal.WithLabelValues("update").Inc()
	s.recordAudit(models.AuditBlogUpdate, updated.ID, map[string]any{"title": updated.Title})
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	metrics.BlogOpsTotal.WithLabelValues("delete").Inc()
	s.recordAudit(models.AuditBlogDelete, id, nil)
	return nil
}

// recordAudit writes the audit row off the request path. Failures are
// logged, never surfaced.
func (s *BlogService) recordAudit(action, entityID string, details map[string]any) {
	id := entityID
	s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.audit.Create(ctx, models.AuditLog{
			EntityType: "blog",
			EntityID:   &id,
			Action:     action,
			Details:    details,
		})
		if err != nil {
			slog.Error("audit log write", "action", action, "err", err)
		}
	})
}
