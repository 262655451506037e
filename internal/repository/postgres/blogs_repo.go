package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/ecanay/blogfolio-backend/internal/models"
	"github.com/ecanay/blogfolio-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogCols = `id, user_id, title, slug, content, image, category,
 is_featured, created_at, updated_at`

type blogsRepo struct{ pool *pgxpool.Pool }

func NewBlogs(pool *pgxpool.Pool) repository.Blogs {
	return &blogsRepo{pool: pool}
}

func scanBlog(row pgx.Row) (models.Blog, error) {
	var b models.Blog
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Slug, &b.Content, &b.Image,
		&b.Category, &b.IsFeatured, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Blog{}, repository.ErrNotFound
	}
	return b, err
}

func (r *blogsRepo) collect(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *blogsRepo) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO blogs(id, user_id, title, slug, content, image, category, is_featured)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
		id, b.UserID, b.Title, b.Slug, b.Content, b.Image, b.Category, b.IsFeatured,
	)
	if err != nil {
		return models.Blog{}, mapPgErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *blogsRepo) GetByID(ctx context.Context, id string) (models.Blog, error) {
	return scanBlog(r.pool.QueryRow(ctx,
		`SELECT `+blogCols+` FROM blogs WHERE id=$1`, id))
}

func (r *blogsRepo) GetBySlug(ctx context.Context, slug string) (models.Blog, error) {
	return scanBlog(r.pool.QueryRow(ctx,
		`SELECT `+blogCols+` FROM blogs WHERE slug=$1`, slug))
}

func (r *blogsRepo) List(ctx context.Context) ([]models.Blog, error) {
	return r.collect(ctx, `SELECT `+blogCols+` FROM blogs ORDER BY created_at DESC`)
}

func (r *blogsRepo) Search(ctx context.Context, f repository.BlogFilter) ([]models.Blog, error) {
	where := []string{}
	args := []any{}
	like := func(col, v string) {
		if v == "" {
			return
		}
		args = append(args, "%"+v+"%")
		where = append(where, col+" ILIKE $"+strconv.Itoa(len(args)))
	}
	like("title", f.Title)
	like("category", f.Category)
	like("content", f.Content)
	if f.Featured != nil {
		args = append(args, *f.Featured)
		where = append(where, "is_featured=$"+strconv.Itoa(len(args)))
	}

	q := `SELECT ` + blogCols + ` FROM blogs`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at DESC`
	return r.collect(ctx, q, args...)
}

func (r *blogsRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	// id compared as text so an empty excludeID needs no uuid cast
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug=$1 AND id::text<>$2)`,
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *blogsRepo) Update(ctx context.Context, b models.Blog) (models.Blog, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE blogs SET title=$2, slug=$3, content=$4, image=$5, category=$6,
		 is_featured=$7, updated_at=now() WHERE id=$1`,
		b.ID, b.Title, b.Slug, b.Content, b.Image, b.Category, b.IsFeatured,
	)
	if err != nil {
		return models.Blog{}, mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.Blog{}, repository.ErrNotFound
	}
	return r.GetByID(ctx, b.ID)
}

func (r *blogsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
