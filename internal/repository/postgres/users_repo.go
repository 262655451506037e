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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userCols = `id, username, email, password_hash, gender, role, profile_pic,
 bio, github, linkedin, twitter, portfolio, last_login, created_at, updated_at`

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Gender,
		&u.Role, &u.ProfilePic, &u.Bio, &u.Github, &u.Linkedin, &u.Twitter,
		&u.Portfolio, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, username, email, password_hash, gender, role, profile_pic)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		id, u.Username, u.Email, u.PasswordHash, u.Gender, u.Role, u.ProfilePic,
	)
	if err != nil {
		return models.User{}, mapPgErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id string, p models.ProfilePatch) (models.User, error) {
	set := make([]string, 0, 6)
	args := []any{id}
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, strings.TrimSpace(*v))
		set = append(set, col+"=$"+strconv.Itoa(len(args)))
	}
	add("bio", p.Bio)
	add("github", p.Github)
	add("linkedin", p.Linkedin)
	add("twitter", p.Twitter)
	add("portfolio", p.Portfolio)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at=now()")

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET `+strings.Join(set, ", ")+` WHERE id=$1`, args...)
	if err != nil {
		return models.User{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.User{}, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login=now() WHERE id=$1`, id)
	return err
}

// mapPgErr translates unique violations into the repository sentinel.
func mapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
