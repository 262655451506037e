package postgres

import (
	repo "github.com/ecanay/blogfolio-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Blogs     repo.Blogs
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Blogs:     &blogsRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
