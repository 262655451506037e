package postgres

import (
	"context"
	"encoding/json"

	"github.com/ecanay/blogfolio-backend/internal/models"
	"github.com/ecanay/blogfolio-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

func NewAuditLogs(pool *pgxpool.Pool) repository.AuditLogs {
	return &auditLogsRepo{pool: pool}
}

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	details, err := json.Marshal(l.Details)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO audit_logs(id, entity_type, entity_id, action, details)
		 VALUES($1,$2,$3,$4,$5)`,
		uuid.NewString(), l.EntityType, l.EntityID, l.Action, details,
	)
	return err
}
