package models

import "time"

const (
	AuditBlogCreate = "blog.create"
	AuditBlogUpdate = "blog.update"
	AuditBlogDelete = "blog.delete"
)

// AuditLog records an admin mutation on a blog post. Rows are written
// off the request path; a lost row is not an error the caller sees.
type AuditLog struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   *string        `json:"entity_id"`
	Action     string         `json:"action"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}
