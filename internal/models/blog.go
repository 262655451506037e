package models

import "time"

const (
	DefaultBlogImage    = "/placeholder-blog.png"
	DefaultBlogCategory = "uncategorized"
)

type Blog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	Category   string    `json:"category"`
	IsFeatured bool      `json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
