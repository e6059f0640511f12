package api

import "time"

type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Published   bool      `json:"published"`
	PublishedAt time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type BlogRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Slug       string   `json:"slug,omitempty"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	Published  bool     `json:"published"`
}

type BlogResponse = Response[Blog]
type BlogListResponse = Response[[]Blog]
