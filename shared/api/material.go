package api

import "time"

type Material struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	SizeBytes   int64     `json:"size_bytes,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type MaterialMeta struct {
	CourseID    string `json:"course_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=document video image slides other"`
	Description string `json:"description,omitempty"`
}

type MaterialResponse = Response[Material]
type MaterialListResponse = Response[[]Material]
