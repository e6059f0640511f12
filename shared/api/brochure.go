package api

import "time"

type Brochure struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	CourseID    string    `json:"course_id,omitempty"`
	FileURL     string    `json:"file_url"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// BrochureRequest is the lead form a visitor fills in to receive a brochure.
type BrochureRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

type BrochureMeta struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	CourseID    string `json:"course_id,omitempty"`
}

type BrochureLead struct {
	ID         string `json:"id"`
	BrochureID string `json:"brochure_id"`
	FileURL    string `json:"file_url,omitempty"`
}

type BrochureResponse = Response[Brochure]
type BrochureListResponse = Response[[]Brochure]
type BrochureLeadResponse = Response[BrochureLead]
