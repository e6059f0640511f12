package api

import "time"

type Assignment struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"course_id"`
	InstructorID string    `json:"instructor_id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	MaxScore     float64   `json:"max_score"`
	DueDate      time.Time `json:"due_date,omitempty"`
}

type AssignmentRequest struct {
	CourseID    string    `json:"course_id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	MaxScore    float64   `json:"max_score" validate:"gt=0"`
	DueDate     time.Time `json:"due_date,omitempty"`
}

// AssignmentUpdate is sent with PATCH, so only non-nil fields change.
type AssignmentUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=draft published closed"`
	MaxScore    *float64   `json:"max_score,omitempty" validate:"omitempty,gt=0"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type AssignmentSubmission struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignment_id"`
	StudentID    string    `json:"student_id"`
	FileURL      string    `json:"file_url,omitempty"`
	Score        *float64  `json:"score,omitempty"`
	Feedback     string    `json:"feedback,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at,omitempty"`
}

type GradeRequest struct {
	Score    float64  `json:"score" validate:"gte=0"`
	Feedback string   `json:"feedback,omitempty"`
	MaxScore *float64 `json:"max_score,omitempty" validate:"omitempty,gt=0"`
}

type AssignmentResponse = Response[Assignment]
type AssignmentListResponse = Response[[]Assignment]
type AssignmentSubmissionResponse = Response[AssignmentSubmission]
type AssignmentSubmissionListResponse = Response[[]AssignmentSubmission]
