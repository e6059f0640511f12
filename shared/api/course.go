package api

import "time"

type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Category     string    `json:"category,omitempty"`
	Level        string    `json:"level,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Price        float64   `json:"price"`
	IsFree       bool      `json:"is_free"`
	DurationHrs  float64   `json:"duration_hours,omitempty"`
	InstructorID string    `json:"instructor_id,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	Enrolled     int       `json:"enrolled,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

type CourseRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Level        string   `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Tags         []string `json:"tags,omitempty"`
	Price        float64  `json:"price" validate:"gte=0"`
	IsFree       bool     `json:"is_free"`
	DurationHrs  float64  `json:"duration_hours,omitempty" validate:"gte=0"`
	InstructorID string   `json:"instructor_id,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty" validate:"omitempty,url"`
}

type Enrollment struct {
	CourseID   string    `json:"course_id"`
	UserID     string    `json:"user_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type CourseResponse = Response[Course]
type CourseListResponse = Response[[]Course]
type EnrollmentResponse = Response[Enrollment]
