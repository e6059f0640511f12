package api

import "time"

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department,omitempty"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	Remote      bool      `json:"remote"`
	Description string    `json:"description"`
	SalaryRange string    `json:"salary_range,omitempty"`
	PostedAt    time.Time `json:"posted_at,omitempty"`
	Deadline    time.Time `json:"deadline,omitempty"`
}

type JobRequest struct {
	Title       string    `json:"title" validate:"required"`
	Department  string    `json:"department,omitempty"`
	Location    string    `json:"location" validate:"required"`
	JobType     string    `json:"job_type" validate:"required,oneof=full-time part-time contract internship"`
	Remote      bool      `json:"remote"`
	Description string    `json:"description" validate:"required"`
	SalaryRange string    `json:"salary_range,omitempty"`
	Deadline    time.Time `json:"deadline,omitempty"`
}

type JobApplication struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	CoverLetter string `json:"cover_letter,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty" validate:"omitempty,url"`
}

type JobApplicationResult struct {
	ID        string         `json:"id"`
	JobID     string         `json:"job_id"`
	Applicant JobApplication `json:"applicant"`
	ResumeURL string         `json:"resume_url,omitempty"`
	Status    string         `json:"status"`
}

type JobResponse = Response[Job]
type JobListResponse = Response[[]Job]
type JobApplicationResponse = Response[JobApplicationResult]
