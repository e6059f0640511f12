package api

import "time"

type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" validate:"required"`
}

type EnquiryForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	CourseID string `json:"course_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// FormSubmission is what staff see for both contact and enquiry forms.
type FormSubmission struct {
	ID        string            `json:"id"`
	FormType  string            `json:"form_type"`
	Status    string            `json:"status"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}

type SubmissionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress resolved spam"`
}

type FormSubmissionResponse = Response[FormSubmission]
type FormSubmissionListResponse = Response[[]FormSubmission]
