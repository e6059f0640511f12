package api

// Response is the envelope every platform endpoint answers with.
type Response[T any] struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// DeleteResult is the data payload of DELETE endpoints.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// UploadResult describes a file stored by one of the upload endpoints.
type UploadResult struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	ImageWidth  *int   `json:"image_width,omitempty"`
	ImageHeight *int   `json:"image_height,omitempty"`
}

// TokenResponse is returned by the development token endpoint of the fake backend.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type TokenRequest struct {
	Subject string `json:"subject" validate:"required"`
	Role    string `json:"role" validate:"required,oneof=admin instructor parent student"`
}
