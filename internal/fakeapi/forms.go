package fakeapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/logger"
)

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	var body api.ContactForm
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	s.storeSubmission(w, "contact", map[string]string{
		"name":    body.Name,
		"email":   body.Email,
		"phone":   body.Phone,
		"subject": body.Subject,
		"message": body.Message,
	})
}

func (s *Server) submitEnquiry(w http.ResponseWriter, r *http.Request) {
	var body api.EnquiryForm
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	s.storeSubmission(w, "enquiry", map[string]string{
		"name":      body.Name,
		"email":     body.Email,
		"phone":     body.Phone,
		"course_id": body.CourseID,
		"message":   body.Message,
	})
}

func (s *Server) storeSubmission(w http.ResponseWriter, formType string, fields map[string]string) {
	for k, v := range fields {
		if strings.TrimSpace(v) == "" {
			delete(fields, k)
		}
	}
	sub := api.FormSubmission{
		ID:        uuid.NewString(),
		FormType:  formType,
		Status:    "new",
		Fields:    fields,
		CreatedAt: s.now().UTC(),
	}
	s.Submissions.Put(sub.ID, sub)
	logger.Log.Info("form submitted", "form_type", formType, "id", sub.ID)
	writeData(w, http.StatusCreated, sub, nil)
}

func (s *Server) listSubmissions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	q := r.URL.Query()
	formType := q.Get("form_type")
	status := q.Get("status")
	subs := s.Submissions.List(func(f api.FormSubmission) bool {
		return (formType == "" || f.FormType == formType) && (status == "" || f.Status == status)
	})
	data, p := paginate(ordered(subs, q.Get("sort_order")), page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) updateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	var body api.SubmissionStatusRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	sub, err := s.Submissions.Update(chi.URLParam(r, "id"), func(current api.FormSubmission, exists bool) (api.FormSubmission, error) {
		if !exists {
			return current, notFound("submission")
		}
		current.Status = body.Status
		return current, nil
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusOK, sub, nil)
}
