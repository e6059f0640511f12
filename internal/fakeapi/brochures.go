package fakeapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/logger"
)

func (s *Server) listBrochures(w http.ResponseWriter, r *http.Request) {
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	category := r.URL.Query().Get("category")
	brochures := s.Brochures.List(func(b api.Brochure) bool {
		return category == "" || strings.EqualFold(b.Category, category)
	})
	data, p := paginate(brochures, page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) getBrochure(w http.ResponseWriter, r *http.Request) {
	brochure, ok := s.Brochures.Get(chi.URLParam(r, "id"))
	if !ok {
		writeErrorAndStatusCode(w, notFound("brochure"))
		return
	}
	writeData(w, http.StatusOK, brochure, nil)
}

func (s *Server) requestBrochure(w http.ResponseWriter, r *http.Request) {
	var body api.BrochureRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	brochure, ok := s.Brochures.Get(chi.URLParam(r, "id"))
	if !ok {
		writeErrorAndStatusCode(w, notFound("brochure"))
		return
	}

	lead := api.BrochureLead{ID: uuid.NewString(), BrochureID: brochure.ID, FileURL: brochure.FileURL}
	s.Leads.Put(lead.ID, lead)
	logger.Log.Info("brochure requested", "brochure_id", brochure.ID, "lead_id", lead.ID)
	writeData(w, http.StatusCreated, lead, nil)
}

func (s *Server) uploadBrochure(w http.ResponseWriter, r *http.Request) {
	meta, file, err := parseMultipartRequest[api.BrochureMeta](w, r, "file")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	if file == nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	stored, err := s.storeFile(r, id, file)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	brochure := api.Brochure{
		ID:          id,
		Title:       meta.Title,
		Description: meta.Description,
		Category:    meta.Category,
		CourseID:    meta.CourseID,
		FileURL:     stored.URL,
		CreatedAt:   s.now().UTC(),
	}
	if strings.HasPrefix(stored.ContentType, "image/") {
		brochure.Thumbnail = stored.URL
	}
	s.Brochures.Put(id, brochure)
	writeData(w, http.StatusCreated, brochure, nil)
}
