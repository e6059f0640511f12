package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/logger"
)

func (s *Server) listMaterials(w http.ResponseWriter, r *http.Request) {
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	q := r.URL.Query()
	courseID := q.Get("course_id")
	types := listParam(q.Get("type"))
	materials := s.Materials.List(func(m api.Material) bool {
		return (courseID == "" || m.CourseID == courseID) && (len(types) == 0 || hasAnyFold([]string{m.Type}, types))
	})
	data, p := paginate(materials, page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) uploadMaterial(w http.ResponseWriter, r *http.Request) {
	meta, file, err := parseMultipartRequest[api.MaterialMeta](w, r, "file")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	if file == nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	if _, ok := s.Courses.Get(meta.CourseID); !ok {
		writeErrorAndStatusCode(w, notFound("course"))
		return
	}

	id := uuid.NewString()
	stored, err := s.storeFile(r, id, file)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	material := api.Material{
		ID:          id,
		CourseID:    meta.CourseID,
		Title:       meta.Title,
		Type:        meta.Type,
		URL:         stored.URL,
		SizeBytes:   stored.SizeBytes,
		ContentType: stored.ContentType,
		CreatedAt:   s.now().UTC(),
	}
	s.Materials.Put(id, material)
	writeData(w, http.StatusCreated, material, nil)
}

func (s *Server) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	material, ok := s.Materials.Get(id)
	if !ok || !s.Materials.Delete(id) {
		writeErrorAndStatusCode(w, notFound("material"))
		return
	}
	if key, ok := fileKeyFromURL(material.URL); ok {
		if err := s.files.Delete(key); err != nil {
			logger.Log.Warn("material file not removed", "id", id, "error", err)
		}
	}
	writeData(w, http.StatusOK, api.DeleteResult{ID: id, Deleted: true}, nil)
}
