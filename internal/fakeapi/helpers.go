package fakeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edu-platform/educlient/shared/api"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	maxUploadSize = 32 << 20
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func writeData[T any](w http.ResponseWriter, status int, data T, p *api.Pagination) {
	writeJSON(w, status, api.Response[T]{Success: true, Data: data, Pagination: p})
}

func writeErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("request failed", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func badRequest(msg string) error {
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

func notFound(what string) error {
	return &internal_errors.ErrorWithStatusCode{Message: what + " not found", StatusCode: http.StatusNotFound}
}

func decodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return badRequest("Body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body failed validation", "error", err)
		return badRequest("Required fields missing")
	}
	return nil
}

// listParams reads page and limit, falling back to the defaults when absent.
func listParams(r *http.Request) (page, limit int, err error) {
	q := r.URL.Query()
	if page, err = intParam(q.Get("page"), "page", defaultPage); err != nil {
		return 0, 0, err
	}
	if limit, err = intParam(q.Get("limit"), "limit", defaultLimit); err != nil {
		return 0, 0, err
	}
	return page, min(limit, maxLimit), nil
}

func intParam(raw, name string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, badRequest(fmt.Sprintf("invalid %s: must be a positive integer", name))
	}
	return v, nil
}

func boolParam(raw, name string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, badRequest(fmt.Sprintf("invalid %s: must be true or false", name))
	}
	return &v, nil
}

// listParam splits a comma-joined query value.
func listParam(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func paginate[T any](items []T, page, limit int) ([]T, *api.Pagination) {
	total := len(items)
	p := &api.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	start := (page - 1) * limit
	if start >= total {
		return []T{}, p
	}
	return items[start:min(start+limit, total)], p
}

// ordered returns items newest first unless order is "asc".
func ordered[T any](items []T, order string) []T {
	if strings.EqualFold(order, "asc") {
		return items
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// parseMultipartRequest parses a multipart form, decodes the JSON payload in
// the "json" field and returns the named file part when present.
func parseMultipartRequest[T any](w http.ResponseWriter, r *http.Request, fileField string) (body T, file *multipart.FileHeader, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err = r.ParseMultipartForm(maxUploadSize); err != nil {
		err = &internal_errors.ErrorWithStatusCode{Message: "invalid or oversized multipart form", StatusCode: http.StatusRequestEntityTooLarge}
		return
	}

	jsonPayload := r.FormValue("json")
	if jsonPayload == "" {
		err = badRequest("missing JSON payload in multipart form")
		return
	}
	if err = decodeValidate(strings.NewReader(jsonPayload), &body); err != nil {
		return
	}

	if files := r.MultipartForm.File[fileField]; len(files) > 0 {
		file = files[0]
	}
	return
}

// storeFile saves an accepted upload and describes it. Image dimensions
// sent by the client as form fields are echoed back.
func (s *Server) storeFile(r *http.Request, id string, fh *multipart.FileHeader) (api.UploadResult, error) {
	f, err := fh.Open()
	if err != nil {
		return api.UploadResult{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	key, err := s.files.Save(id, fh.Filename, f)
	if err != nil {
		return api.UploadResult{}, err
	}
	res := api.UploadResult{
		ID:          id,
		URL:         fileURL(key),
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		SizeBytes:   fh.Size,
	}
	if w, err := strconv.Atoi(r.FormValue("image_width")); err == nil {
		res.ImageWidth = &w
	}
	if h, err := strconv.Atoi(r.FormValue("image_height")); err == nil {
		res.ImageHeight = &h
	}
	return res, nil
}
