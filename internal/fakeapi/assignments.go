package fakeapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edu-platform/educlient/shared/api"
)

// ownAssignment reports whether the caller may manage a. Admins manage all.
func ownAssignment(r *http.Request, a api.Assignment) bool {
	claims := claimsFrom(r)
	return claims.Role == RoleAdmin || a.InstructorID == claims.Subject
}

func (s *Server) assignment(r *http.Request) (api.Assignment, error) {
	a, ok := s.Assignments.Get(chi.URLParam(r, "id"))
	if !ok || !ownAssignment(r, a) {
		return api.Assignment{}, notFound("assignment")
	}
	return a, nil
}

func (s *Server) listAssignments(w http.ResponseWriter, r *http.Request) {
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	q := r.URL.Query()
	courseID := q.Get("course_id")
	status := q.Get("status")
	assignments := s.Assignments.List(func(a api.Assignment) bool {
		return ownAssignment(r, a) &&
			(courseID == "" || a.CourseID == courseID) &&
			(status == "" || a.Status == status)
	})
	data, p := paginate(ordered(assignments, q.Get("sort_order")), page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) getAssignment(w http.ResponseWriter, r *http.Request) {
	a, err := s.assignment(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusOK, a, nil)
}

func (s *Server) createAssignment(w http.ResponseWriter, r *http.Request) {
	var body api.AssignmentRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	a := api.Assignment{
		ID:           uuid.NewString(),
		CourseID:     body.CourseID,
		InstructorID: claimsFrom(r).Subject,
		Title:        body.Title,
		Description:  body.Description,
		Status:       "draft",
		MaxScore:     body.MaxScore,
		DueDate:      body.DueDate,
	}
	s.Assignments.Put(a.ID, a)
	writeData(w, http.StatusCreated, a, nil)
}

func (s *Server) updateAssignment(w http.ResponseWriter, r *http.Request) {
	var body api.AssignmentUpdate
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	a, err := s.Assignments.Update(chi.URLParam(r, "id"), func(current api.Assignment, exists bool) (api.Assignment, error) {
		if !exists || !ownAssignment(r, current) {
			return current, notFound("assignment")
		}
		if body.Title != nil {
			current.Title = *body.Title
		}
		if body.Description != nil {
			current.Description = *body.Description
		}
		if body.Status != nil {
			current.Status = *body.Status
		}
		if body.MaxScore != nil {
			current.MaxScore = *body.MaxScore
		}
		if body.DueDate != nil {
			current.DueDate = *body.DueDate
		}
		return current, nil
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusOK, a, nil)
}

func (s *Server) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	a, err := s.assignment(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	s.Assignments.Delete(a.ID)
	writeData(w, http.StatusOK, api.DeleteResult{ID: a.ID, Deleted: true}, nil)
}

func (s *Server) listAssignmentSubmissions(w http.ResponseWriter, r *http.Request) {
	a, err := s.assignment(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	work := s.Work.List(func(sub api.AssignmentSubmission) bool { return sub.AssignmentID == a.ID })
	data, p := paginate(work, page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) gradeSubmission(w http.ResponseWriter, r *http.Request) {
	var body api.GradeRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	a, err := s.assignment(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	if body.Score > a.MaxScore {
		writeErrorAndStatusCode(w, badRequest(fmt.Sprintf("score exceeds max_score %g", a.MaxScore)))
		return
	}

	sub, err := s.Work.Update(chi.URLParam(r, "submissionId"), func(current api.AssignmentSubmission, exists bool) (api.AssignmentSubmission, error) {
		if !exists || current.AssignmentID != a.ID {
			return current, notFound("submission")
		}
		score := body.Score
		current.Score = &score
		current.Feedback = body.Feedback
		return current, nil
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusOK, sub, nil)
}
