package fakeapi

import (
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edu-platform/educlient/shared/api"
)

const dateLayout = "2006-01-02"

func (s *Server) children(parentID string) []api.Child {
	ids, _ := s.Links.Get(parentID)
	out := make([]api.Child, 0, len(ids))
	for _, id := range ids {
		if child, ok := s.Students.Get(id); ok {
			out = append(out, child)
		}
	}
	return out
}

// linkedChild resolves the {id} path param to a child of the calling parent.
func (s *Server) linkedChild(r *http.Request) (string, error) {
	childID := chi.URLParam(r, "id")
	ids, _ := s.Links.Get(claimsFrom(r).Subject)
	if !slices.Contains(ids, childID) {
		return "", notFound("child")
	}
	return childID, nil
}

func (s *Server) parentDashboard(w http.ResponseWriter, r *http.Request) {
	parentID := claimsFrom(r).Subject
	children := s.children(parentID)

	childIDs := make([]string, 0, len(children))
	for _, c := range children {
		childIDs = append(childIDs, c.ID)
	}
	progress := s.Progress.List(func(p api.ChildProgress) bool { return slices.Contains(childIDs, p.ChildID) })

	courseIDs := make([]string, 0, len(progress))
	for _, p := range progress {
		courseIDs = append(courseIDs, p.CourseID)
	}
	now := s.now()
	deadlines := s.Assignments.List(func(a api.Assignment) bool {
		return a.Status == "published" && a.DueDate.After(now) && slices.Contains(courseIDs, a.CourseID)
	})
	slices.SortFunc(deadlines, func(a, b api.Assignment) int { return a.DueDate.Compare(b.DueDate) })

	writeData(w, http.StatusOK, api.ParentDashboard{
		ParentID:          parentID,
		Children:          children,
		UpcomingDeadlines: deadlines,
		RecentGrades:      progress,
	}, nil)
}

func (s *Server) listChildren(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.children(claimsFrom(r).Subject), nil)
}

func (s *Server) linkChild(w http.ResponseWriter, r *http.Request) {
	var body api.LinkChildRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	child, ok := s.Students.Find(func(c api.Child) bool { return c.StudentCode == body.StudentCode })
	if !ok {
		writeErrorAndStatusCode(w, notFound("student"))
		return
	}

	_, _ = s.Links.Update(claimsFrom(r).Subject, func(ids []string, _ bool) ([]string, error) {
		if slices.Contains(ids, child.ID) {
			return ids, nil
		}
		return append(slices.Clone(ids), child.ID), nil
	})
	writeData(w, http.StatusCreated, child, nil)
}

func (s *Server) childProgress(w http.ResponseWriter, r *http.Request) {
	childID, err := s.linkedChild(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	courseID := r.URL.Query().Get("course_id")
	progress := s.Progress.List(func(p api.ChildProgress) bool {
		return p.ChildID == childID && (courseID == "" || p.CourseID == courseID)
	})
	writeData(w, http.StatusOK, progress, nil)
}

func (s *Server) childAttendance(w http.ResponseWriter, r *http.Request) {
	childID, err := s.linkedChild(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	q := r.URL.Query()
	from, err := dateParam(q.Get("from"), "from")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	to, err := dateParam(q.Get("to"), "to")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	records := s.Attendance.List(func(a api.AttendanceRecord) bool {
		day := a.Date.UTC().Truncate(24 * time.Hour)
		return a.ChildID == childID &&
			(from.IsZero() || !day.Before(from)) &&
			(to.IsZero() || !day.After(to))
	})
	writeData(w, http.StatusOK, records, nil)
}

func dateParam(raw, name string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, badRequest("invalid " + name + ": expected YYYY-MM-DD")
	}
	return t, nil
}
