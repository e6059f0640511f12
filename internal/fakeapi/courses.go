package fakeapi

import (
	"cmp"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/apiclient"
)

func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	q := r.URL.Query()
	isFree, err := boolParam(q.Get("is_free"), "is_free")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	courses := apiclient.FilterCourses(s.Courses.List(nil), apiclient.CourseFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Level:    q.Get("level"),
		Tags:     listParam(q.Get("tags")),
	})
	if isFree != nil {
		courses = slices.DeleteFunc(slices.Clone(courses), func(c api.Course) bool { return c.IsFree != *isFree })
	}
	sortCourses(courses, q.Get("sort_by"), q.Get("sort_order"))

	data, p := paginate(courses, page, limit)
	writeData(w, http.StatusOK, data, p)
}

// sortCourses sorts in place by title, price, rating or creation time.
func sortCourses(courses []api.Course, by, order string) {
	compare := func(a, b api.Course) int { return a.CreatedAt.Compare(b.CreatedAt) }
	switch by {
	case "title":
		compare = func(a, b api.Course) int { return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) }
	case "price":
		compare = func(a, b api.Course) int { return cmp.Compare(a.Price, b.Price) }
	case "rating":
		compare = func(a, b api.Course) int { return cmp.Compare(a.Rating, b.Rating) }
	}
	if !strings.EqualFold(order, "asc") {
		asc := compare
		compare = func(a, b api.Course) int { return asc(b, a) }
	}
	slices.SortStableFunc(courses, compare)
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := s.Courses.Get(chi.URLParam(r, "id"))
	if !ok {
		writeErrorAndStatusCode(w, notFound("course"))
		return
	}
	writeData(w, http.StatusOK, course, nil)
}

func (s *Server) getCourseBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	course, ok := s.Courses.Find(func(c api.Course) bool { return c.Slug == slug })
	if !ok {
		writeErrorAndStatusCode(w, notFound("course"))
		return
	}
	writeData(w, http.StatusOK, course, nil)
}

func (s *Server) createCourse(w http.ResponseWriter, r *http.Request) {
	var body api.CourseRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	course := courseFromRequest(api.Course{ID: uuid.NewString(), CreatedAt: s.now().UTC()}, body)
	if _, taken := s.Courses.Find(func(c api.Course) bool { return c.Slug == course.Slug }); taken {
		writeErrorAndStatusCode(w, conflict("slug already in use"))
		return
	}
	if course.InstructorID == "" {
		if claims := claimsFrom(r); claims != nil && claims.Role == RoleInstructor {
			course.InstructorID = claims.Subject
		}
	}
	s.Courses.Put(course.ID, course)
	writeData(w, http.StatusCreated, course, nil)
}

func (s *Server) updateCourse(w http.ResponseWriter, r *http.Request) {
	var body api.CourseRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	course, err := s.Courses.Update(chi.URLParam(r, "id"), func(current api.Course, exists bool) (api.Course, error) {
		if !exists {
			return current, notFound("course")
		}
		return courseFromRequest(current, body), nil
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusOK, course, nil)
}

func (s *Server) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.Courses.Delete(id) {
		writeErrorAndStatusCode(w, notFound("course"))
		return
	}
	writeData(w, http.StatusOK, api.DeleteResult{ID: id, Deleted: true}, nil)
}

func (s *Server) enroll(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")
	user := claimsFrom(r).Subject
	key := courseID + "/" + user

	enrollment, err := s.Enrollments.Update(key, func(current api.Enrollment, exists bool) (api.Enrollment, error) {
		if exists {
			return current, conflict("already enrolled")
		}
		if _, err := s.Courses.Update(courseID, func(c api.Course, ok bool) (api.Course, error) {
			if !ok {
				return c, notFound("course")
			}
			c.Enrolled++
			return c, nil
		}); err != nil {
			return current, err
		}
		return api.Enrollment{CourseID: courseID, UserID: user, EnrolledAt: s.now().UTC()}, nil
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusCreated, enrollment, nil)
}

func (s *Server) courseMaterials(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")
	if _, ok := s.Courses.Get(courseID); !ok {
		writeErrorAndStatusCode(w, notFound("course"))
		return
	}
	materials := s.Materials.List(func(m api.Material) bool { return m.CourseID == courseID })
	writeData(w, http.StatusOK, materials, nil)
}

func courseFromRequest(base api.Course, body api.CourseRequest) api.Course {
	base.Title = body.Title
	base.Slug = slugify(body.Title)
	base.Description = body.Description
	base.Category = body.Category
	base.Level = body.Level
	base.Tags = body.Tags
	base.Price = body.Price
	base.IsFree = body.IsFree || body.Price == 0
	base.DurationHrs = body.DurationHrs
	base.Thumbnail = body.Thumbnail
	if body.InstructorID != "" {
		base.InstructorID = body.InstructorID
	}
	return base
}
