package fakeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-platform/educlient/shared/api"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	s := New(Options{JwtSecret: testSecret, TokenTTL: time.Hour, Seed: true})
	return s, s.Handler()
}

func token(t *testing.T, s *Server, subject, role string) string {
	t.Helper()
	tok, err := s.Token(subject, role)
	require.NoError(t, err)
	return tok
}

func serve(t *testing.T, h http.Handler, method, target, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) api.Response[T] {
	t.Helper()
	var out api.Response[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestListBlogs(t *testing.T) {
	_, h := newTestServer(t)

	t.Run("defaults and newest first", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/blogs", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[[]api.Blog](t, rr)
		assert.True(t, resp.Success)
		require.Len(t, resp.Data, 3)
		assert.Equal(t, "blog-3", resp.Data[0].ID)
		assert.Equal(t, &api.Pagination{Page: 1, Limit: 10, Total: 3, TotalPages: 1}, resp.Pagination)
	})

	t.Run("comma joined tags match any", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/blogs?page=1&limit=5&tags=go%2Cdata", "", nil)
		resp := decode[[]api.Blog](t, rr)
		ids := []string{}
		for _, b := range resp.Data {
			ids = append(ids, b.ID)
		}
		assert.ElementsMatch(t, []string{"blog-1", "blog-3"}, ids)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/blogs?page=3&limit=2", "", nil)
		resp := decode[[]api.Blog](t, rr)
		assert.Empty(t, resp.Data)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
	})

	t.Run("invalid page", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/blogs?page=abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSearchBlogs(t *testing.T) {
	_, h := newTestServer(t)

	rr := serve(t, h, http.MethodGet, "/blogs/search?q=python", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[[]api.Blog](t, rr)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "blog-3", resp.Data[0].ID)

	rr = serve(t, h, http.MethodGet, "/blogs/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBlogWriteAuth(t *testing.T) {
	s, h := newTestServer(t)
	body := api.BlogRequest{Title: "New Post!", Content: "Some **bold** text"}

	tests := []struct {
		name     string
		token    string
		expected int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"wrong role", token(t, s, "kid", RoleStudent), http.StatusForbidden},
		{"instructor", token(t, s, SeedInstructor, RoleInstructor), http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, h, http.MethodPost, "/blogs", tt.token, body)
			assert.Equal(t, tt.expected, rr.Code, rr.Body.String())
		})
	}

	blog, ok := s.Blogs.Find(func(b api.Blog) bool { return b.Slug == "new-post" })
	require.True(t, ok)
	assert.Equal(t, SeedInstructor, blog.Author)
	assert.Equal(t, "Some bold text", blog.Excerpt)

	rr := serve(t, h, http.MethodPost, "/blogs", token(t, s, SeedAdmin, RoleAdmin), body)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestBlogUpdateAndDelete(t *testing.T) {
	s, h := newTestServer(t)
	tok := token(t, s, SeedAdmin, RoleAdmin)

	rr := serve(t, h, http.MethodPut, "/blogs/blog-1", tok, api.BlogRequest{Title: "Renamed", Content: "x", Slug: "renamed"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "renamed", decode[api.Blog](t, rr).Data.Slug)

	rr = serve(t, h, http.MethodGet, "/blogs/slug/renamed", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, h, http.MethodDelete, "/blogs/blog-1", tok, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, api.DeleteResult{ID: "blog-1", Deleted: true}, decode[api.DeleteResult](t, rr).Data)

	rr = serve(t, h, http.MethodGet, "/blogs/blog-1", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListCourses(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"default newest first", "", []string{"course-ml", "course-ds", SeedCourseID}},
		{"free only", "?is_free=true", []string{SeedCourseID}},
		{"paid only", "?is_free=false&sort_by=price&sort_order=asc", []string{"course-ds", "course-ml"}},
		{"category and level", "?category=DATA&level=advanced", []string{"course-ml"}},
		{"tags", "?tags=go%2Cml&sort_by=title&sort_order=asc", []string{"course-ml", SeedCourseID}},
		{"search", "?search=pandas", []string{"course-ds"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, h, http.MethodGet, "/courses/get"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, rr.Code)
			var ids []string
			for _, c := range decode[[]api.Course](t, rr).Data {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	rr := serve(t, h, http.MethodGet, "/courses/get?is_free=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEnroll(t *testing.T) {
	s, h := newTestServer(t)
	tok := token(t, s, "student-9", RoleStudent)

	rr := serve(t, h, http.MethodPost, "/courses/"+SeedCourseID+"/enroll", tok, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "student-9", decode[api.Enrollment](t, rr).Data.UserID)

	rr = serve(t, h, http.MethodPost, "/courses/"+SeedCourseID+"/enroll", tok, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = serve(t, h, http.MethodPost, "/courses/nope/enroll", tok, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	course, _ := s.Courses.Get(SeedCourseID)
	assert.Equal(t, 1, course.Enrolled)
}

func TestParentRoutes(t *testing.T) {
	s, h := newTestServer(t)
	tok := token(t, s, SeedParent, RoleParent)

	t.Run("dashboard", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/parent/dashboard", tok, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		dash := decode[api.ParentDashboard](t, rr).Data
		assert.Equal(t, SeedParent, dash.ParentID)
		require.Len(t, dash.Children, 1)
		require.Len(t, dash.UpcomingDeadlines, 1)
		assert.Equal(t, "assignment-1", dash.UpcomingDeadlines[0].ID)
	})

	t.Run("other roles are rejected", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/parent/dashboard", token(t, s, SeedAdmin, RoleAdmin), nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("attendance range", func(t *testing.T) {
		today := s.now().UTC()
		from := today.Add(-48 * time.Hour).Format(dateLayout)
		rr := serve(t, h, http.MethodGet, "/parent/children/"+SeedStudentID+"/attendance?from="+from+"&to="+today.Format(dateLayout), tok, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]api.AttendanceRecord](t, rr).Data, 3)

		rr = serve(t, h, http.MethodGet, "/parent/children/"+SeedStudentID+"/attendance?from=yesterday", tok, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unlinked child is hidden", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/parent/children/child-2/progress", tok, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("link child by student code", func(t *testing.T) {
		rr := serve(t, h, http.MethodPost, "/parent/children", tok, api.LinkChildRequest{StudentCode: "STU-1002"})
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = serve(t, h, http.MethodGet, "/parent/children", tok, nil)
		assert.Len(t, decode[[]api.Child](t, rr).Data, 2)

		rr = serve(t, h, http.MethodPost, "/parent/children", tok, api.LinkChildRequest{StudentCode: "STU-0000"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestForms(t *testing.T) {
	s, h := newTestServer(t)

	rr := serve(t, h, http.MethodPost, "/forms/contact", "", api.ContactForm{Name: "Ann", Email: "ann@example.com", Message: "Hi"})
	require.Equal(t, http.StatusCreated, rr.Code)
	sub := decode[api.FormSubmission](t, rr).Data
	assert.Equal(t, "contact", sub.FormType)
	assert.Equal(t, "new", sub.Status)
	assert.NotContains(t, sub.Fields, "phone")

	rr = serve(t, h, http.MethodPost, "/forms/enquiry", "", api.EnquiryForm{Name: "Ann", Email: "not-an-email", Phone: "1"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	admin := token(t, s, SeedAdmin, RoleAdmin)
	rr = serve(t, h, http.MethodPatch, "/forms/submissions/"+sub.ID, admin, api.SubmissionStatusRequest{Status: "resolved"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, h, http.MethodGet, "/forms/submissions?status=resolved", admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]api.FormSubmission](t, rr).Data, 1)
}

func TestGradeSubmission(t *testing.T) {
	s, h := newTestServer(t)
	tok := token(t, s, SeedInstructor, RoleInstructor)
	target := "/instructor/assignments/assignment-1/submissions/submission-1"

	rr := serve(t, h, http.MethodPut, target, tok, api.GradeRequest{Score: 101})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(t, h, http.MethodPut, target, tok, api.GradeRequest{Score: 90, Feedback: "good"})
	require.Equal(t, http.StatusOK, rr.Code)
	graded := decode[api.AssignmentSubmission](t, rr).Data
	require.NotNil(t, graded.Score)
	assert.Equal(t, 90.0, *graded.Score)

	other := token(t, s, "instructor-2", RoleInstructor)
	rr = serve(t, h, http.MethodGet, "/instructor/assignments/assignment-1", other, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code, "instructors only see their own assignments")
}

func TestUploadMaterial(t *testing.T) {
	s, h := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("json", `{"course_id":"course-go","title":"Notes","type":"document"}`))
	part, err := mw.CreateFormFile("file", "notes.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/materials/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token(t, s, SeedInstructor, RoleInstructor))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	m := decode[api.Material](t, rr).Data
	assert.Equal(t, "Notes", m.Title)
	assert.True(t, strings.HasSuffix(m.URL, "/notes.pdf"))
	assert.Equal(t, int64(len("%PDF-1.4 test")), m.SizeBytes)
	assert.Equal(t, 3, s.Materials.Len())

	rr = serve(t, h, http.MethodGet, m.URL, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "%PDF-1.4 test", rr.Body.String())
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))

	rr = serve(t, h, http.MethodDelete, "/materials/"+m.ID, token(t, s, SeedInstructor, RoleInstructor), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = serve(t, h, http.MethodGet, m.URL, "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code, "file goes away with its material")
}

func TestIssueToken(t *testing.T) {
	s, h := newTestServer(t)

	rr := serve(t, h, http.MethodPost, "/auth/token", "", api.TokenRequest{Subject: "u1", Role: RoleParent})
	require.Equal(t, http.StatusCreated, rr.Code)
	tok := decode[api.TokenResponse](t, rr).Data
	assert.Greater(t, tok.ExpiresAt, time.Now().Unix())

	claims, err := s.jwt.DecodeToken(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)

	rr = serve(t, h, http.MethodPost, "/auth/token", "", api.TokenRequest{Subject: "u1", Role: "root"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPublicRateLimit(t *testing.T) {
	s := New(Options{JwtSecret: testSecret, TokenTTL: time.Hour, PublicRate: 0.001})
	h := s.Handler()
	form := api.ContactForm{Name: "Ann", Email: "ann@example.com", Message: "Hi"}

	codes := []int{}
	for range 6 {
		codes = append(codes, serve(t, h, http.MethodPost, "/forms/contact", "", form).Code)
	}
	assert.Equal(t, http.StatusCreated, codes[0])
	assert.Equal(t, http.StatusTooManyRequests, codes[5])
}

func TestMiddleware(t *testing.T) {
	_, h := newTestServer(t)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/blogs", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(requestIDHeader, "req-42")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, "req-42", rr.Header().Get(requestIDHeader))
	})

	t.Run("security headers", func(t *testing.T) {
		rr := serve(t, h, http.MethodGet, "/health", "", nil)
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		serve(t, h, http.MethodGet, "/blogs/blog-2", "", nil)
		rr := serve(t, h, http.MethodGet, "/metrics", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `path="/blogs/{id}"`)
	})
}
