package apiclient

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/auth"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/upload"
)

const okBody = `{"success":true,"data":null}`

type recordedCall struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type recorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder) last(t *testing.T) recordedCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.calls, "no request reached the server")
	return r.calls[len(r.calls)-1]
}

// newTestClient starts a server that records every request and answers with
// status and body.
func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, recordedCall{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     raw,
		})
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	opts = append([]Option{WithTokenSource(auth.StaticToken("test-token"))}, opts...)
	return New(srv.URL, opts...), rec
}

func TestGetAllBlogsQuery(t *testing.T) {
	tests := []struct {
		name     string
		opts     BlogListOptions
		expected string
	}{
		{
			name:     "page, limit and tags",
			opts:     BlogListOptions{Page: 2, Limit: 5, Tags: []string{"a", "b"}},
			expected: "page=2&limit=5&tags=a%2Cb",
		},
		{
			name:     "zero value uses defaults only",
			opts:     BlogListOptions{},
			expected: "page=1&limit=10",
		},
		{
			name:     "every filter in documented order",
			opts:     BlogListOptions{Page: 1, Limit: 3, Tags: []string{"go"}, Category: "dev ops", Search: "a&b", Author: "ann"},
			expected: "page=1&limit=3&tags=go&category=dev%20ops&search=a%26b&author=ann",
		},
		{
			name:     "already encoded search is not encoded twice",
			opts:     BlogListOptions{Search: "data%20science"},
			expected: "page=1&limit=10&search=data%20science",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, okBody)
			_, err := c.GetAllBlogs(context.Background(), tt.opts)
			require.NoError(t, err)

			call := rec.last(t)
			assert.Equal(t, http.MethodGet, call.Method)
			assert.Equal(t, "/blogs", call.Path)
			assert.Equal(t, tt.expected, call.RawQuery)
		})
	}
}

func TestGetAllBlogsExactKeys(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, okBody)
	_, err := c.GetAllBlogs(context.Background(), BlogListOptions{Page: 2, Limit: 5, Tags: []string{"a", "b"}})
	require.NoError(t, err)

	values, err := url.ParseQuery(rec.last(t).RawQuery)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"page": {"2"}, "limit": {"5"}, "tags": {"a,b"}}, values)
}

func TestListQueries(t *testing.T) {
	yes, no := true, false
	from := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		call     func(c *Client) error
		path     string
		expected string
	}{
		{
			name: "courses defaults",
			call: func(c *Client) error {
				_, err := c.GetCourses(context.Background(), CourseListOptions{})
				return err
			},
			path:     "/courses/get",
			expected: "page=1&limit=10&sort_order=desc",
		},
		{
			name: "courses filters and false flag",
			call: func(c *Client) error {
				_, err := c.GetCourses(context.Background(), CourseListOptions{Level: "beginner", Tags: []string{"go", "web"}, SortBy: "price", SortOrder: "ASC", IsFree: &no})
				return err
			},
			path:     "/courses/get",
			expected: "page=1&limit=10&level=beginner&tags=go%2Cweb&sort_by=price&sort_order=asc&is_free=false",
		},
		{
			name: "unknown sort order falls back to desc",
			call: func(c *Client) error {
				_, err := c.GetCourses(context.Background(), CourseListOptions{SortOrder: "sideways"})
				return err
			},
			path:     "/courses/get",
			expected: "page=1&limit=10&sort_order=desc",
		},
		{
			name: "jobs",
			call: func(c *Client) error {
				_, err := c.GetJobs(context.Background(), JobListOptions{Limit: 20, Location: "New York", JobTypes: []string{"full-time", "contract"}, Remote: &yes})
				return err
			},
			path:     "/jobs",
			expected: "page=1&limit=20&location=New%20York&job_type=full-time%2Ccontract&remote=true&sort_order=desc",
		},
		{
			name: "brochures",
			call: func(c *Client) error {
				_, err := c.GetBrochures(context.Background(), BrochureListOptions{Category: "data"})
				return err
			},
			path:     "/broucher",
			expected: "page=1&limit=10&category=data",
		},
		{
			name: "materials",
			call: func(c *Client) error {
				_, err := c.GetMaterials(context.Background(), MaterialListOptions{CourseID: "c1", Types: []string{"video", "slides"}})
				return err
			},
			path:     "/materials",
			expected: "page=1&limit=10&course_id=c1&type=video%2Cslides",
		},
		{
			name: "form submissions",
			call: func(c *Client) error {
				_, err := c.GetFormSubmissions(context.Background(), SubmissionListOptions{FormType: "contact", Status: "new"})
				return err
			},
			path:     "/forms/submissions",
			expected: "page=1&limit=10&form_type=contact&status=new&sort_order=desc",
		},
		{
			name: "instructor assignments",
			call: func(c *Client) error {
				_, err := c.GetInstructorAssignments(context.Background(), AssignmentListOptions{Page: 3, CourseID: "c1", SortOrder: "asc"})
				return err
			},
			path:     "/instructor/assignments",
			expected: "page=3&limit=10&course_id=c1&sort_order=asc",
		},
		{
			name: "assignment submissions",
			call: func(c *Client) error {
				_, err := c.GetAssignmentSubmissions(context.Background(), "a1", 0, 50)
				return err
			},
			path:     "/instructor/assignments/a1/submissions",
			expected: "page=1&limit=50",
		},
		{
			name: "blog search",
			call: func(c *Client) error {
				_, err := c.SearchBlogs(context.Background(), "machine learning", 2, 0)
				return err
			},
			path:     "/blogs/search",
			expected: "q=machine%20learning&page=2&limit=10",
		},
		{
			name: "attendance dates",
			call: func(c *Client) error {
				_, err := c.GetChildAttendance(context.Background(), "kid", DateRange{From: from, To: to})
				return err
			},
			path:     "/parent/children/kid/attendance",
			expected: "from=2025-03-01&to=2025-03-31",
		},
		{
			name: "attendance without range",
			call: func(c *Client) error {
				_, err := c.GetChildAttendance(context.Background(), "kid", DateRange{})
				return err
			},
			path:     "/parent/children/kid/attendance",
			expected: "",
		},
		{
			name: "child progress for one course",
			call: func(c *Client) error {
				_, err := c.GetChildProgress(context.Background(), "kid", "c 1")
				return err
			},
			path:     "/parent/children/kid/progress",
			expected: "course_id=c%201",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, okBody)
			require.NoError(t, tt.call(c))
			call := rec.last(t)
			assert.Equal(t, tt.path, call.Path)
			assert.Equal(t, tt.expected, call.RawQuery)
		})
	}
}

func TestPathParamsAreEscaped(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, okBody)

	_, err := c.GetBlog(context.Background(), " a/b c ")
	require.NoError(t, err)
	assert.Equal(t, "/blogs/a%2Fb%20c", rec.last(t).Path)

	_, err = c.GradeSubmission(context.Background(), "a1", "s/1", api.GradeRequest{Score: 5})
	require.NoError(t, err)
	assert.Equal(t, "/instructor/assignments/a1/submissions/s%2F1", rec.last(t).Path)
}

func TestPreconditions(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		field string
		call  func(c *Client) error
	}{
		{"blog id", "blog ID", func(c *Client) error { _, err := c.GetBlog(ctx, ""); return err }},
		{"blog slug", "blog slug", func(c *Client) error { _, err := c.GetBlogBySlug(ctx, "  "); return err }},
		{"search query", "search query", func(c *Client) error { _, err := c.SearchBlogs(ctx, " ", 1, 10); return err }},
		{"update blog id", "blog ID", func(c *Client) error {
			_, err := c.UpdateBlog(ctx, "", api.BlogRequest{Title: "t", Content: "c"})
			return err
		}},
		{"blog title", "title", func(c *Client) error { _, err := c.CreateBlog(ctx, api.BlogRequest{Content: "c"}); return err }},
		{"course id", "course ID", func(c *Client) error { _, err := c.GetCourse(ctx, ""); return err }},
		{"enroll course id", "course ID", func(c *Client) error { _, err := c.EnrollCourse(ctx, ""); return err }},
		{"course materials", "course ID", func(c *Client) error { _, err := c.GetCourseMaterials(ctx, ""); return err }},
		{"brochure id", "brochure ID", func(c *Client) error { _, err := c.GetBrochure(ctx, ""); return err }},
		{"brochure lead name", "name", func(c *Client) error {
			_, err := c.RequestBrochure(ctx, "b1", api.BrochureRequest{Email: "a@b.co"})
			return err
		}},
		{"brochure file", "brochure file", func(c *Client) error {
			_, err := c.UploadBrochure(ctx, api.BrochureMeta{Title: "t"}, upload.File{})
			return err
		}},
		{"job id", "job ID", func(c *Client) error { _, err := c.GetJob(ctx, ""); return err }},
		{"application email", "email", func(c *Client) error {
			_, err := c.ApplyForJob(ctx, "j1", api.JobApplication{Name: "n"}, nil)
			return err
		}},
		{"child id", "child ID", func(c *Client) error { _, err := c.GetChildProgress(ctx, "", ""); return err }},
		{"student code", "student_code", func(c *Client) error { _, err := c.LinkChild(ctx, api.LinkChildRequest{}); return err }},
		{"contact message", "message", func(c *Client) error {
			_, err := c.SubmitContactForm(ctx, api.ContactForm{Name: "n", Email: "a@b.co"})
			return err
		}},
		{"submission id", "submission ID", func(c *Client) error { _, err := c.UpdateSubmissionStatus(ctx, "", "new"); return err }},
		{"submission status", "status", func(c *Client) error { _, err := c.UpdateSubmissionStatus(ctx, "s1", ""); return err }},
		{"material id", "material ID", func(c *Client) error { _, err := c.DeleteMaterial(ctx, ""); return err }},
		{"material file", "material file", func(c *Client) error {
			_, err := c.UploadMaterial(ctx, api.MaterialMeta{CourseID: "c", Title: "t", Type: "document"}, upload.File{Filename: "x.pdf"})
			return err
		}},
		{"assignment id", "assignment ID", func(c *Client) error { _, err := c.GetAssignment(ctx, ""); return err }},
		{"grade submission id", "submission ID", func(c *Client) error {
			_, err := c.GradeSubmission(ctx, "a1", "", api.GradeRequest{Score: 1})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, okBody)
			err := tt.call(c)

			require.Error(t, err)
			assert.ErrorIs(t, err, internal_errors.ErrRequired)
			var rf *internal_errors.RequiredFieldError
			require.ErrorAs(t, err, &rf)
			assert.Equal(t, tt.field, rf.Field)
			assert.Equal(t, tt.field+" is required", err.Error())
			assert.Equal(t, 0, rec.count(), "no request may be sent")
		})
	}
}

func TestValidationErrors(t *testing.T) {
	ctx := context.Background()
	maxScore := 10.0
	tests := []struct {
		name  string
		field string
		tag   string
		call  func(c *Client) error
	}{
		{"email format", "email", "email", func(c *Client) error {
			_, err := c.RequestBrochure(ctx, "b1", api.BrochureRequest{Name: "n", Email: "nope"})
			return err
		}},
		{"status enum", "status", "oneof", func(c *Client) error { _, err := c.UpdateSubmissionStatus(ctx, "s1", "archived"); return err }},
		{"negative score", "score", "gte", func(c *Client) error {
			_, err := c.GradeSubmission(ctx, "a1", "s1", api.GradeRequest{Score: -1})
			return err
		}},
		{"score above max", "score", "lte", func(c *Client) error {
			_, err := c.GradeSubmission(ctx, "a1", "s1", api.GradeRequest{Score: 11, MaxScore: &maxScore})
			return err
		}},
		{"inverted date range", "from", "ltefield", func(c *Client) error {
			_, err := c.GetChildAttendance(ctx, "kid", DateRange{From: time.Now(), To: time.Now().Add(-48 * time.Hour)})
			return err
		}},
		{"max score must be positive", "max_score", "gt", func(c *Client) error {
			_, err := c.CreateAssignment(ctx, api.AssignmentRequest{CourseID: "c", Title: "t"})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, okBody)
			err := tt.call(c)

			var ve *internal_errors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.tag, ve.Tag)
			assert.Equal(t, 0, rec.count())
		})
	}
}

func TestAuthHeaders(t *testing.T) {
	t.Run("bearer token and request id", func(t *testing.T) {
		c, rec := newTestClient(t, http.StatusOK, okBody)
		_, err := c.GetParentDashboard(context.Background())
		require.NoError(t, err)

		call := rec.last(t)
		assert.Equal(t, "Bearer test-token", call.Header.Get("Authorization"))
		assert.Len(t, call.Header.Get(RequestIDHeader), 36)
		assert.Equal(t, defaultUserAgent, call.Header.Get("User-Agent"))
	})

	t.Run("public calls carry no token", func(t *testing.T) {
		c, rec := newTestClient(t, http.StatusOK, okBody)
		_, err := c.GetBlog(context.Background(), "b1")
		require.NoError(t, err)
		assert.Empty(t, rec.last(t).Header.Get("Authorization"))
	})

	t.Run("no token source", func(t *testing.T) {
		c, rec := newTestClient(t, http.StatusOK, okBody)
		c.Tokens = nil
		_, err := c.DeleteBlog(context.Background(), "b1")
		assert.ErrorIs(t, err, ErrNoTokenSource)
		assert.ErrorIs(t, err, auth.ErrNoToken)
		assert.Equal(t, 0, rec.count())
	})

	t.Run("token source failure", func(t *testing.T) {
		c, rec := newTestClient(t, http.StatusOK, okBody, WithTokenSource(auth.TokenFunc(func(context.Context) (string, error) {
			return "", auth.ErrTokenExpired
		})))
		_, err := c.GetChildren(context.Background())
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
		assert.Equal(t, 0, rec.count())
	})
}

func TestErrorResponses(t *testing.T) {
	t.Run("non-2xx carries status and body", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusNotFound, "blog not found\n")
		_, err := c.GetBlog(context.Background(), "missing")

		var e *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusNotFound, e.StatusCode)
		assert.Equal(t, "failed to get blog: blog not found", e.Error())
		assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))
	})

	t.Run("empty error body uses status text", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusServiceUnavailable, "")
		_, err := c.GetJobs(context.Background(), JobListOptions{})
		assert.EqualError(t, err, "failed to get jobs: Service Unavailable")
	})

	t.Run("malformed json", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, `{"success":`)
		_, err := c.GetCourses(context.Background(), CourseListOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot decode get courses response")
	})

	t.Run("no content", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusNoContent, "")
		resp, err := c.DeleteJob(context.Background(), "j1")
		require.NoError(t, err)
		assert.False(t, resp.Success)
	})

	t.Run("backend unavailable", func(t *testing.T) {
		c := New("http://127.0.0.1:1", WithTimeout(time.Second))
		_, err := c.GetBrochures(context.Background(), BrochureListOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend unavailable")
	})

	t.Run("cancelled context", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, okBody)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.GetMaterials(ctx, MaterialListOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeEnvelope(t *testing.T) {
	body := `{"success":true,"message":"ok","data":[{"id":"c1","title":"Go","price":0,"is_free":true}],"pagination":{"page":1,"limit":10,"total":1,"total_pages":1}}`
	c, _ := newTestClient(t, http.StatusOK, body)

	resp, err := c.GetCourses(context.Background(), CourseListOptions{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "c1", resp.Data[0].ID)
	assert.True(t, resp.Data[0].IsFree)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestJSONBodies(t *testing.T) {
	c, rec := newTestClient(t, http.StatusCreated, okBody)
	status := "published"
	_, err := c.UpdateAssignment(context.Background(), "a1", api.AssignmentUpdate{Status: &status})
	require.NoError(t, err)

	call := rec.last(t)
	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "application/json", call.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"status":"published"}`, string(call.Body))

	_, err = c.UpdateSubmissionStatus(context.Background(), "s1", "spam")
	require.NoError(t, err)
	call = rec.last(t)
	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "/forms/submissions/s1", call.Path)
	assert.JSONEq(t, `{"status":"spam"}`, string(call.Body))
}

func TestUploads(t *testing.T) {
	t.Run("rejected mime type never reaches the server", func(t *testing.T) {
		c, rec := newTestClient(t, http.StatusCreated, okBody)
		_, err := c.UploadBrochure(context.Background(), api.BrochureMeta{Title: "t"}, upload.File{
			Filename: "notes.txt", ContentType: "text/plain", Content: strings.NewReader("hello"),
		})
		assert.ErrorIs(t, err, upload.ErrInvalidMimeType)
		assert.Equal(t, 0, rec.count())
	})

	t.Run("material is streamed as multipart", func(t *testing.T) {
		c, rec := newTestClient(t, http.StatusCreated, okBody)
		meta := api.MaterialMeta{CourseID: "c1", Title: "Week 1", Type: "document"}
		_, err := c.UploadMaterial(context.Background(), meta, upload.File{
			Filename: "week1.pdf", Content: strings.NewReader("%PDF-1.4 body"),
		})
		require.NoError(t, err)

		call := rec.last(t)
		assert.Equal(t, "/materials/upload", call.Path)
		assert.Equal(t, "Bearer test-token", call.Header.Get("Authorization"))

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(call.Body))
		req.Header.Set("Content-Type", call.Header.Get("Content-Type"))
		require.NoError(t, req.ParseMultipartForm(1<<20))
		assert.JSONEq(t, `{"course_id":"c1","title":"Week 1","type":"document"}`, req.FormValue("json"))

		fh := req.MultipartForm.File["file"]
		require.Len(t, fh, 1)
		assert.Equal(t, "week1.pdf", fh[0].Filename)
		assert.Equal(t, "application/pdf", fh[0].Header.Get("Content-Type"))
		f, err := fh[0].Open()
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "%PDF-1.4 body", string(content))
	})

	t.Run("application without resume has no file part", func(t *testing.T) {
		c, rec := newTestClient(t, http.StatusCreated, okBody)
		_, err := c.ApplyForJob(context.Background(), "j1", api.JobApplication{Name: "Ann", Email: "ann@example.com"}, nil)
		require.NoError(t, err)

		call := rec.last(t)
		assert.Empty(t, call.Header.Get("Authorization"))
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(call.Body))
		req.Header.Set("Content-Type", call.Header.Get("Content-Type"))
		require.NoError(t, req.ParseMultipartForm(1<<20))
		assert.Empty(t, req.MultipartForm.File)
		assert.Contains(t, req.FormValue("json"), `"email":"ann@example.com"`)
	})
}

func TestCompression(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = io.WriteString(gz, `{"success":true,"data":{"id":"j1","title":"Go Instructor"}}`)
		_ = gz.Close()
	}))
	defer srv.Close()

	c := New(srv.URL, WithCompression())
	resp, err := c.GetJob(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, "Go Instructor", resp.Data.Title)
}

func TestNewOptions(t *testing.T) {
	base := &http.Client{Timeout: time.Minute}
	c := New(" https://api.example.com/ ", WithHTTPClient(base), WithTimeout(5*time.Second), WithUserAgent("tests/1"), WithMetrics())

	assert.Equal(t, "https://api.example.com", c.BaseURL)
	assert.Equal(t, 5*time.Second, c.HttpClient.Timeout)
	assert.Equal(t, time.Minute, base.Timeout, "caller's client is not modified")
	assert.Nil(t, base.Transport)
	assert.NotNil(t, c.HttpClient.Transport)
	assert.Equal(t, "tests/1", c.UserAgent)
	assert.Nil(t, c.Tokens)
}

func TestConcurrentUse(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, okBody)
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetAllBlogs(context.Background(), BlogListOptions{Page: i + 1})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 20, rec.count())
}
