// Package fakeapi is an in-memory stand-in for the education platform API.
// It serves every route the client targets and is meant for tests and local
// development; nothing is persisted.
package fakeapi

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/auth"
	"github.com/edu-platform/educlient/shared/content"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/logger"
	"github.com/edu-platform/educlient/shared/metrics"
)

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleParent     = "parent"
	RoleStudent    = "student"
)

var staff = []string{RoleAdmin, RoleInstructor}

type Options struct {
	JwtSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string

	// Seed fills the collections with sample data.
	Seed bool

	// FilesDir keeps uploads on disk. Empty keeps them in memory.
	FilesDir string

	// PublicRate limits anonymous form posts and token requests per client IP,
	// in requests per second. Zero disables the limit.
	PublicRate float64
}

type Server struct {
	jwt      auth.JwtService
	renderer *content.Renderer
	limiter  *rateLimiter
	files    fileStore
	origins  []string
	now      func() time.Time

	Blogs        *Collection[api.Blog]
	Courses      *Collection[api.Course]
	Enrollments  *Collection[api.Enrollment]
	Brochures    *Collection[api.Brochure]
	Leads        *Collection[api.BrochureLead]
	Jobs         *Collection[api.Job]
	Applications *Collection[api.JobApplicationResult]
	Submissions  *Collection[api.FormSubmission]
	Materials    *Collection[api.Material]
	Assignments  *Collection[api.Assignment]
	Work         *Collection[api.AssignmentSubmission]
	// Students is keyed by child id; parents link them by student code.
	Students   *Collection[api.Child]
	Links      *Collection[[]string]
	Progress   *Collection[api.ChildProgress]
	Attendance *Collection[api.AttendanceRecord]
}

func New(opts Options) *Server {
	s := &Server{
		jwt:      auth.NewJwt(opts.JwtSecret, opts.TokenTTL),
		renderer: content.New(),
		origins:  opts.AllowedOrigins,
		now:      time.Now,

		Blogs:        NewCollection[api.Blog](),
		Courses:      NewCollection[api.Course](),
		Enrollments:  NewCollection[api.Enrollment](),
		Brochures:    NewCollection[api.Brochure](),
		Leads:        NewCollection[api.BrochureLead](),
		Jobs:         NewCollection[api.Job](),
		Applications: NewCollection[api.JobApplicationResult](),
		Submissions:  NewCollection[api.FormSubmission](),
		Materials:    NewCollection[api.Material](),
		Assignments:  NewCollection[api.Assignment](),
		Work:         NewCollection[api.AssignmentSubmission](),
		Students:     NewCollection[api.Child](),
		Links:        NewCollection[[]string](),
		Progress:     NewCollection[api.ChildProgress](),
		Attendance:   NewCollection[api.AttendanceRecord](),
	}
	s.files = newMemFiles()
	if opts.FilesDir != "" {
		disk, err := newDiskFiles(opts.FilesDir)
		if err != nil {
			logger.Log.Error("falling back to in-memory uploads", "error", err)
		} else {
			s.files = disk
		}
	}
	if opts.PublicRate > 0 {
		s.limiter = newRateLimiter(opts.PublicRate, 5, time.Hour)
	}
	if len(s.origins) == 0 {
		s.origins = []string{"*"}
	}
	if opts.Seed {
		s.seed()
	}
	return s
}

// Token issues a token the way POST /auth/token does. Tests use it to
// authenticate without a round trip.
func (s *Server) Token(subject, role string) (string, error) {
	token, _, err := s.jwt.NewToken(subject, role)
	return token, err
}

// Handler returns the routed, instrumented and gzip-aware HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	r.Use(echoRequestID)
	r.Use(securityHeaders)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, "ok", nil)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/files/{id}/{name}", s.serveFile)
	r.With(s.rateLimit).Post("/auth/token", s.issueToken)

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", s.listBlogs)
		r.Get("/search", s.searchBlogs)
		r.Get("/slug/{slug}", s.getBlogBySlug)
		r.Get("/{id}", s.getBlog)
		r.Group(func(r chi.Router) {
			r.Use(s.needAuth(staff...))
			r.Post("/", s.createBlog)
			r.Put("/{id}", s.updateBlog)
			r.Delete("/{id}", s.deleteBlog)
		})
	})

	r.Route("/courses", func(r chi.Router) {
		r.Get("/get", s.listCourses)
		r.Get("/get/{id}", s.getCourse)
		r.Get("/slug/{slug}", s.getCourseBySlug)
		r.Get("/{id}/materials", s.courseMaterials)
		r.With(s.needAuth()).Post("/{id}/enroll", s.enroll)
		r.Group(func(r chi.Router) {
			r.Use(s.needAuth(staff...))
			r.Post("/", s.createCourse)
			r.Put("/{id}", s.updateCourse)
			r.Delete("/{id}", s.deleteCourse)
		})
	})

	r.Route("/broucher", func(r chi.Router) {
		r.Get("/", s.listBrochures)
		r.Get("/{id}", s.getBrochure)
		r.With(s.rateLimit).Post("/{id}/request", s.requestBrochure)
		r.With(s.needAuth(staff...)).Post("/upload", s.uploadBrochure)
	})

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", s.listJobs)
		r.Get("/{id}", s.getJob)
		r.With(s.rateLimit).Post("/{id}/apply", s.applyForJob)
		r.Group(func(r chi.Router) {
			r.Use(s.needAuth(RoleAdmin))
			r.Post("/", s.createJob)
			r.Put("/{id}", s.updateJob)
			r.Delete("/{id}", s.deleteJob)
		})
	})

	r.Route("/parent", func(r chi.Router) {
		r.Use(s.needAuth(RoleParent))
		r.Get("/dashboard", s.parentDashboard)
		r.Get("/children", s.listChildren)
		r.Post("/children", s.linkChild)
		r.Get("/children/{id}/progress", s.childProgress)
		r.Get("/children/{id}/attendance", s.childAttendance)
	})

	r.Route("/forms", func(r chi.Router) {
		r.With(s.rateLimit).Post("/contact", s.submitContact)
		r.With(s.rateLimit).Post("/enquiry", s.submitEnquiry)
		r.Group(func(r chi.Router) {
			r.Use(s.needAuth(RoleAdmin))
			r.Get("/submissions", s.listSubmissions)
			r.Patch("/submissions/{id}", s.updateSubmissionStatus)
		})
	})

	r.Route("/materials", func(r chi.Router) {
		r.Get("/", s.listMaterials)
		r.Group(func(r chi.Router) {
			r.Use(s.needAuth(staff...))
			r.Post("/upload", s.uploadMaterial)
			r.Delete("/{id}", s.deleteMaterial)
		})
	})

	r.Route("/instructor/assignments", func(r chi.Router) {
		r.Use(s.needAuth(staff...))
		r.Get("/", s.listAssignments)
		r.Post("/", s.createAssignment)
		r.Get("/{id}", s.getAssignment)
		r.Patch("/{id}", s.updateAssignment)
		r.Delete("/{id}", s.deleteAssignment)
		r.Get("/{id}/submissions", s.listAssignmentSubmissions)
		r.Put("/{id}/submissions/{submissionId}", s.gradeSubmission)
	})

	return gzhttp.GzipHandler(r)
}

const requestIDHeader = "X-Request-ID"

// echoRequestID returns the caller's request id so responses can be matched
// to client logs.
func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(requestIDHeader); id != "" {
			w.Header().Set(requestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

// securityHeaders sets the headers every API response carries.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("X-Frame-Options", "DENY")
		headers.Set("X-Content-Type-Options", "nosniff")
		headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		headers.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// Key to store the token claims in the request context
type key int

const claimsKey key = 0

// needAuth requires a valid bearer token. With roles given, the token's role
// must be one of them.
func (s *Server) needAuth(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			claims, err := s.jwt.DecodeToken(strings.TrimSpace(token))
			if err != nil {
				writeErrorAndStatusCode(w, err)
				return
			}

			if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
				logger.Log.Debug("role rejected", "subject", claims.Subject, "role", claims.Role, "route", r.URL.Path)
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimsFrom(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsKey).(*auth.Claims)
	return claims
}

// rateLimit throttles anonymous endpoints per client IP.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		if !s.limiter.Allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) issueToken(w http.ResponseWriter, r *http.Request) {
	var body api.TokenRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	token, expiresAt, err := s.jwt.NewToken(body.Subject, body.Role)
	if err != nil {
		writeErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "can't issue token", StatusCode: http.StatusInternalServerError})
		return
	}
	logger.Log.Info("issued dev token", "subject", body.Subject, "role", body.Role)
	writeData(w, http.StatusCreated, api.TokenResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil)
}
