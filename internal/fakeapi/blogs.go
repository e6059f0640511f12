package fakeapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edu-platform/educlient/shared/api"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
)

const excerptLength = 160

func (s *Server) listBlogs(w http.ResponseWriter, r *http.Request) {
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	q := r.URL.Query()
	tags := listParam(q.Get("tags"))
	category := q.Get("category")
	search := q.Get("search")
	author := q.Get("author")

	blogs := s.Blogs.List(func(b api.Blog) bool {
		return (len(tags) == 0 || hasAnyFold(b.Tags, tags)) &&
			(category == "" || strings.EqualFold(b.Category, category)) &&
			(author == "" || strings.EqualFold(b.Author, author)) &&
			(search == "" || blogMatches(b, search))
	})
	data, p := paginate(ordered(blogs, "desc"), page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) searchBlogs(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	blogs := s.Blogs.List(func(b api.Blog) bool { return blogMatches(b, q) })
	data, p := paginate(ordered(blogs, "desc"), page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) getBlog(w http.ResponseWriter, r *http.Request) {
	blog, ok := s.Blogs.Get(chi.URLParam(r, "id"))
	if !ok {
		writeErrorAndStatusCode(w, notFound("blog"))
		return
	}
	writeData(w, http.StatusOK, blog, nil)
}

func (s *Server) getBlogBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	blog, ok := s.Blogs.Find(func(b api.Blog) bool { return b.Slug == slug })
	if !ok {
		writeErrorAndStatusCode(w, notFound("blog"))
		return
	}
	writeData(w, http.StatusOK, blog, nil)
}

func (s *Server) createBlog(w http.ResponseWriter, r *http.Request) {
	var body api.BlogRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	now := s.now().UTC()
	blog := s.blogFromRequest(api.Blog{ID: uuid.NewString(), CreatedAt: now}, body)
	if _, taken := s.Blogs.Find(func(b api.Blog) bool { return b.Slug == blog.Slug }); taken {
		writeErrorAndStatusCode(w, conflict("slug already in use"))
		return
	}
	if claims := claimsFrom(r); claims != nil {
		blog.Author = claims.Subject
	}
	s.Blogs.Put(blog.ID, blog)
	writeData(w, http.StatusCreated, blog, nil)
}

func (s *Server) updateBlog(w http.ResponseWriter, r *http.Request) {
	var body api.BlogRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	blog, err := s.Blogs.Update(chi.URLParam(r, "id"), func(current api.Blog, exists bool) (api.Blog, error) {
		if !exists {
			return current, notFound("blog")
		}
		return s.blogFromRequest(current, body), nil
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusOK, blog, nil)
}

func (s *Server) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.Blogs.Delete(id) {
		writeErrorAndStatusCode(w, notFound("blog"))
		return
	}
	writeData(w, http.StatusOK, api.DeleteResult{ID: id, Deleted: true}, nil)
}

// blogFromRequest applies body to base, deriving the slug and a plain-text
// excerpt from the markdown when they are not given.
func (s *Server) blogFromRequest(base api.Blog, body api.BlogRequest) api.Blog {
	now := s.now().UTC()
	base.Title = body.Title
	base.Content = body.Content
	base.Category = body.Category
	base.Tags = body.Tags
	base.CoverImage = body.CoverImage
	base.Slug = body.Slug
	if base.Slug == "" {
		base.Slug = slugify(body.Title)
	}
	base.Excerpt = body.Excerpt
	if base.Excerpt == "" {
		base.Excerpt = s.renderer.Excerpt(body.Content, excerptLength)
	}
	if body.Published && !base.Published {
		base.PublishedAt = now
	}
	base.Published = body.Published
	base.UpdatedAt = now
	return base
}

func blogMatches(b api.Blog, search string) bool {
	return containsFold(b.Title, search) || containsFold(b.Content, search) ||
		containsFold(b.Excerpt, search) || hasAnyFold(b.Tags, []string{search})
}

func conflict(msg string) error {
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: http.StatusConflict}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func hasAnyFold(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// slugify lowercases s and joins its alphanumeric runs with '-'.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
