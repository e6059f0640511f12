package apiclient

import (
	"context"
	"net/http"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/query"
)

type CourseListOptions struct {
	Page      int // default 1
	Limit     int // default 10
	Category  string
	Level     string
	Search    string
	Tags      []string
	SortBy    string
	SortOrder string // "asc" or "desc", default "desc"
	IsFree    *bool  // nil leaves the flag out
}

func (o CourseListOptions) query() string {
	return query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(o.Page)},
		{Name: "limit", Value: limitOrDefault(o.Limit)},
		{Name: "category", Value: o.Category},
		{Name: "level", Value: o.Level},
		{Name: "search", Value: o.Search},
		{Name: "tags", Value: o.Tags},
		{Name: "sort_by", Value: o.SortBy},
		{Name: "sort_order", Value: sortOrderOrDefault(o.SortOrder)},
		{Name: "is_free", Value: o.IsFree},
	})
}

func (c *Client) GetCourses(ctx context.Context, opts CourseListOptions) (*api.CourseListResponse, error) {
	return send[[]api.Course](ctx, c, call{
		method: http.MethodGet, route: "/courses/get", path: "/courses/get", query: opts.query(), what: "get courses",
	})
}

func (c *Client) GetCourse(ctx context.Context, id string) (*api.CourseResponse, error) {
	courseID, err := requireID("course ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.Course](ctx, c, call{
		method: http.MethodGet, route: "/courses/get/{id}", path: "/courses/get/" + courseID, what: "get course",
	})
}

func (c *Client) GetCourseBySlug(ctx context.Context, slug string) (*api.CourseResponse, error) {
	s, err := requireID("course slug", slug)
	if err != nil {
		return nil, err
	}
	return send[api.Course](ctx, c, call{
		method: http.MethodGet, route: "/courses/slug/{slug}", path: "/courses/slug/" + s, what: "get course",
	})
}

func (c *Client) CreateCourse(ctx context.Context, req api.CourseRequest) (*api.CourseResponse, error) {
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Course](ctx, c, call{
		method: http.MethodPost, route: "/courses", path: "/courses", body: req, auth: true, what: "create course",
	})
}

func (c *Client) UpdateCourse(ctx context.Context, id string, req api.CourseRequest) (*api.CourseResponse, error) {
	courseID, err := requireID("course ID", id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Course](ctx, c, call{
		method: http.MethodPut, route: "/courses/{id}", path: "/courses/" + courseID, body: req, auth: true, what: "update course",
	})
}

func (c *Client) DeleteCourse(ctx context.Context, id string) (*api.Response[api.DeleteResult], error) {
	courseID, err := requireID("course ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.DeleteResult](ctx, c, call{
		method: http.MethodDelete, route: "/courses/{id}", path: "/courses/" + courseID, auth: true, what: "delete course",
	})
}

// EnrollCourse enrolls the user behind the current token.
func (c *Client) EnrollCourse(ctx context.Context, id string) (*api.EnrollmentResponse, error) {
	courseID, err := requireID("course ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.Enrollment](ctx, c, call{
		method: http.MethodPost, route: "/courses/{id}/enroll", path: "/courses/" + courseID + "/enroll", auth: true, what: "enroll in course",
	})
}
