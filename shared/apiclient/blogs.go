package apiclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/edu-platform/educlient/shared/api"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/query"
)

// BlogListOptions filters GET /blogs. Only Page and Limit are always sent.
type BlogListOptions struct {
	Page     int      // default 1
	Limit    int      // default 10
	Tags     []string // sent as one comma-joined value
	Category string
	Search   string
	Author   string
}

func (o BlogListOptions) query() string {
	return query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(o.Page)},
		{Name: "limit", Value: limitOrDefault(o.Limit)},
		{Name: "tags", Value: o.Tags},
		{Name: "category", Value: o.Category},
		{Name: "search", Value: o.Search},
		{Name: "author", Value: o.Author},
	})
}

func (c *Client) GetAllBlogs(ctx context.Context, opts BlogListOptions) (*api.BlogListResponse, error) {
	return send[[]api.Blog](ctx, c, call{
		method: http.MethodGet, route: "/blogs", path: "/blogs", query: opts.query(), what: "get blogs",
	})
}

func (c *Client) GetBlog(ctx context.Context, id string) (*api.BlogResponse, error) {
	blogID, err := requireID("blog ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.Blog](ctx, c, call{
		method: http.MethodGet, route: "/blogs/{id}", path: "/blogs/" + blogID, what: "get blog",
	})
}

func (c *Client) GetBlogBySlug(ctx context.Context, slug string) (*api.BlogResponse, error) {
	s, err := requireID("blog slug", slug)
	if err != nil {
		return nil, err
	}
	return send[api.Blog](ctx, c, call{
		method: http.MethodGet, route: "/blogs/slug/{slug}", path: "/blogs/slug/" + s, what: "get blog",
	})
}

// SearchBlogs runs a full-text search; q must not be blank.
func (c *Client) SearchBlogs(ctx context.Context, q string, page, limit int) (*api.BlogListResponse, error) {
	if strings.TrimSpace(q) == "" {
		return nil, internal_errors.Required("search query")
	}
	qs := query.BuildQueryString(query.Options{
		{Name: "q", Value: q},
		{Name: "page", Value: pageOrDefault(page)},
		{Name: "limit", Value: limitOrDefault(limit)},
	})
	return send[[]api.Blog](ctx, c, call{
		method: http.MethodGet, route: "/blogs/search", path: "/blogs/search", query: qs, what: "search blogs",
	})
}

func (c *Client) CreateBlog(ctx context.Context, req api.BlogRequest) (*api.BlogResponse, error) {
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Blog](ctx, c, call{
		method: http.MethodPost, route: "/blogs", path: "/blogs", body: req, auth: true, what: "create blog",
	})
}

func (c *Client) UpdateBlog(ctx context.Context, id string, req api.BlogRequest) (*api.BlogResponse, error) {
	blogID, err := requireID("blog ID", id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Blog](ctx, c, call{
		method: http.MethodPut, route: "/blogs/{id}", path: "/blogs/" + blogID, body: req, auth: true, what: "update blog",
	})
}

func (c *Client) DeleteBlog(ctx context.Context, id string) (*api.Response[api.DeleteResult], error) {
	blogID, err := requireID("blog ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.DeleteResult](ctx, c, call{
		method: http.MethodDelete, route: "/blogs/{id}", path: "/blogs/" + blogID, auth: true, what: "delete blog",
	})
}
