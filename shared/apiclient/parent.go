package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/edu-platform/educlient/shared/api"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/query"
)

// DateRange bounds attendance queries. Zero ends are left out of the query.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (c *Client) GetParentDashboard(ctx context.Context) (*api.ParentDashboardResponse, error) {
	return send[api.ParentDashboard](ctx, c, call{
		method: http.MethodGet, route: "/parent/dashboard", path: "/parent/dashboard", auth: true, what: "get parent dashboard",
	})
}

func (c *Client) GetChildren(ctx context.Context) (*api.ChildrenResponse, error) {
	return send[[]api.Child](ctx, c, call{
		method: http.MethodGet, route: "/parent/children", path: "/parent/children", auth: true, what: "get children",
	})
}

func (c *Client) LinkChild(ctx context.Context, req api.LinkChildRequest) (*api.ChildResponse, error) {
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Child](ctx, c, call{
		method: http.MethodPost, route: "/parent/children", path: "/parent/children", body: req, auth: true, what: "link child",
	})
}

// GetChildProgress returns progress across all courses, or one course when
// courseID is set.
func (c *Client) GetChildProgress(ctx context.Context, childID, courseID string) (*api.ChildProgressResponse, error) {
	id, err := requireID("child ID", childID)
	if err != nil {
		return nil, err
	}
	qs := query.BuildQueryString(query.Options{{Name: "course_id", Value: courseID}})
	return send[[]api.ChildProgress](ctx, c, call{
		method: http.MethodGet, route: "/parent/children/{id}/progress", path: "/parent/children/" + id + "/progress",
		query: qs, auth: true, what: "get child progress",
	})
}

func (c *Client) GetChildAttendance(ctx context.Context, childID string, r DateRange) (*api.AttendanceResponse, error) {
	id, err := requireID("child ID", childID)
	if err != nil {
		return nil, err
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return nil, &internal_errors.ValidationError{Field: "from", Tag: "ltefield", Param: "to"}
	}
	qs := query.BuildQueryString(query.Options{
		{Name: "from", Value: formatDate(r.From)},
		{Name: "to", Value: formatDate(r.To)},
	})
	return send[[]api.AttendanceRecord](ctx, c, call{
		method: http.MethodGet, route: "/parent/children/{id}/attendance", path: "/parent/children/" + id + "/attendance",
		query: qs, auth: true, what: "get child attendance",
	})
}
