package apiclient

import (
	"context"
	"net/http"

	"github.com/edu-platform/educlient/shared/api"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/query"
)

const assignmentsPath = "/instructor/assignments"

type AssignmentListOptions struct {
	Page      int // default 1
	Limit     int // default 10
	CourseID  string
	Status    string // draft, published, closed
	SortOrder string // default "desc"
}

func (c *Client) GetInstructorAssignments(ctx context.Context, opts AssignmentListOptions) (*api.AssignmentListResponse, error) {
	qs := query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(opts.Page)},
		{Name: "limit", Value: limitOrDefault(opts.Limit)},
		{Name: "course_id", Value: opts.CourseID},
		{Name: "status", Value: opts.Status},
		{Name: "sort_order", Value: sortOrderOrDefault(opts.SortOrder)},
	})
	return send[[]api.Assignment](ctx, c, call{
		method: http.MethodGet, route: assignmentsPath, path: assignmentsPath, query: qs, auth: true, what: "get assignments",
	})
}

func (c *Client) GetAssignment(ctx context.Context, id string) (*api.AssignmentResponse, error) {
	assignmentID, err := requireID("assignment ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.Assignment](ctx, c, call{
		method: http.MethodGet, route: assignmentsPath + "/{id}", path: assignmentsPath + "/" + assignmentID, auth: true, what: "get assignment",
	})
}

func (c *Client) CreateAssignment(ctx context.Context, req api.AssignmentRequest) (*api.AssignmentResponse, error) {
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Assignment](ctx, c, call{
		method: http.MethodPost, route: assignmentsPath, path: assignmentsPath, body: req, auth: true, what: "create assignment",
	})
}

func (c *Client) UpdateAssignment(ctx context.Context, id string, req api.AssignmentUpdate) (*api.AssignmentResponse, error) {
	assignmentID, err := requireID("assignment ID", id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Assignment](ctx, c, call{
		method: http.MethodPatch, route: assignmentsPath + "/{id}", path: assignmentsPath + "/" + assignmentID,
		body: req, auth: true, what: "update assignment",
	})
}

func (c *Client) DeleteAssignment(ctx context.Context, id string) (*api.Response[api.DeleteResult], error) {
	assignmentID, err := requireID("assignment ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.DeleteResult](ctx, c, call{
		method: http.MethodDelete, route: assignmentsPath + "/{id}", path: assignmentsPath + "/" + assignmentID, auth: true, what: "delete assignment",
	})
}

func (c *Client) GetAssignmentSubmissions(ctx context.Context, id string, page, limit int) (*api.AssignmentSubmissionListResponse, error) {
	assignmentID, err := requireID("assignment ID", id)
	if err != nil {
		return nil, err
	}
	qs := query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(page)},
		{Name: "limit", Value: limitOrDefault(limit)},
	})
	return send[[]api.AssignmentSubmission](ctx, c, call{
		method: http.MethodGet, route: assignmentsPath + "/{id}/submissions", path: assignmentsPath + "/" + assignmentID + "/submissions",
		query: qs, auth: true, what: "get assignment submissions",
	})
}

// GradeSubmission scores a submission. When req.MaxScore is set the score is
// also bounded by it before the request is sent.
func (c *Client) GradeSubmission(ctx context.Context, assignmentID, submissionID string, req api.GradeRequest) (*api.AssignmentSubmissionResponse, error) {
	aID, err := requireID("assignment ID", assignmentID)
	if err != nil {
		return nil, err
	}
	sID, err := requireID("submission ID", submissionID)
	if err != nil {
		return nil, err
	}
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	if req.MaxScore != nil && req.Score > *req.MaxScore {
		return nil, &internal_errors.ValidationError{Field: "score", Tag: "lte", Param: "max_score"}
	}
	return send[api.AssignmentSubmission](ctx, c, call{
		method: http.MethodPut, route: assignmentsPath + "/{id}/submissions/{submissionId}",
		path: assignmentsPath + "/" + aID + "/submissions/" + sID, body: req, auth: true, what: "grade submission",
	})
}
