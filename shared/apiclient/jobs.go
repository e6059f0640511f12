package apiclient

import (
	"context"
	"net/http"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/query"
	"github.com/edu-platform/educlient/shared/upload"
)

type JobListOptions struct {
	Page      int // default 1
	Limit     int // default 10
	Search    string
	Location  string
	JobTypes  []string // e.g. full-time, internship
	Remote    *bool
	SortBy    string
	SortOrder string // default "desc"
}

func (o JobListOptions) query() string {
	return query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(o.Page)},
		{Name: "limit", Value: limitOrDefault(o.Limit)},
		{Name: "search", Value: o.Search},
		{Name: "location", Value: o.Location},
		{Name: "job_type", Value: o.JobTypes},
		{Name: "remote", Value: o.Remote},
		{Name: "sort_by", Value: o.SortBy},
		{Name: "sort_order", Value: sortOrderOrDefault(o.SortOrder)},
	})
}

func (c *Client) GetJobs(ctx context.Context, opts JobListOptions) (*api.JobListResponse, error) {
	return send[[]api.Job](ctx, c, call{
		method: http.MethodGet, route: "/jobs", path: "/jobs", query: opts.query(), what: "get jobs",
	})
}

func (c *Client) GetJob(ctx context.Context, id string) (*api.JobResponse, error) {
	jobID, err := requireID("job ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.Job](ctx, c, call{
		method: http.MethodGet, route: "/jobs/{id}", path: "/jobs/" + jobID, what: "get job",
	})
}

// ApplyForJob sends an application with an optional resume (PDF or Word).
func (c *Client) ApplyForJob(ctx context.Context, id string, application api.JobApplication, resume *upload.File) (*api.JobApplicationResponse, error) {
	jobID, err := requireID("job ID", id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePayload(application); err != nil {
		return nil, err
	}

	var prepared *upload.Prepared
	if resume != nil {
		if prepared, err = prepareFile("resume", *resume, upload.DocumentMimes); err != nil {
			return nil, err
		}
	}
	return send[api.JobApplicationResult](ctx, c, call{
		method: http.MethodPost, route: "/jobs/{id}/apply", path: "/jobs/" + jobID + "/apply",
		form: newMultipart(application, "resume", prepared), what: "apply for job",
	})
}

func (c *Client) CreateJob(ctx context.Context, req api.JobRequest) (*api.JobResponse, error) {
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Job](ctx, c, call{
		method: http.MethodPost, route: "/jobs", path: "/jobs", body: req, auth: true, what: "create job",
	})
}

func (c *Client) UpdateJob(ctx context.Context, id string, req api.JobRequest) (*api.JobResponse, error) {
	jobID, err := requireID("job ID", id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.Job](ctx, c, call{
		method: http.MethodPut, route: "/jobs/{id}", path: "/jobs/" + jobID, body: req, auth: true, what: "update job",
	})
}

func (c *Client) DeleteJob(ctx context.Context, id string) (*api.Response[api.DeleteResult], error) {
	jobID, err := requireID("job ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.DeleteResult](ctx, c, call{
		method: http.MethodDelete, route: "/jobs/{id}", path: "/jobs/" + jobID, auth: true, what: "delete job",
	})
}
