package apiclient

import (
	"context"
	"net/http"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/query"
)

type SubmissionListOptions struct {
	Page      int    // default 1
	Limit     int    // default 10
	FormType  string // "contact" or "enquiry"
	Status    string
	SortOrder string // default "desc"
}

func (c *Client) SubmitContactForm(ctx context.Context, form api.ContactForm) (*api.FormSubmissionResponse, error) {
	if err := c.validatePayload(form); err != nil {
		return nil, err
	}
	return send[api.FormSubmission](ctx, c, call{
		method: http.MethodPost, route: "/forms/contact", path: "/forms/contact", body: form, what: "submit contact form",
	})
}

func (c *Client) SubmitEnquiry(ctx context.Context, form api.EnquiryForm) (*api.FormSubmissionResponse, error) {
	if err := c.validatePayload(form); err != nil {
		return nil, err
	}
	return send[api.FormSubmission](ctx, c, call{
		method: http.MethodPost, route: "/forms/enquiry", path: "/forms/enquiry", body: form, what: "submit enquiry",
	})
}

func (c *Client) GetFormSubmissions(ctx context.Context, opts SubmissionListOptions) (*api.FormSubmissionListResponse, error) {
	qs := query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(opts.Page)},
		{Name: "limit", Value: limitOrDefault(opts.Limit)},
		{Name: "form_type", Value: opts.FormType},
		{Name: "status", Value: opts.Status},
		{Name: "sort_order", Value: sortOrderOrDefault(opts.SortOrder)},
	})
	return send[[]api.FormSubmission](ctx, c, call{
		method: http.MethodGet, route: "/forms/submissions", path: "/forms/submissions", query: qs, auth: true, what: "get form submissions",
	})
}

func (c *Client) UpdateSubmissionStatus(ctx context.Context, id, status string) (*api.FormSubmissionResponse, error) {
	submissionID, err := requireID("submission ID", id)
	if err != nil {
		return nil, err
	}
	req := api.SubmissionStatusRequest{Status: status}
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.FormSubmission](ctx, c, call{
		method: http.MethodPatch, route: "/forms/submissions/{id}", path: "/forms/submissions/" + submissionID,
		body: req, auth: true, what: "update submission status",
	})
}
