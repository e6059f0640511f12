package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/edu-platform/educlient/shared/api"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/query"
	"github.com/edu-platform/educlient/shared/upload"
)

// the backend spells the collection "broucher"; the path is kept as served
const brochurePath = "/broucher"

var brochureMimes = []string{"application/pdf"}

type BrochureListOptions struct {
	Page     int // default 1
	Limit    int // default 10
	Category string
}

func (c *Client) GetBrochures(ctx context.Context, opts BrochureListOptions) (*api.BrochureListResponse, error) {
	qs := query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(opts.Page)},
		{Name: "limit", Value: limitOrDefault(opts.Limit)},
		{Name: "category", Value: opts.Category},
	})
	return send[[]api.Brochure](ctx, c, call{
		method: http.MethodGet, route: brochurePath, path: brochurePath, query: qs, what: "get brochures",
	})
}

func (c *Client) GetBrochure(ctx context.Context, id string) (*api.BrochureResponse, error) {
	brochureID, err := requireID("brochure ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.Brochure](ctx, c, call{
		method: http.MethodGet, route: brochurePath + "/{id}", path: brochurePath + "/" + brochureID, what: "get brochure",
	})
}

// RequestBrochure submits the lead form that unlocks a brochure download.
func (c *Client) RequestBrochure(ctx context.Context, id string, req api.BrochureRequest) (*api.BrochureLeadResponse, error) {
	brochureID, err := requireID("brochure ID", id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	return send[api.BrochureLead](ctx, c, call{
		method: http.MethodPost, route: brochurePath + "/{id}/request", path: brochurePath + "/" + brochureID + "/request",
		body: req, what: "request brochure",
	})
}

// UploadBrochure stores a new brochure. The file must be a PDF or an image.
func (c *Client) UploadBrochure(ctx context.Context, meta api.BrochureMeta, file upload.File) (*api.BrochureResponse, error) {
	if err := c.validatePayload(meta); err != nil {
		return nil, err
	}
	prepared, err := prepareFile("brochure file", file, brochureMimes, upload.ImageMimes)
	if err != nil {
		return nil, err
	}
	return send[api.Brochure](ctx, c, call{
		method: http.MethodPost, route: brochurePath + "/upload", path: brochurePath + "/upload",
		form: newMultipart(meta, "file", prepared), auth: true, what: "upload brochure",
	})
}

func prepareFile(field string, file upload.File, allowed ...[]string) (*upload.Prepared, error) {
	prepared, err := upload.Prepare(file, allowed...)
	if errors.Is(err, upload.ErrEmptyFile) {
		return nil, internal_errors.Required(field)
	}
	return prepared, err
}
