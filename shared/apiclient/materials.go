package apiclient

import (
	"context"
	"net/http"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/query"
	"github.com/edu-platform/educlient/shared/upload"
)

type MaterialListOptions struct {
	Page     int // default 1
	Limit    int // default 10
	CourseID string
	Types    []string // document, video, image, slides, other
}

func (c *Client) GetMaterials(ctx context.Context, opts MaterialListOptions) (*api.MaterialListResponse, error) {
	qs := query.BuildQueryString(query.Options{
		{Name: "page", Value: pageOrDefault(opts.Page)},
		{Name: "limit", Value: limitOrDefault(opts.Limit)},
		{Name: "course_id", Value: opts.CourseID},
		{Name: "type", Value: opts.Types},
	})
	return send[[]api.Material](ctx, c, call{
		method: http.MethodGet, route: "/materials", path: "/materials", query: qs, what: "get materials",
	})
}

func (c *Client) GetCourseMaterials(ctx context.Context, courseID string) (*api.MaterialListResponse, error) {
	id, err := requireID("course ID", courseID)
	if err != nil {
		return nil, err
	}
	return send[[]api.Material](ctx, c, call{
		method: http.MethodGet, route: "/courses/{id}/materials", path: "/courses/" + id + "/materials", what: "get course materials",
	})
}

func (c *Client) UploadMaterial(ctx context.Context, meta api.MaterialMeta, file upload.File) (*api.MaterialResponse, error) {
	if err := c.validatePayload(meta); err != nil {
		return nil, err
	}
	prepared, err := prepareFile("material file", file,
		upload.DocumentMimes, upload.SlidesMimes, upload.ImageMimes, upload.VideoMimes)
	if err != nil {
		return nil, err
	}
	return send[api.Material](ctx, c, call{
		method: http.MethodPost, route: "/materials/upload", path: "/materials/upload",
		form: newMultipart(meta, "file", prepared), auth: true, what: "upload material",
	})
}

func (c *Client) DeleteMaterial(ctx context.Context, id string) (*api.Response[api.DeleteResult], error) {
	materialID, err := requireID("material ID", id)
	if err != nil {
		return nil, err
	}
	return send[api.DeleteResult](ctx, c, call{
		method: http.MethodDelete, route: "/materials/{id}", path: "/materials/" + materialID, auth: true, what: "delete material",
	})
}
