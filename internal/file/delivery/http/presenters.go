package http

import (
	"catalog-api/internal/file"
	"catalog-api/pkg/response"
)

type fileResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	ContentType string            `json:"content_type"`
	Size        int64             `json:"size"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newFileResp(f file.File) fileResp {
	return fileResp{
		ID:          f.ID.String(),
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		CreatedAt:   response.DateTime(f.CreatedAt),
	}
}

func (h *handler) newListResp(out file.ListOutput) response.PageResp[fileResp] {
	items := make([]fileResp, len(out.Page.Items))
	for i, f := range out.Page.Items {
		items[i] = newFileResp(f)
	}
	return response.NewPageResp(items, out.Page.Offset, out.Page.Limit, out.Page.Total)
}
