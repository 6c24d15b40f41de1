package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/service"
	"AreejShop/pkg/response"
)

// UploadImage 上传图片，统一转码 webp
// POST /api/upload
func UploadImage(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Upload().SaveImage(ctx, fileHeader)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, data)
}
