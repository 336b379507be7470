package admin

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListGallery 媒体库列表，支持分类与类型过滤
func (h *Handler) ListGallery(c *gin.Context) {
	items, err := h.Gallery.List(c.Query("category"), c.Query("type"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, items)
}

// GetGalleryItem 获取单个媒体条目
func (h *Handler) GetGalleryItem(c *gin.Context) {
	item, err := h.Gallery.Get(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateGalleryItem 创建媒体条目
func (h *Handler) CreateGalleryItem(c *gin.Context) {
	var input service.CreateGalleryItemInput
	if !shared.BindJSON(c, &input) {
		return
	}
	item, err := h.Gallery.Create(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateGalleryItem 按字段更新媒体条目
func (h *Handler) UpdateGalleryItem(c *gin.Context) {
	var input service.UpdateGalleryItemInput
	if !shared.BindJSON(c, &input) {
		return
	}
	item, err := h.Gallery.Update(c.Param("id"), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, item)
}

// DeleteGalleryItem 删除媒体条目
func (h *Handler) DeleteGalleryItem(c *gin.Context) {
	if err := h.Gallery.Delete(c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
