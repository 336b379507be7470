package public

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"

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
