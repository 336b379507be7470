package public

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// viewsResponse 浏览计数响应体
type viewsResponse struct {
	Views int `json:"views"`
}

// ListNews 已发布新闻列表，按发布时间倒序
func (h *Handler) ListNews(c *gin.Context) {
	articles, err := h.News.ListPublic(c.Request.Context(), c.Query("category"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, articles)
}

// GetNews 获取已发布新闻详情，未发布文章视为不存在
func (h *Handler) GetNews(c *gin.Context) {
	article, err := h.News.GetPublic(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, article)
}

// IncrementNewsViews 浏览计数加一，返回最新计数
func (h *Handler) IncrementNewsViews(c *gin.Context) {
	views, err := h.News.IncrementViews(c.Request.Context(), c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, viewsResponse{Views: views})
}
