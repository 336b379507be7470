package admin

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListNews 新闻列表，含未发布文章
func (h *Handler) ListNews(c *gin.Context) {
	articles, err := h.News.ListAdmin(c.Query("category"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, articles)
}

// GetNews 获取单篇新闻
func (h *Handler) GetNews(c *gin.Context) {
	article, err := h.News.Get(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, article)
}

// CreateNews 创建新闻
func (h *Handler) CreateNews(c *gin.Context) {
	var input service.CreateNewsInput
	if !shared.BindJSON(c, &input) {
		return
	}
	article, err := h.News.Create(c.Request.Context(), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, article)
}

// UpdateNews 按字段更新新闻
func (h *Handler) UpdateNews(c *gin.Context) {
	var input service.UpdateNewsInput
	if !shared.BindJSON(c, &input) {
		return
	}
	article, err := h.News.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, article)
}

// DeleteNews 删除新闻
func (h *Handler) DeleteNews(c *gin.Context) {
	if err := h.News.Delete(c.Request.Context(), c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
