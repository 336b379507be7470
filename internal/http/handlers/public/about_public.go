package public

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListAboutStats 展示中的统计卡片列表
func (h *Handler) ListAboutStats(c *gin.Context) {
	stats, err := h.About.ListStatsPublic()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, stats)
}

// ListAboutValues 展示中的价值观条目列表
func (h *Handler) ListAboutValues(c *gin.Context) {
	values, err := h.About.ListValuesPublic()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, values)
}
