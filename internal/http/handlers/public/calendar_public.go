package public

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListCalendar 全部日历事件，按活动时间升序
func (h *Handler) ListCalendar(c *gin.Context) {
	events, err := h.Calendar.List()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, events)
}
