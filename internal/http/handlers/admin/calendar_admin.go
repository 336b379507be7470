package admin

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCalendar 全部日历事件
func (h *Handler) ListCalendar(c *gin.Context) {
	events, err := h.Calendar.List()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, events)
}

// GetCalendarEvent 获取单个日历事件
func (h *Handler) GetCalendarEvent(c *gin.Context) {
	event, err := h.Calendar.Get(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, event)
}

// CreateCalendarEvent 创建日历事件
func (h *Handler) CreateCalendarEvent(c *gin.Context) {
	var input service.CalendarEventInput
	if !shared.BindJSON(c, &input) {
		return
	}
	event, err := h.Calendar.Create(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, event)
}

// ReplaceCalendarEvent 整体替换日历事件
func (h *Handler) ReplaceCalendarEvent(c *gin.Context) {
	var input service.CalendarEventInput
	if !shared.BindJSON(c, &input) {
		return
	}
	event, err := h.Calendar.Replace(c.Param("id"), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, event)
}

// DeleteCalendarEvent 删除日历事件
func (h *Handler) DeleteCalendarEvent(c *gin.Context) {
	if err := h.Calendar.Delete(c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
