package admin

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAboutStats 统计卡片列表，含隐藏条目
func (h *Handler) ListAboutStats(c *gin.Context) {
	stats, err := h.About.ListStatsAdmin()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, stats)
}

// GetAboutStat 获取单个统计卡片
func (h *Handler) GetAboutStat(c *gin.Context) {
	stat, err := h.About.GetStat(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, stat)
}

// CreateAboutStat 创建统计卡片
func (h *Handler) CreateAboutStat(c *gin.Context) {
	var input service.CreateAboutStatInput
	if !shared.BindJSON(c, &input) {
		return
	}
	stat, err := h.About.CreateStat(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, stat)
}

// UpdateAboutStat 按字段更新统计卡片
func (h *Handler) UpdateAboutStat(c *gin.Context) {
	var input service.UpdateAboutStatInput
	if !shared.BindJSON(c, &input) {
		return
	}
	stat, err := h.About.UpdateStat(c.Param("id"), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, stat)
}

// DeleteAboutStat 删除统计卡片
func (h *Handler) DeleteAboutStat(c *gin.Context) {
	if err := h.About.DeleteStat(c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListAboutValues 价值观条目列表，含隐藏条目
func (h *Handler) ListAboutValues(c *gin.Context) {
	values, err := h.About.ListValuesAdmin()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, values)
}

// GetAboutValue 获取单个价值观条目
func (h *Handler) GetAboutValue(c *gin.Context) {
	value, err := h.About.GetValue(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, value)
}

// CreateAboutValue 创建价值观条目
func (h *Handler) CreateAboutValue(c *gin.Context) {
	var input service.CreateAboutValueInput
	if !shared.BindJSON(c, &input) {
		return
	}
	value, err := h.About.CreateValue(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, value)
}

// UpdateAboutValue 按字段更新价值观条目
func (h *Handler) UpdateAboutValue(c *gin.Context) {
	var input service.UpdateAboutValueInput
	if !shared.BindJSON(c, &input) {
		return
	}
	value, err := h.About.UpdateValue(c.Param("id"), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, value)
}

// DeleteAboutValue 删除价值观条目
func (h *Handler) DeleteAboutValue(c *gin.Context) {
	if err := h.About.DeleteValue(c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
