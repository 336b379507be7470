package admin

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListPartners 合作伙伴列表，含隐藏条目
func (h *Handler) ListPartners(c *gin.Context) {
	partners, err := h.Partner.ListAdmin()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, partners)
}

// GetPartner 获取单个合作伙伴
func (h *Handler) GetPartner(c *gin.Context) {
	partner, err := h.Partner.Get(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, partner)
}

// CreatePartner 创建合作伙伴
func (h *Handler) CreatePartner(c *gin.Context) {
	var input service.CreatePartnerInput
	if !shared.BindJSON(c, &input) {
		return
	}
	partner, err := h.Partner.Create(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, partner)
}

// UpdatePartner 按字段更新合作伙伴
func (h *Handler) UpdatePartner(c *gin.Context) {
	var input service.UpdatePartnerInput
	if !shared.BindJSON(c, &input) {
		return
	}
	partner, err := h.Partner.Update(c.Param("id"), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, partner)
}

// DeletePartner 删除合作伙伴
func (h *Handler) DeletePartner(c *gin.Context) {
	if err := h.Partner.Delete(c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
