package public

import (
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListPartners 展示中的合作伙伴列表
func (h *Handler) ListPartners(c *gin.Context) {
	partners, err := h.Partner.ListPublic()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, partners)
}
