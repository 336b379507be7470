package shared

import (
	"errors"

	"github.com/sdkthunder/site-api/internal/http/response"
	"github.com/sdkthunder/site-api/internal/logger"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RespondServiceError 把业务错误映射为 HTTP 响应
// 校验失败与非法 ID 是 400，不存在是 404，凭证问题是 401，其余 500 并记日志。
func RespondServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(c, ve.Error())
	case errors.Is(err, service.ErrInvalidID):
		response.BadRequest(c, "invalid id")
	case errors.Is(err, service.ErrCaptchaInvalid):
		response.BadRequest(c, "captcha verification failed")
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "resource not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, "invalid or expired token")
	default:
		logger.Errorw("request_failed",
			"request_id", RequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Internal(c)
	}
}
