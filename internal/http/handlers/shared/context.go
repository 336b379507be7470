package shared

import "github.com/gin-gonic/gin"

// gin 上下文键
const (
	CtxRequestID  = "request_id"
	CtxAdminEmail = "admin_email"
)

// RequestID 读取当前请求 ID
func RequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}

// AdminEmail 读取已认证的管理员邮箱
func AdminEmail(c *gin.Context) string {
	return c.GetString(CtxAdminEmail)
}
