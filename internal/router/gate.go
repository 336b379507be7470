package router

import (
	"net/http"
	"strings"

	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Authorize 后台页面访问决策
// 登录页永远放行；其余后台路径要求有效会话，否则给出重定向目标；
// 非后台路径不归闸门管。决策只依赖路径与会话状态。
func Authorize(path string, sessionValid bool) (allowed bool, redirectTo string) {
	if !isAdminPath(path) {
		return true, ""
	}
	if path == constants.AdminLoginPath {
		return true, ""
	}
	if sessionValid {
		return true, ""
	}
	return false, constants.AdminLoginPath
}

// isAdminPath 精确匹配 /admin 及其子路径，不误伤 /administrator 之类
func isAdminPath(path string) bool {
	return path == constants.AdminPathPrefix ||
		strings.HasPrefix(path, constants.AdminPathPrefix+"/")
}

// GateMiddleware 后台页面闸门，未登录访问后台时 303 跳转到登录页
func GateMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(constants.SessionCookieName)
		allowed, redirectTo := Authorize(c.Request.URL.Path, auth.ValidateSession(token))
		if !allowed {
			c.Redirect(http.StatusSeeOther, redirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
