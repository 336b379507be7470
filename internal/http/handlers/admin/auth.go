package admin

import (
	"time"

	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/http/handlers/shared"
	"github.com/sdkthunder/site-api/internal/http/response"
	"github.com/sdkthunder/site-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// loginRequest 登录请求体
type loginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	CaptchaID     string `json:"captchaId"`
	CaptchaAnswer string `json:"captchaAnswer"`
}

// loginResponse 登录成功响应体
type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
}

// sessionResponse 会话探测响应体
type sessionResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

// captchaResponse 验证码挑战响应体
type captchaResponse struct {
	Enabled bool   `json:"enabled"`
	ID      string `json:"id,omitempty"`
	Image   string `json:"image,omitempty"`
}

// Login 管理员登录，签发会话令牌并种下后台页面 Cookie
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !shared.BindJSON(c, &req) {
		return
	}

	if err := h.Captcha.Verify(req.CaptchaID, req.CaptchaAnswer); err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	token, expiresAt, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warnw("admin_login_failed",
			"request_id", shared.RequestID(c),
			"email", req.Email,
			"ip", c.ClientIP(),
		)
		shared.RespondServiceError(c, err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(constants.SessionCookieName, token, maxAge, "/", "", false, true)

	logger.Infow("admin_login_succeeded",
		"request_id", shared.RequestID(c),
		"email", req.Email,
		"ip", c.ClientIP(),
	)
	response.OK(c, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Email:     h.Cfg.Admin.Email,
	})
}

// Session 会话探测，始终 200，valid 标记令牌是否有效
// GET 从 Authorization 头取令牌，POST 也接受请求体中的 token 字段。
func (h *Handler) Session(c *gin.Context) {
	token := shared.BearerToken(c)
	if token == "" && c.Request.Method == "POST" {
		var req struct {
			Token string `json:"token"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.Token
		}
	}
	if token == "" {
		if cookie, err := c.Cookie(constants.SessionCookieName); err == nil {
			token = cookie
		}
	}

	claims, err := h.Auth.ParseToken(token)
	if token == "" || err != nil {
		response.OK(c, sessionResponse{Valid: false})
		return
	}
	response.OK(c, sessionResponse{Valid: true, Email: claims.Email})
}

// CaptchaChallenge 生成登录验证码挑战
func (h *Handler) CaptchaChallenge(c *gin.Context) {
	if !h.Captcha.Enabled() {
		response.OK(c, captchaResponse{Enabled: false})
		return
	}
	id, image, err := h.Captcha.Generate()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, captchaResponse{Enabled: true, ID: id, Image: image})
}
