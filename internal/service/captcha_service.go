package service

import (
	"time"

	"github.com/sdkthunder/site-api/internal/config"

	"github.com/mojocn/base64Captcha"
)

// CaptchaService 登录图形验证码服务
type CaptchaService struct {
	enabled bool
	captcha *base64Captcha.Captcha
}

// NewCaptchaService 创建验证码服务，未启用时各方法直接放行
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	if !cfg.Enabled {
		return &CaptchaService{enabled: false}
	}

	length := cfg.Length
	if length <= 0 {
		length = 5
	}
	width := cfg.Width
	if width <= 0 {
		width = 240
	}
	height := cfg.Height
	if height <= 0 {
		height = 80
	}
	expire := time.Duration(cfg.ExpireSeconds) * time.Second
	if expire <= 0 {
		expire = 5 * time.Minute
	}
	maxStore := cfg.MaxStore
	if maxStore <= 0 {
		maxStore = base64Captcha.GCLimitNumber
	}

	driver := base64Captcha.NewDriverString(
		height,
		width,
		cfg.NoiseCount,
		cfg.ShowLine,
		length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	store := base64Captcha.NewMemoryStore(maxStore, expire)
	return &CaptchaService{
		enabled: true,
		captcha: base64Captcha.NewCaptcha(driver, store),
	}
}

// Enabled 验证码是否启用
func (s *CaptchaService) Enabled() bool {
	return s.enabled
}

// Generate 生成验证码，返回挑战 ID 与 base64 图片
func (s *CaptchaService) Generate() (string, string, error) {
	if !s.enabled {
		return "", "", nil
	}
	id, b64, _, err := s.captcha.Generate()
	if err != nil {
		return "", "", err
	}
	return id, b64, nil
}

// Verify 校验答案，启用状态下答案一次性消费
func (s *CaptchaService) Verify(id, answer string) error {
	if !s.enabled {
		return nil
	}
	if id == "" || answer == "" {
		return ErrCaptchaInvalid
	}
	if !s.captcha.Verify(id, answer, true) {
		return ErrCaptchaInvalid
	}
	return nil
}
