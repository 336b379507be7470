// Package public 公开只读 API 处理器，无需认证
package public

import "github.com/sdkthunder/site-api/internal/provider"

// Handler 公开端处理器
type Handler struct {
	*provider.Container
}

// New 创建公开端处理器
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
