// Package admin 管理端 API 处理器，所有路由要求有效会话令牌
package admin

import "github.com/sdkthunder/site-api/internal/provider"

// Handler 管理端处理器
type Handler struct {
	*provider.Container
}

// New 创建管理端处理器
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
