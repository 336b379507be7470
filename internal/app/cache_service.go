package app

import (
	"context"

	"github.com/sdkthunder/site-api/internal/cache"
)

// CacheService Redis 连接生命周期托管，停机时关闭连接
type CacheService struct {
	cache *cache.Cache
}

// NewCacheService 创建缓存服务
func NewCacheService(c *cache.Cache) *CacheService {
	return &CacheService{cache: c}
}

// Name 服务名称
func (s *CacheService) Name() string {
	return "cache"
}

// Start 等待停机信号
func (s *CacheService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Stop 关闭连接
func (s *CacheService) Stop(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Close()
}
