package app

import (
	"errors"

	"github.com/sdkthunder/site-api/internal/cache"
	"github.com/sdkthunder/site-api/internal/config"
	"github.com/sdkthunder/site-api/internal/logger"
	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/provider"
	"github.com/sdkthunder/site-api/internal/router"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	// Redis 连接失败时降级为无缓存运行，不阻止启动
	var c *cache.Cache
	if cfg.Redis.Enabled {
		connected, err := cache.New(cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			logger.Warnw("redis_connect_failed", "error", err, "fallback", "no_cache")
		} else {
			c = connected
		}
	}

	container := provider.New(cfg, models.DB, c)
	engine := router.New(container)
	addr := cfg.Server.Host + ":" + cfg.Server.Port

	services := []Service{NewHTTPService(addr, engine)}
	if c != nil {
		services = append(services, NewCacheService(c))
	}
	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Config.Server.Mode)
	return RunWithOptions(runner, opts)
}
