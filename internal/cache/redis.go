package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options Redis 连接配置
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// Cache Redis 缓存封装，所有键自动附加前缀
type Cache struct {
	client *redis.Client
	prefix string
}

// New 创建缓存实例并验证连通性
func New(opts Options) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	prefix := strings.TrimSuffix(opts.Prefix, ":")
	if prefix == "" {
		prefix = "st"
	}
	return &Cache{client: client, prefix: prefix}, nil
}

// Client 暴露底层客户端，供限流等需要执行脚本的场景使用
func (c *Cache) Client() *redis.Client {
	return c.client
}

// Key 拼接带前缀的缓存键
func (c *Cache) Key(parts ...string) string {
	return c.prefix + ":" + strings.Join(parts, ":")
}

// GetJSON 读取并反序列化缓存值，未命中返回 false
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化并写入缓存值
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

// Incr 自增计数键，用于版本号失效
func (c *Cache) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

// GetInt 读取整数键，不存在返回 0
func (c *Cache) GetInt(ctx context.Context, key string) (int64, error) {
	raw, err := c.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return raw, nil
}

// Del 删除缓存键
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close 关闭连接
func (c *Cache) Close() error {
	return c.client.Close()
}
