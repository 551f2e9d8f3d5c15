// Package redistest 用 miniredis 替换全局 Redis 客户端
package redistest

import (
	"SocialDash/internal/api/config"
	"SocialDash/internal/pkg/redis"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

// Start 启动 miniredis 并初始化 redis.Rdb
func Start(t testing.TB) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	if err := redis.InitRedis(config.RedisConfig{Addr: mr.Addr()}); err != nil {
		t.Fatalf("init redis: %v", err)
	}
	t.Cleanup(func() {
		_ = redis.Close()
	})
	return mr
}
