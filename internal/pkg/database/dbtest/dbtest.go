// Package dbtest 为测试提供迁移好的内存 SQLite 数据库
package dbtest

import (
	"SocialDash/internal/api/config"
	"SocialDash/internal/pkg/database"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
)

// NewDB 每个测试独立的内存库，测试结束自动关闭
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s-%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := database.NewGormDB(&config.DBConfig{
		Driver:      database.DriverSQLite,
		DSN:         dsn,
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite memory db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
