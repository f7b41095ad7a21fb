// Package testutil opens throwaway databases and seeds fixtures for tests.
package testutil

import (
	"context"
	"finlit_backend/internal/config"
	"finlit_backend/internal/model"
	"finlit_backend/pkg/database"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewDB returns a migrated and seeded in-memory SQLite database private to tb.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := &config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   fmt.Sprintf("file:finlit_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", dbSeq.Add(1)),
	}
	db, err := database.InitDB(cfg)
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	if err := database.Seed(db); err != nil {
		tb.Fatalf("seed test db: %v", err)
	}
	return db
}

// SeedUser inserts a user with a placeholder password hash.
func SeedUser(tb testing.TB, ctx context.Context, db *gorm.DB, email, username string) *model.User {
	tb.Helper()

	user := &model.User{Email: email, Username: username, PasswordHash: "x"}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		tb.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// SeedGiftAwards records n gift claims for userID.
func SeedGiftAwards(tb testing.TB, ctx context.Context, db *gorm.DB, userID uint, n int) {
	tb.Helper()

	for i := 0; i < n; i++ {
		award := &model.UserReward{UserID: userID, RewardType: model.RewardGift, RewardName: "seeded"}
		if err := db.WithContext(ctx).Create(award).Error; err != nil {
			tb.Fatalf("seed gift award: %v", err)
		}
	}
}

// Config returns a configuration suitable for handler and service tests.
func Config(tb testing.TB) *config.Config {
	tb.Helper()

	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		JWT: config.JWTConfig{
			Secret:     "test-secret-test-secret-test-secret",
			ExpireTime: time.Hour,
		},
		Storage: config.StorageConfig{Type: "local", LocalPath: tb.TempDir()},
		RateLimit: config.RateLimitConfig{
			MaxRequests:   10000,
			WindowMinutes: 1,
		},
	}
}
