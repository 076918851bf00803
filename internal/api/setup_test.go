package api

import (
	"strings"
	"testing"

	"go-closet/internal/clothes"
	"go-closet/internal/config"
	"go-closet/internal/db"
	"go-closet/internal/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test_jwt_secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.JWTSecret = testJWTSecret
	return cfg
}

func setupTestDB(t *testing.T) *gorm.DB {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&user.User{},
		&clothes.Clothing{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = dbConn
	return dbConn
}

func resetTables(t *testing.T) {
	if err := db.DB.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("failed to reset users table: %v", err)
	}
	if err := db.DB.Exec("DELETE FROM clothings").Error; err != nil {
		t.Fatalf("failed to reset clothings table: %v", err)
	}
}

func seedUser(t *testing.T, username, password, role string) user.User {
	hash, err := user.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := user.User{Username: username, PasswordHash: hash, Role: user.Role(role)}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
