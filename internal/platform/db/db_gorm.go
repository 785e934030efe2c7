// Package db はMySQLデータベース接続の確立とマイグレーションを提供します。
package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"rental_admin/internal/feature/auth/adapters"
	"rental_admin/internal/feature/auth/domain/entity"
	"rental_admin/internal/feature/auth/usecase"
)

// Config はデータベース接続設定を保持します。
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName はCloud SQLのUnixソケット接続名です。設定時はHost/Portより優先されます。
	InstanceName string
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN は設定からMySQLのDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は接続に成功するまで3秒間隔でリトライします。
// timeout を超えた場合は最後のエラーを返します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は環境変数の設定でMySQLに接続します。
// RUN_MIGRATIONS=true の場合はマイグレーションを実行します。
func OpenDB() *gorm.DB {
	dsn := BuildDSN(LoadConfigFromEnv())

	db, err := ConnectWithRetry(dsn, 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User など）
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

const defaultAdminEmail = "admin@dashboard.com"

// SeedAdmin は管理者アカウントが存在しない場合に作成します。
// メールアドレスは ADMIN_EMAIL、パスワードは ADMIN_PASSWORD から取得します。
// パスワード未設定の場合は警告のみ出してスキップします。
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		slog.Warn("ADMIN_PASSWORD is not set. Skipping admin seeding.", "email", email)
		return nil
	}

	ctx := context.Background()
	repo := adapters.NewUserMySQL(db)

	// 既に存在する場合は何もしない
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, usecase.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &entity.User{
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.Info("Admin user seeded", "email", email)
	return nil
}
