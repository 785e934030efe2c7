package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"rental_admin/internal/app/di"
	"rental_admin/internal/app/router"
	authadapters "rental_admin/internal/feature/auth/adapters"
	authhandler "rental_admin/internal/feature/auth/transport/handler"
	authusecase "rental_admin/internal/feature/auth/usecase"
	"rental_admin/internal/feature/imagescreen/adapters/gemini"
	"rental_admin/internal/feature/imagescreen/adapters/vision"
	screenhandler "rental_admin/internal/feature/imagescreen/transport/handler"
	screenusecase "rental_admin/internal/feature/imagescreen/usecase"
	listinghandler "rental_admin/internal/feature/listings/transport/handler"
	listingusecase "rental_admin/internal/feature/listings/usecase"
	infradb "rental_admin/internal/platform/db"
	jwtmw "rental_admin/internal/platform/jwt"
	infraredis "rental_admin/internal/platform/redis"
	"rental_admin/internal/shared/ratelimiter"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()
	if err := infradb.SeedAdmin(db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT
	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	ttl := jwtmw.DefaultTTL
	if v := os.Getenv("JWT_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		} else {
			log.Printf("[WARN] Invalid JWT_TTL %q, using default: %v", v, err)
		}
	}
	jwtSvc := jwtmw.NewService(os.Getenv("JWT_SECRET"), ttl)

	// Repository / Store
	userRepo := authadapters.NewUserMySQL(db)
	listingStore := di.NewListingStore(rdb, 5*time.Minute)

	// スクリーニング用の外部クライアント（認証情報がない環境では無効化）
	ctx := context.Background()
	var photoScreener screenusecase.PhotoScreener
	if v, err := vision.NewVisionPhotoScreener(ctx); err != nil {
		log.Println("[WARN] Vision client unavailable. Photo screening disabled:", err)
	} else {
		photoScreener = v
		defer func() {
			if err := v.Close(); err != nil {
				log.Println("[ERROR] Failed to close Vision client:", err)
			}
		}()
	}
	var descriptionAnalyzer screenusecase.DescriptionAnalyzer
	if g, err := gemini.NewGeminiAnalyzer(ctx); err != nil {
		log.Println("[WARN] Gemini client unavailable. Description screening disabled:", err)
	} else {
		descriptionAnalyzer = g
	}
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtSvc)
	moderationUC := listingusecase.NewModerationUsecase(listingStore)
	screenUC := screenusecase.NewImageScreenUsecase(photoScreener, descriptionAnalyzer, limiter)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	listingH := listinghandler.NewListingHandler(moderationUC)
	screenH := screenhandler.NewImageScreenHandler(screenUC)

	// ルータ生成
	router := router.NewRouter(authH, listingH, screenH, jwtmw.AuthRequired(jwtSvc))

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
