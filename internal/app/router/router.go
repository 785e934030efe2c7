package router

import (
	"github.com/gin-gonic/gin"

	authhandler "rental_admin/internal/feature/auth/transport/handler"
	screenhandler "rental_admin/internal/feature/imagescreen/transport/handler"
	listinghandler "rental_admin/internal/feature/listings/transport/handler"
	"rental_admin/internal/platform/http/handler"
)

func NewRouter(authH *authhandler.AuthHandler, listingH *listinghandler.ListingHandler,
	screenH *screenhandler.ImageScreenHandler, authMW gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// ログイン（JWT 発行）
	r.POST("/login", authH.Login)

	// 認証必須のルート
	auth := r.Group("/")
	// authMW ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(authMW)
	{
		auth.GET("/listings", listingH.List)
		auth.GET("/listings/:id", listingH.Get)
		auth.PUT("/listings", listingH.Moderate)
		auth.GET("/audit", listingH.Audit)
		auth.POST("/listings/screen/photo", screenH.ScreenPhoto)
		auth.POST("/listings/screen/description", screenH.ScreenDescription)
	}

	return r
}
