// Package handler はimagescreenフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental_admin/internal/api"
	"rental_admin/internal/feature/imagescreen/domain/entity"
	"rental_admin/internal/feature/imagescreen/usecase"
)

// ImageScreenUsecase は写真・説明文スクリーニングのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ImageScreenUsecase interface {
	ScreenPhoto(ctx context.Context, imageData []byte) (*entity.PhotoScreening, error)
	ScreenDescription(ctx context.Context, description string) (*entity.DescriptionScreening, error)
}

// ImageScreenHandler は写真・説明文スクリーニングのHTTPリクエストを処理します。
type ImageScreenHandler struct {
	uc ImageScreenUsecase
}

// NewImageScreenHandler はImageScreenHandlerの新しいインスタンスを生成します。
func NewImageScreenHandler(uc ImageScreenUsecase) *ImageScreenHandler {
	return &ImageScreenHandler{uc: uc}
}

// ScreenPhoto は掲載写真をアップロードしてセーフサーチ判定します。
//
// エンドポイント: POST /listings/screen/photo
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *ImageScreenHandler) ScreenPhoto(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	result, err := h.uc.ScreenPhoto(c.Request.Context(), imageData)
	if err != nil {
		if errors.Is(err, usecase.ErrScreeningUnavailable) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "スクリーニングは利用できません"})
			return
		}
		slog.Error("写真スクリーニングに失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "写真スクリーニングに失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.PhotoScreeningResponse{
		Adult:    result.Adult,
		Violence: result.Violence,
		Racy:     result.Racy,
		Flagged:  result.Flagged,
	})
}

// ScreenDescription は説明文のポリシー所見を生成します。
//
// エンドポイント: POST /listings/screen/description
// Content-Type: application/json
func (h *ImageScreenHandler) ScreenDescription(c *gin.Context) {
	var req api.DescriptionScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("説明文スクリーニングリクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "説明文が必要です"})
		return
	}

	result, err := h.uc.ScreenDescription(c.Request.Context(), req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrScreeningUnavailable) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "スクリーニングは利用できません"})
			return
		}
		slog.Error("説明文スクリーニングに失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "説明文スクリーニングに失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.DescriptionScreeningResponse{
		Description: result.Description,
		Summary:     result.Summary,
	})
}
