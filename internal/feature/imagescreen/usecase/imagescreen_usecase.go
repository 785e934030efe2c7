// Package usecase はimagescreenフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"rental_admin/internal/feature/imagescreen/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// MaxDescriptionLength は説明文の最大文字数（rune数）です。
	MaxDescriptionLength = 2000
	// PolicyPromptTemplate は説明文ポリシーチェックのプロンプトテンプレートです。
	PolicyPromptTemplate = "You review car-rental listings for an admin moderation dashboard. " +
		"In at most three sentences, flag policy concerns in this listing description " +
		"(embedded contact details, profanity, misleading claims, non-vehicle content), " +
		"or state that it looks acceptable: %q"
)

// ErrScreeningUnavailable はスクリーニング用の外部クライアントが構成されていない場合に返されます。
var ErrScreeningUnavailable = errors.New("screening is not configured")

// PhotoScreener は掲載写真をセーフサーチ判定するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PhotoScreener interface {
	// ScreenPhoto は画像バイト列をセーフサーチ判定し、結果を返します。
	ScreenPhoto(ctx context.Context, imageData []byte) (*entity.PhotoScreening, error)
}

// DescriptionAnalyzer は説明文のポリシー所見を生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DescriptionAnalyzer interface {
	// Analyze はプロンプトから所見サマリーを生成します。
	Analyze(ctx context.Context, prompt string) (string, error)
}

// RateLimiter は外部APIの呼び出し頻度を制限するインターフェースです。
type RateLimiter interface {
	WaitIfNeeded()
}

// imagescreenUsecase は写真・説明文スクリーニングのビジネスロジックを提供します。
type imagescreenUsecase struct {
	photos       PhotoScreener
	descriptions DescriptionAnalyzer
	limiter      RateLimiter
}

// NewImageScreenUsecase はimagescreenUsecaseの新しいインスタンスを生成します。
// photosまたはdescriptionsがnilの場合、対応する操作はErrScreeningUnavailableを返します。
func NewImageScreenUsecase(photos PhotoScreener, descriptions DescriptionAnalyzer, limiter RateLimiter) *imagescreenUsecase {
	return &imagescreenUsecase{photos: photos, descriptions: descriptions, limiter: limiter}
}

// ScreenPhoto は掲載写真をセーフサーチ判定します。
func (u *imagescreenUsecase) ScreenPhoto(ctx context.Context, imageData []byte) (*entity.PhotoScreening, error) {
	if u.photos == nil {
		return nil, ErrScreeningUnavailable
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}
	if u.limiter != nil {
		u.limiter.WaitIfNeeded()
	}
	return u.photos.ScreenPhoto(ctx, imageData)
}

// ScreenDescription は説明文のポリシー所見を生成します。
func (u *imagescreenUsecase) ScreenDescription(ctx context.Context, description string) (*entity.DescriptionScreening, error) {
	if u.descriptions == nil {
		return nil, ErrScreeningUnavailable
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if u.limiter != nil {
		u.limiter.WaitIfNeeded()
	}
	prompt := fmt.Sprintf(PolicyPromptTemplate, description)
	summary, err := u.descriptions.Analyze(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("description analyzer failed: %w", err)
	}
	return &entity.DescriptionScreening{
		Description: description,
		Summary:     summary,
	}, nil
}
