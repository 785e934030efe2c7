// Package vision はGoogle Cloud Vision APIを使用した写真スクリーニングクライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"rental_admin/internal/feature/imagescreen/domain/entity"
	"rental_admin/internal/feature/imagescreen/usecase"
)

// VisionPhotoScreener はGoogle Cloud Vision APIのセーフサーチ判定を使用して
// 掲載写真をスクリーニングします。
type VisionPhotoScreener struct {
	client *gvision.ImageAnnotatorClient
}

// VisionPhotoScreenerがPhotoScreenerを実装していることをコンパイル時に検証します。
var _ usecase.PhotoScreener = (*VisionPhotoScreener)(nil)

// NewVisionPhotoScreener はADCを使用してVisionPhotoScreenerの新しいインスタンスを生成します。
func NewVisionPhotoScreener(ctx context.Context) (*VisionPhotoScreener, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionPhotoScreener{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionPhotoScreener) Close() error {
	return v.client.Close()
}

// ScreenPhoto は画像バイト列をセーフサーチ判定します。
func (v *VisionPhotoScreener) ScreenPhoto(ctx context.Context, imageData []byte) (*entity.PhotoScreening, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 || resp.Responses[0].SafeSearchAnnotation == nil {
		return nil, fmt.Errorf("vision API returned no safe search annotation")
	}

	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	ann := resp.Responses[0].SafeSearchAnnotation
	return &entity.PhotoScreening{
		Adult:    ann.Adult.String(),
		Violence: ann.Violence.String(),
		Racy:     ann.Racy.String(),
		Flagged:  flagged(ann.Adult) || flagged(ann.Violence) || flagged(ann.Racy),
	}, nil
}

// flagged はLIKELY以上の可能性をフラグ対象として扱います。
func flagged(l visionpb.Likelihood) bool {
	return l >= visionpb.Likelihood_LIKELY
}
