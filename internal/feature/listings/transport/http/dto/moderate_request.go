// Package dto はlistingsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "rental_admin/internal/feature/listings/domain/entity"

// Moderation actions accepted by the PUT /listings endpoint.
const (
	ActionUpdateStatus = "updateStatus"
	ActionEdit         = "edit"
)

// ModerateRequest は PUT /listings エンドポイントのリクエストボディを表します。
// actionに応じてstatusまたはupdatesのどちらかが必須になります。
type ModerateRequest struct {
	ID      uint                  `json:"id" binding:"required"`
	Action  string                `json:"action" binding:"required"`
	Status  string                `json:"status"`
	Updates *entity.ListingUpdate `json:"updates"`
}
