// Package handler はlistingsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental_admin/internal/api"
	"rental_admin/internal/feature/listings/domain/entity"
	"rental_admin/internal/feature/listings/transport/http/dto"
	"rental_admin/internal/feature/listings/usecase"
	jwtmw "rental_admin/internal/platform/jwt"
)

// ModerationUsecase はモデレーション操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ModerationUsecase interface {
	// List はリスティングの一覧を1ページ分取得します。
	List(ctx context.Context, page, limit int, status string) (*entity.Page, error)
	// Get は指定されたIDのリスティングを取得します。
	Get(ctx context.Context, id uint) (*entity.Listing, error)
	// UpdateStatus はリスティングのステータスを変更します。
	UpdateStatus(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error)
	// Edit はリスティングの編集可能フィールドを部分更新します。
	Edit(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error)
	// AuditTrail はモデレーション操作の監査ログを新しい順で返します。
	AuditTrail(ctx context.Context) ([]entity.AuditEntry, error)
}

// ListingHandler はリスティングのモデレーションAPIリクエストを処理します。
type ListingHandler struct {
	uc ModerationUsecase
}

// NewListingHandler はListingHandlerの新しいインスタンスを生成します。
func NewListingHandler(uc ModerationUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

// List はリスティング一覧APIエンドポイントを処理します。
//
// エンドポイント: GET /listings?page=&limit=&status=
// 数値でないpage/limitは既定値として扱います。
func (h *ListingHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}
	status := c.DefaultQuery("status", "all")

	result, err := h.uc.List(c.Request.Context(), page, limit, status)
	if err != nil {
		slog.Error("listing query failed", "error", err, "page", page, "limit", limit, "status", status)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get は単一リスティング取得APIエンドポイントを処理します。
//
// エンドポイント: GET /listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return
	}

	l, err := h.uc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "listing not found"})
			return
		}
		slog.Error("listing lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, l)
}

// Moderate はモデレーション操作APIエンドポイントを処理します。
//
// エンドポイント: PUT /listings
// ボディ: {"id": 1, "action": "updateStatus", "status": "approved"}
//
//	または {"id": 1, "action": "edit", "updates": {"price": 99}}
//
// - IDまたはactionが欠けている場合は400を返却
// - actionに必要なパラメータが欠けている/不正な場合は400を返却
// - リスティングが存在しない場合は404を返却
// - 成功時は更新後のリスティング付きで200を返却
func (h *ListingHandler) Moderate(c *gin.Context) {
	var req dto.ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("moderation validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "listing id and action are required"})
		return
	}

	adminEmail := c.GetString(jwtmw.ContextEmail)

	var (
		updated *entity.Listing
		err     error
	)
	switch req.Action {
	case dto.ActionUpdateStatus:
		if req.Status == "" {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid action or missing parameters"})
			return
		}
		updated, err = h.uc.UpdateStatus(c.Request.Context(), req.ID, entity.Status(req.Status), adminEmail)
	case dto.ActionEdit:
		if req.Updates == nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid action or missing parameters"})
			return
		}
		updated, err = h.uc.Edit(c.Request.Context(), req.ID, *req.Updates, adminEmail)
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid action or missing parameters"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid action or missing parameters"})
		case errors.Is(err, usecase.ErrListingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "listing not found"})
		default:
			slog.Error("moderation failed", "error", err, "id", req.ID, "action", req.Action, "admin", adminEmail)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("moderation applied", "id", req.ID, "action", req.Action, "admin", adminEmail)
	c.JSON(http.StatusOK, updated)
}

// Audit は監査ログAPIエンドポイントを処理します。
//
// エンドポイント: GET /audit
func (h *ListingHandler) Audit(c *gin.Context) {
	trail, err := h.uc.AuditTrail(c.Request.Context())
	if err != nil {
		slog.Error("audit trail query failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	if trail == nil {
		trail = []entity.AuditEntry{}
	}
	c.JSON(http.StatusOK, trail)
}
