// Package usecase はlistingsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"rental_admin/internal/feature/listings/domain/entity"
)

const (
	// DefaultPage はページ番号が指定されない場合の既定値です。
	DefaultPage = 1
	// DefaultLimit は1ページあたりの既定件数です。
	DefaultLimit = 10
	// StatusFilterAll はステータスで絞り込まないことを表すフィルタ値です。
	StatusFilterAll = "all"
)

// ListingStore はリスティングのコレクションと監査ログの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（store）ではなくコンシューマー（usecase）が定義します。
type ListingStore interface {
	// List はフィルタ適用後のリスティングを登録順で1ページ分返します。
	// 範囲外のページは空のItemsを返し、エラーにはなりません。
	List(ctx context.Context, page, limit int, status string) (*entity.Page, error)

	// GetByID は指定されたIDのリスティングを取得します。
	// 存在しない場合、ErrListingNotFoundを返します。
	GetByID(ctx context.Context, id uint) (*entity.Listing, error)

	// UpdateStatus はステータスを変更し、監査エントリを1件追記します。
	// 存在しない場合、ErrListingNotFoundを返します（監査エントリは追記されません）。
	UpdateStatus(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error)

	// UpdateFields は部分更新をマージし、実際に値が変わった場合のみ監査エントリを追記します。
	// 存在しない場合、ErrListingNotFoundを返します。
	UpdateFields(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error)

	// AuditTrail は監査エントリをタイムスタンプ降順で返します。
	AuditTrail(ctx context.Context) ([]entity.AuditEntry, error)
}

// moderationUsecase はモデレーション操作のビジネスロジックを実装します。
// パラメータの正規化とバリデーションを行い、ストアに委譲します。
type moderationUsecase struct {
	store ListingStore
}

// NewModerationUsecase はmoderationUsecaseの新しいインスタンスを生成します。
func NewModerationUsecase(store ListingStore) *moderationUsecase {
	return &moderationUsecase{store: store}
}

// List はリスティングの一覧を1ページ分取得します。
// 1未満のpage/limitは既定値に丸め、空のステータスは"all"として扱います。
func (u *moderationUsecase) List(ctx context.Context, page, limit int, status string) (*entity.Page, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if status == "" {
		status = StatusFilterAll
	}
	return u.store.List(ctx, page, limit, status)
}

// Get は指定されたIDのリスティングを取得します。
func (u *moderationUsecase) Get(ctx context.Context, id uint) (*entity.Listing, error) {
	return u.store.GetByID(ctx, id)
}

// UpdateStatus はリスティングのステータスを変更します。
// 未知のステータス値はErrInvalidStatusで拒否します。
// 現在と同じステータスへの変更も許可され、監査エントリが追記されます。
func (u *moderationUsecase) UpdateStatus(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.store.UpdateStatus(ctx, id, status, adminEmail)
}

// Edit はリスティングの編集可能フィールドを部分更新します。
// フィールドが1つも指定されていない場合、ErrEmptyUpdateで拒否します。
func (u *moderationUsecase) Edit(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error) {
	if updates.Empty() {
		return nil, ErrEmptyUpdate
	}
	return u.store.UpdateFields(ctx, id, updates, adminEmail)
}

// AuditTrail はモデレーション操作の監査ログを新しい順で返します。
func (u *moderationUsecase) AuditTrail(ctx context.Context) ([]entity.AuditEntry, error) {
	return u.store.AuditTrail(ctx)
}
