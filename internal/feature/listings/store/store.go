// Package store はlistingsフィーチャーのインメモリストア実装を提供します。
package store

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"rental_admin/internal/feature/listings/domain/entity"
	"rental_admin/internal/feature/listings/usecase"
)

// Store はリスティングのコレクションと監査ログを単一プロセス内で所有します。
// すべての変更操作は単一のクリティカルセクション（マージ＋監査追記）として
// 実行され、同一IDへの並行書き込みは直列化されます（last-write-wins）。
// 読み取りは並行実行できますが、書き込み途中の状態を観測することはありません。
type Store struct {
	mu sync.RWMutex

	// listings は登録順を保持します。index はID検索用です。
	listings []*entity.Listing
	index    map[uint]*entity.Listing

	// audit は追記専用です。末尾が最新の挿入を表します。
	audit       []entity.AuditEntry
	nextAuditID uint64

	now func() time.Time
}

// StoreがListingStoreを実装していることをコンパイル時に検証します。
var _ usecase.ListingStore = (*Store)(nil)

// New は指定された初期データでStoreの新しいインスタンスを生成します。
// 初期データは防御的にコピーされます。
func New(seed ...entity.Listing) *Store {
	s := &Store{
		index: make(map[uint]*entity.Listing, len(seed)),
		now:   time.Now,
	}
	for _, l := range seed {
		c := cloneListing(&l)
		s.listings = append(s.listings, c)
		s.index[c.ID] = c
	}
	return s
}

// List はフィルタ適用後のリスティングを登録順で1ページ分返します。
// totalPagesはceil(total/limit)で、範囲外のページは空のItemsを返します。
func (s *Store) List(ctx context.Context, page, limit int, status string) (*entity.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.listings
	if status != "" && status != usecase.StatusFilterAll {
		filtered = nil
		for _, l := range s.listings {
			if l.Status == entity.Status(status) {
				filtered = append(filtered, l)
			}
		}
	}

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]entity.Listing, 0, end-start)
	for _, l := range filtered[start:end] {
		items = append(items, *cloneListing(l))
	}

	return &entity.Page{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// GetByID は指定されたIDのリスティングを取得します。
// 存在しない場合、usecase.ErrListingNotFoundを返します。
func (s *Store) GetByID(ctx context.Context, id uint) (*entity.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.index[id]
	if !ok {
		return nil, usecase.ErrListingNotFound
	}
	return cloneListing(l), nil
}

// UpdateStatus はリスティングのステータスを変更し、監査エントリを1件追記します。
// 現在と同じステータスへの変更でも監査エントリは追記されます。
// 存在しないIDの場合、usecase.ErrListingNotFoundを返し、監査ログには何も書きません。
func (s *Store) UpdateStatus(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.index[id]
	if !ok {
		return nil, usecase.ErrListingNotFound
	}

	old := l.Status
	l.Status = status
	s.appendAudit(id, fmt.Sprintf("Status changed from %q to %q", old, status), adminEmail)

	return cloneListing(l), nil
}

// UpdateFields は部分更新を既存のリスティングにマージします。
// 構造的に値が変わったフィールドのみを変更として検出し、変更が1つでもあれば
// 監査エントリを1件追記します。変更が検出されない場合、マージは行われますが
// 監査ログには何も書きません。
func (s *Store) UpdateFields(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.index[id]
	if !ok {
		return nil, usecase.ErrListingNotFound
	}

	var changed []string
	if updates.Title != nil {
		if *updates.Title != l.Title {
			changed = append(changed, "title")
		}
		l.Title = *updates.Title
	}
	if updates.Description != nil {
		if *updates.Description != l.Description {
			changed = append(changed, "description")
		}
		l.Description = *updates.Description
	}
	if updates.Price != nil {
		if *updates.Price != l.Price {
			changed = append(changed, "price")
		}
		l.Price = *updates.Price
	}
	if updates.Location != nil {
		if *updates.Location != l.Location {
			changed = append(changed, "location")
		}
		l.Location = *updates.Location
	}
	if updates.Images != nil {
		if !reflect.DeepEqual(updates.Images, l.Images) {
			changed = append(changed, "images")
		}
		l.Images = slices.Clone(updates.Images)
	}

	if len(changed) > 0 {
		s.appendAudit(id, fmt.Sprintf("Listing updated (%s)", strings.Join(changed, ", ")), adminEmail)
	}

	return cloneListing(l), nil
}

// AuditTrail は監査エントリをタイムスタンプ降順で返します。
// 同時刻のエントリは挿入が新しい順に並びます。
func (s *Store) AuditTrail(ctx context.Context) ([]entity.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.AuditEntry, len(s.audit))
	for i, e := range s.audit {
		out[len(s.audit)-1-i] = e
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// appendAudit は監査エントリを追記します。呼び出し側がmuを保持している必要があります。
func (s *Store) appendAudit(listingID uint, action, adminEmail string) {
	s.nextAuditID++
	s.audit = append(s.audit, entity.AuditEntry{
		ID:         s.nextAuditID,
		ListingID:  listingID,
		Action:     action,
		AdminEmail: adminEmail,
		Timestamp:  s.now(),
	})
}

// cloneListing はリスティングの防御的コピーを返します。
// Imagesスライスも含めてコピーするため、呼び出し側の変更はストアに影響しません。
func cloneListing(l *entity.Listing) *entity.Listing {
	c := *l
	c.Images = slices.Clone(l.Images)
	return &c
}
