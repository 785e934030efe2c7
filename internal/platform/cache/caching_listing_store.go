// Package cache provides caching implementations for store interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"rental_admin/internal/feature/listings/domain/entity"
	"rental_admin/internal/feature/listings/usecase"
)

// CachingListingStore decorates a ListingStore with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying store.
type CachingListingStore struct {
	inner     usecase.ListingStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingListingStore decorates a ListingStore with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "listings".
func NewCachingListingStore(rdb *redis.Client, ttl time.Duration, inner usecase.ListingStore, namespace string) *CachingListingStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "listings"
	}
	return &CachingListingStore{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves a page of listings, checking cache first then falling back
// to the underlying store.
func (c *CachingListingStore) List(ctx context.Context, page, limit int, status string) (*entity.Page, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, page, limit, status)
	}

	key := c.cacheKey(page, limit, status)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Page
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.List(ctx, page, limit, status)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// GetByID は単一リスティングの取得をそのまま内部ストアに委譲します。
func (c *CachingListingStore) GetByID(ctx context.Context, id uint) (*entity.Listing, error) {
	return c.inner.GetByID(ctx, id)
}

// UpdateStatus changes a listing status and invalidates cached pages.
func (c *CachingListingStore) UpdateStatus(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error) {
	listing, err := c.inner.UpdateStatus(ctx, id, status, adminEmail)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return listing, nil
}

// UpdateFields edits listing fields and invalidates cached pages.
func (c *CachingListingStore) UpdateFields(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error) {
	listing, err := c.inner.UpdateFields(ctx, id, updates, adminEmail)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return listing, nil
}

// AuditTrail は監査ログの取得をそのまま内部ストアに委譲します。
func (c *CachingListingStore) AuditTrail(ctx context.Context) ([]entity.AuditEntry, error) {
	return c.inner.AuditTrail(ctx)
}

// invalidate drops every cached page in this namespace.
// Mutations change totals and page boundaries, so per-key invalidation
// is not worth the bookkeeping.
func (c *CachingListingStore) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: don't fail if cache deletion fails
}

// cacheKey generates a cache key for a specific page query.
func (c *CachingListingStore) cacheKey(page, limit int, status string) string {
	return fmt.Sprintf("%s:%d:%d:%s",
		c.namespace,
		page,
		limit,
		safe(status),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingListingStore) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
