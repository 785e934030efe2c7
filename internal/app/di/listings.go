// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"rental_admin/internal/feature/listings/store"
	"rental_admin/internal/feature/listings/usecase"
	"rental_admin/internal/platform/cache"
)

// NewListingStore creates the listing store seeded with the demo inventory.
// If Redis is available, list pages are served through a caching decorator.
func NewListingStore(rdb *redis.Client, ttl time.Duration) usecase.ListingStore {
	s := store.New(store.DemoListings()...)
	if rdb != nil {
		return cache.NewCachingListingStore(rdb, ttl, s, "listings")
	}
	return s
}
