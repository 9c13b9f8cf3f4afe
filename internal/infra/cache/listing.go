package cache

import (
	"context"
	"log/slog"
	"time"

	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"
)

// ListingReadStore keeps single-listing views in an in-process LRU. Lists are
// never cached because their pages shift with every new listing.
type ListingReadStore struct {
	next  queries.ListingReadStore
	local *ccache.Cache[*queries.ListingView]
	ttl   time.Duration
}

func NewListingReadStore(next queries.ListingReadStore, maxSize int64, ttl time.Duration) *ListingReadStore {
	return &ListingReadStore{
		next:  next,
		local: ccache.New(ccache.Configure[*queries.ListingView]().MaxSize(maxSize)),
		ttl:   ttl,
	}
}

func (c *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	key := id.String()
	if item := c.local.Get(key); item != nil && !item.Expired() {
		slog.Debug("listing cache hit", "listing_id", key)
		return item.Value(), nil
	}

	v, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.local.Set(key, v, c.ttl)
	return v, nil
}

func (c *ListingReadStore) List(ctx context.Context, filters queries.ListingFilters, after *queries.PageKey, limit int32) ([]*queries.ListingView, error) {
	return c.next.List(ctx, filters, after, limit)
}

// Invalidate drops a listing after its row or its reviews change.
func (c *ListingReadStore) Invalidate(listingID uuid.UUID) {
	c.local.Delete(listingID.String())
}

func (c *ListingReadStore) Stop() {
	c.local.Stop()
}
