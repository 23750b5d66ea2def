package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

const ticketListKey = "tickets:list"

// TicketListCache keeps a short-lived copy of the full ticket list in
// Redis so repeated list calls are served without hitting postgres.
// Every ticket mutation invalidates the key.
type TicketListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTicketListCache builds the cache; a nil client or zero TTL disables it.
func NewTicketListCache(r *Redis, ttl time.Duration) *TicketListCache {
	if r == nil || r.Client == nil || ttl <= 0 {
		return &TicketListCache{}
	}
	return &TicketListCache{client: r.Client, ttl: ttl}
}

// Get returns the cached list, or ok=false on miss, disablement, or any
// cache error (callers fall through to the store).
func (c *TicketListCache) Get(ctx context.Context) ([]domain.Ticket, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, ticketListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, false
	}
	return tickets, true
}

// Set stores the list; failures are ignored since the cache is advisory.
func (c *TicketListCache) Set(ctx context.Context, tickets []domain.Ticket) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, ticketListKey, raw, c.ttl).Err()
}

// Invalidate drops the cached list.
func (c *TicketListCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, ticketListKey).Err()
}
