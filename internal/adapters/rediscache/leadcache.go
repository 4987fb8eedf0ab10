// Package rediscache caches single-lead reads in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"leadbook/internal/domain"
)

// DefaultTTL bounds how long a read that raced an invalidation can serve a
// stale lead.
const DefaultTTL = 30 * time.Second

// LeadCache stores leads as JSON under "<prefix>|lead|id:<id>".
type LeadCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		c.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return c, nil
}

func NewLeadCache(client *redis.Client, prefix string, ttl time.Duration) *LeadCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LeadCache{client: client, prefix: prefix, ttl: ttl}
}

// cachedLead mirrors domain.Lead with explicit JSON names so the stored
// format does not depend on Go field names.
type cachedLead struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Source       string     `json:"source"`
	Status       string     `json:"status"`
	FollowUpDate *time.Time `json:"followUpDate"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (c *LeadCache) key(id int64) string { return fmt.Sprintf("%s|lead|id:%d", c.prefix, id) }

func (c *LeadCache) GetLead(ctx context.Context, id int64) (domain.Lead, bool, error) {
	str, err := c.client.Get(ctx, c.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Lead{}, false, nil
	}
	if err != nil {
		return domain.Lead{}, false, err
	}
	var v cachedLead
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return domain.Lead{}, false, err
	}
	return domain.Lead{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Source:       v.Source,
		Status:       domain.Status(v.Status),
		FollowUpDate: v.FollowUpDate,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}, true, nil
}

func (c *LeadCache) SetLead(ctx context.Context, l domain.Lead) error {
	b, err := json.Marshal(cachedLead{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Source:       l.Source,
		Status:       string(l.Status),
		FollowUpDate: l.FollowUpDate,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(l.ID), b, c.ttl).Err()
}

// InvalidateLead drops the cached copy; deleting the key is never wrong.
func (c *LeadCache) InvalidateLead(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
