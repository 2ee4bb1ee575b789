package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// cachedCategory is the Redis representation of a category.
type cachedCategory struct {
	ID           uint   `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	AllowedScope string `json:"allowed_scope"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// CategoryCache is a read-through cache in front of a category repository.
// The whole category list is cached as one value because the catalog is
// small. Writes go to the repository and then drop the cached list, both in
// this process and in Redis when a client is configured, so other processes
// reload on their next read.
type CategoryCache struct {
	next   catalog.CategoryRepository
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface

	mu        sync.RWMutex
	loaded    bool
	local     []*catalog.Category
	expiresAt time.Time
}

// NewCategoryCache wraps next. client may be nil for a process-local cache.
func NewCategoryCache(next catalog.CategoryRepository, client *redis.Client, ttl time.Duration, log logger.Interface) *CategoryCache {
	return &CategoryCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

var _ catalog.CategoryRepository = (*CategoryCache)(nil)

func (c *CategoryCache) Create(ctx context.Context, category *catalog.Category) error {
	err := c.next.Create(ctx, category)
	c.Invalidate(ctx)
	return err
}

func (c *CategoryCache) Update(ctx context.Context, category *catalog.Category) error {
	err := c.next.Update(ctx, category)
	c.Invalidate(ctx)
	return err
}

func (c *CategoryCache) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	all, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range all {
		if category.ID() == id {
			return category, nil
		}
	}
	return nil, nil
}

func (c *CategoryCache) GetByCode(ctx context.Context, code string) (*catalog.Category, error) {
	all, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range all {
		if category.Code() == code {
			return category, nil
		}
	}
	return nil, nil
}

func (c *CategoryCache) List(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	all, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*catalog.Category, 0, len(all))
	for _, category := range all {
		if activeOnly && !category.IsActive() {
			continue
		}
		result = append(result, category)
	}
	return result, nil
}

// Invalidate drops the cached list. Redis failures are logged; the local
// copy is always dropped.
func (c *CategoryCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	c.loaded = false
	c.local = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()

	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, constants.RedisKeyCategoryList).Err(); err != nil {
		c.logger.Warnw("failed to invalidate category cache", "error", err)
	}
}

func (c *CategoryCache) all(ctx context.Context) ([]*catalog.Category, error) {
	now := biztime.NowUTC()

	c.mu.RLock()
	if c.loaded && now.Before(c.expiresAt) {
		cached := c.local
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	if categories, ok := c.readRedis(ctx); ok {
		c.store(categories, now)
		return categories, nil
	}

	categories, err := c.next.List(ctx, false)
	if err != nil {
		return nil, err
	}
	c.store(categories, now)
	c.writeRedis(ctx, categories)
	return categories, nil
}

func (c *CategoryCache) store(categories []*catalog.Category, now time.Time) {
	if categories == nil {
		categories = []*catalog.Category{}
	}
	c.mu.Lock()
	c.loaded = true
	c.local = categories
	c.expiresAt = now.Add(c.ttl)
	c.mu.Unlock()
}

func (c *CategoryCache) readRedis(ctx context.Context) ([]*catalog.Category, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, constants.RedisKeyCategoryList).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("failed to read category cache", "error", err)
		}
		return nil, false
	}

	categories, err := decodeCategories(data)
	if err != nil {
		c.logger.Warnw("discarding malformed category cache entry", "error", err)
		return nil, false
	}
	return categories, true
}

func (c *CategoryCache) writeRedis(ctx context.Context, categories []*catalog.Category) {
	if c.client == nil {
		return
	}

	data, err := encodeCategories(categories)
	if err != nil {
		c.logger.Warnw("failed to encode category cache entry", "error", err)
		return
	}
	if err := c.client.Set(ctx, constants.RedisKeyCategoryList, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to write category cache", "error", err)
	}
}

func encodeCategories(categories []*catalog.Category) ([]byte, error) {
	rows := make([]cachedCategory, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, cachedCategory{
			ID:           category.ID(),
			Code:         category.Code(),
			Name:         category.Name(),
			AllowedScope: category.AllowedScope().String(),
			IsActive:     category.IsActive(),
			DisplayOrder: category.DisplayOrder(),
			CreatedAt:    biztime.ToMillis(category.CreatedAt()),
			UpdatedAt:    biztime.ToMillis(category.UpdatedAt()),
		})
	}
	return json.Marshal(rows)
}

func decodeCategories(data []byte) ([]*catalog.Category, error) {
	var rows []cachedCategory
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}

	categories := make([]*catalog.Category, 0, len(rows))
	for _, row := range rows {
		category, err := catalog.ReconstructCategory(
			row.ID,
			row.Code,
			row.Name,
			vo.Scope(row.AllowedScope),
			row.IsActive,
			row.DisplayOrder,
			biztime.FromMillis(row.CreatedAt),
			biztime.FromMillis(row.UpdatedAt),
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}
