package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/TemirB/bookstore-client/internal/cache"
	"github.com/TemirB/bookstore-client/internal/client"
	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

// Catalog serves catalog reads through the local cache. Concurrent misses on
// the same key share one replica call.
type Catalog struct {
	cache   Cache
	api     CatalogAPI
	logger  *zap.Logger
	metrics observability.Metrics
	flight  singleflight.Group
}

func NewCatalog(cache Cache, api CatalogAPI, logger *zap.Logger, metrics observability.Metrics) *Catalog {
	return &Catalog{
		cache:   cache,
		api:     api,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *Catalog) SearchByTopic(ctx context.Context, topic string) ([]domain.Book, LookupStats, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, LookupStats{}, domain.ErrEmptyInput
	}

	var books []domain.Book
	st, err := c.readThrough(ctx, cache.SearchKey(topic), func(ctx context.Context) (client.Reply, error) {
		return c.api.Search(ctx, topic)
	}, &books)
	if err != nil {
		return nil, st, err
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, st, nil
}

func (c *Catalog) GetInfo(ctx context.Context, item string) (*domain.Book, LookupStats, error) {
	item, err := domain.NormalizeItem(item)
	if err != nil {
		return nil, LookupStats{}, err
	}

	var book domain.Book
	st, err := c.readThrough(ctx, cache.InfoKey(item), func(ctx context.Context) (client.Reply, error) {
		return c.api.Info(ctx, item)
	}, &book)
	if err != nil {
		return nil, st, err
	}
	return &book, st, nil
}

// FetchInfo reads the record straight from a replica. The cache is neither
// consulted nor filled.
func (c *Catalog) FetchInfo(ctx context.Context, item string) (*domain.Book, LookupStats, error) {
	st := LookupStats{Source: SourceNetwork}

	t0 := time.Now()
	reply, err := c.api.Info(ctx, item)
	st.NetMs = convertToMs(t0)
	st.Replica = reply.Replica
	if err != nil {
		return nil, st, err
	}

	var book domain.Book
	if err := decode(reply, &book); err != nil {
		return nil, st, err
	}
	return &book, st, nil
}

func (c *Catalog) readThrough(ctx context.Context, key string, fetch func(context.Context) (client.Reply, error), out any) (LookupStats, error) {
	var st LookupStats

	// Try cache
	tCacheStart := time.Now()
	if raw, ok := c.cache.Get(key); ok {
		if err := json.Unmarshal(raw, out); err == nil {
			st.Source = SourceCache
			st.CacheMs = convertToMs(tCacheStart)
			c.metrics.IncCacheHit()
			c.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)

			c.logger.Debug("served from cache",
				zap.String("key", key),
				zap.Float64("cache_ms", st.CacheMs),
			)
			return st, nil
		}
		c.cache.Invalidate(key)
	}

	// Try a replica
	c.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tNetStart := time.Now()
	v, err, shared := c.flight.Do(key, func() (any, error) {
		return fetch(ctx)
	})
	reply, _ := v.(client.Reply)
	st.Replica = reply.Replica
	if err != nil {
		c.logger.Info("catalog read failed",
			zap.String("key", key),
			zap.String("replica", reply.Replica),
			zap.Error(err),
		)
		return st, err
	}
	if err := decode(reply, out); err != nil {
		return st, err
	}

	st.Source = SourceNetwork
	st.NetMs = convertToMs(tNetStart)

	c.cache.Put(key, reply.Body)

	c.metrics.ObserveLookup(string(st.Source), st.CacheMs, st.NetMs)
	c.logger.Debug("cache miss, fetched from replica",
		zap.String("key", key),
		zap.String("replica", reply.Replica),
		zap.Float64("net_ms", st.NetMs),
		zap.Bool("shared", shared),
	)
	return st, nil
}

func decode(reply client.Reply, out any) error {
	if err := json.Unmarshal(reply.Body, out); err != nil {
		return domain.Backend(reply.Status, fmt.Sprintf("malformed catalog response: %v", err))
	}
	return nil
}
