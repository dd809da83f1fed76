package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/client"
	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Cache interface {
	Get(key string) (json.RawMessage, bool)
	Put(key string, value json.RawMessage)
	Invalidate(key string) bool
	InvalidatePrefix(prefix string) int
}

type CatalogAPI interface {
	Search(ctx context.Context, topic string) (client.Reply, error)
	Info(ctx context.Context, item string) (client.Reply, error)
}

type OrderAPI interface {
	Purchase(ctx context.Context, item string) (*domain.PurchaseResult, error)
}

// Service is what the shell drives: cached catalog reads plus the purchase
// transaction.
type Service struct {
	*Catalog
	*Purchaser
}

func NewService(cache Cache, catalog CatalogAPI, orders OrderAPI, logger *zap.Logger, metrics observability.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	c := NewCatalog(cache, catalog, logger, metrics)
	return &Service{
		Catalog:   c,
		Purchaser: NewPurchaser(c, orders, cache, logger, metrics),
	}
}
