package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/cache"
	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

type State string

const (
	StateFetchInfo        State = "FETCH_INFO"
	StateCheckStock       State = "CHECK_STOCK"
	StateSubmitOrder      State = "SUBMIT_ORDER"
	StateInvalidateInfo   State = "INVALIDATE_INFO"
	StateRefetchForTopic  State = "REFETCH_FOR_TOPIC"
	StateInvalidateSearch State = "INVALIDATE_SEARCH"
	StateDone             State = "DONE"
	StateError            State = "ERROR"
)

// Purchaser runs the purchase transaction across the catalog and order
// services and drops every cached view the purchase makes stale.
type Purchaser struct {
	catalog *Catalog
	orders  OrderAPI
	cache   Cache
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewPurchaser(catalog *Catalog, orders OrderAPI, cache Cache, logger *zap.Logger, metrics observability.Metrics) *Purchaser {
	return &Purchaser{
		catalog: catalog,
		orders:  orders,
		cache:   cache,
		logger:  logger,
		metrics: metrics,
	}
}

func (p *Purchaser) Purchase(ctx context.Context, item string) (*domain.PurchaseResult, error) {
	t0 := time.Now()
	res, err := p.purchase(ctx, item)

	outcome := "ok"
	if err != nil {
		outcome = outcomeOf(err)
	}
	p.metrics.ObservePurchase(outcome, convertToMs(t0))
	return res, err
}

func (p *Purchaser) purchase(ctx context.Context, rawItem string) (*domain.PurchaseResult, error) {
	item, err := domain.NormalizeItem(rawItem)
	if err != nil {
		return nil, err
	}
	log := p.logger.With(zap.String("item_number", item))

	// The stock check always reads a replica: a cached record may predate
	// earlier purchases.
	p.enter(log, StateFetchInfo)
	book, _, err := p.catalog.FetchInfo(ctx, item)
	if err != nil {
		return nil, p.fail(log, StateFetchInfo, err)
	}

	p.enter(log, StateCheckStock)
	if !book.InStock() {
		return nil, p.fail(log, StateCheckStock, domain.OutOfStock())
	}

	p.enter(log, StateSubmitOrder)
	res, err := p.orders.Purchase(ctx, item)
	if err != nil {
		return nil, p.fail(log, StateSubmitOrder, err)
	}

	p.enter(log, StateInvalidateInfo)
	removed := 0
	if p.cache.Invalidate(cache.InfoKey(item)) {
		removed++
	}

	p.enter(log, StateRefetchForTopic)
	fresh, _, err := p.catalog.FetchInfo(ctx, item)

	p.enter(log, StateInvalidateSearch)
	if err != nil {
		// Without the topic there is no way to tell which listing is stale.
		n := p.cache.InvalidatePrefix(cache.SearchPrefix())
		removed += n
		log.Warn("topic refetch failed, dropped all cached searches",
			zap.Int("dropped", n),
			zap.Error(err),
		)
	} else if p.cache.Invalidate(cache.SearchKey(fresh.Topic)) {
		removed++
	}
	p.metrics.IncInvalidation(removed)

	p.enter(log, StateDone)
	log.Info("purchase completed", zap.String("message", res.Message))
	return res, nil
}

func (p *Purchaser) enter(log *zap.Logger, s State) {
	log.Debug("purchase state", zap.String("state", string(s)))
}

func (p *Purchaser) fail(log *zap.Logger, at State, err error) error {
	log.Info("purchase aborted",
		zap.String("state", string(StateError)),
		zap.String("failed_at", string(at)),
		zap.Error(err),
	)
	return err
}

func outcomeOf(err error) string {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return "not_found"
	case domain.KindOutOfStock:
		return "out_of_stock"
	case domain.KindBackend:
		return "backend_error"
	case domain.KindTransport:
		return "transport_error"
	default:
		return "invalid_input"
	}
}
