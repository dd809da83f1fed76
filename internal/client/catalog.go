package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

// Catalog talks to the catalog service replicas. It never caches.
type Catalog struct {
	transport
}

func NewCatalog(replicas Picker, httpClient *http.Client, logger *zap.Logger, metrics observability.Metrics) *Catalog {
	return &Catalog{transport: newTransport(replicas, httpClient, logger, metrics)}
}

// Search returns the raw list of books for topic.
func (c *Catalog) Search(ctx context.Context, topic string) (Reply, error) {
	return c.do(ctx, http.MethodGet, "/search/"+url.PathEscape(topic))
}

// Info returns the raw record for item. A 404 or an empty record is
// reported as domain.ErrNotFound.
func (c *Catalog) Info(ctx context.Context, item string) (Reply, error) {
	reply, err := c.do(ctx, http.MethodGet, "/info/"+url.PathEscape(item))
	if err != nil {
		if reply.Status == http.StatusNotFound && errors.Is(err, domain.ErrBackend) {
			return reply, domain.NotFound()
		}
		return reply, err
	}
	if isEmptyPayload(reply.Body) {
		return reply, domain.NotFound()
	}
	return reply, nil
}
