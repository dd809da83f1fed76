package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

// Order submits purchases to the order service replicas.
type Order struct {
	transport
}

func NewOrder(replicas Picker, httpClient *http.Client, logger *zap.Logger, metrics observability.Metrics) *Order {
	return &Order{transport: newTransport(replicas, httpClient, logger, metrics)}
}

func (o *Order) Purchase(ctx context.Context, item string) (*domain.PurchaseResult, error) {
	reply, err := o.do(ctx, http.MethodPost, "/purchase/"+url.PathEscape(item))
	if err != nil {
		return nil, err
	}

	var res domain.PurchaseResult
	if err := json.Unmarshal(reply.Body, &res); err != nil {
		return nil, domain.Backend(reply.Status, fmt.Sprintf("malformed purchase response: %v", err))
	}
	o.logger.Info("purchase accepted",
		zap.String("item_number", item),
		zap.String("replica", reply.Replica),
	)
	return &res, nil
}
