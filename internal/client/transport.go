package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

// Picker hands out the replica base URL for the next call.
type Picker interface {
	Next() string
	Service() string
}

// Reply is a successful backend response.
type Reply struct {
	Body    json.RawMessage
	Status  int
	Replica string
	NetMs   float64
}

type transport struct {
	replicas Picker
	http     *http.Client
	logger   *zap.Logger
	metrics  observability.Metrics
}

func newTransport(replicas Picker, httpClient *http.Client, logger *zap.Logger, metrics observability.Metrics) transport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return transport{
		replicas: replicas,
		http:     httpClient,
		logger:   logger,
		metrics:  metrics,
	}
}

// do sends one request to the next replica. Non-2xx responses come back as
// domain backend errors; the reply is still filled so callers can inspect
// the status.
func (t transport) do(ctx context.Context, method, path string) (Reply, error) {
	service := t.replicas.Service()
	base := t.replicas.Next()
	reply := Reply{Replica: base}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return reply, domain.Transport(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		reply.NetMs = sinceMs(start)
		t.metrics.ObserveBackend(service, base, 0, reply.NetMs)
		t.logger.Warn("backend request failed",
			zap.String("service", service),
			zap.String("replica", base),
			zap.String("path", path),
			zap.Error(err),
		)
		return reply, domain.Transport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	reply.NetMs = sinceMs(start)
	reply.Status = resp.StatusCode
	t.metrics.ObserveBackend(service, base, resp.StatusCode, reply.NetMs)
	if err != nil {
		return reply, domain.Transport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.logger.Info("backend returned error",
			zap.String("service", service),
			zap.String("replica", base),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return reply, domain.Backend(resp.StatusCode, backendMessage(resp.StatusCode, body))
	}

	reply.Body = body
	return reply, nil
}

func backendMessage(status int, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return http.StatusText(status)
	}
	return msg
}

// isEmptyPayload reports bodies that carry no record at all.
func isEmptyPayload(body []byte) bool {
	s := strings.TrimSpace(string(body))
	return s == "" || s == "null" || s == "{}"
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
