package replica

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
)

var ErrNoReplicas = errors.New("replica list is empty")

// Selector rotates over the fixed replica list of one service.
type Selector struct {
	service string
	addrs   []string
	cursor  atomic.Uint64
	logger  *zap.Logger
}

func New(service string, addrs []string, logger *zap.Logger) (*Selector, error) {
	if len(addrs) == 0 {
		return nil, ErrNoReplicas
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		service: service,
		addrs:   append([]string(nil), addrs...),
		logger:  logger,
	}, nil
}

// Next advances the cursor and then returns the address under it, so the
// first call after construction returns the second address.
func (s *Selector) Next() string {
	idx := int(s.cursor.Add(1) % uint64(len(s.addrs)))
	addr := s.addrs[idx]
	s.logger.Info("using replica",
		zap.String("service", s.service),
		zap.String("replica", addr),
		zap.Int("index", idx),
	)
	return addr
}

func (s *Selector) Service() string { return s.service }

func (s *Selector) Addrs() []string {
	return append([]string(nil), s.addrs...)
}
