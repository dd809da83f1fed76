package observability

import "sync"

type observe struct {
	Kind    string
	Source  string
	Service string
	Replica string
	Method  string
	Route   string
	Outcome string
	Status  int
	Ms      float64
	NetMs   float64
}

// Totals is a point-in-time copy of the Inmem counters.
type Totals struct {
	CacheHits       int
	CacheMisses     int
	Invalidations   int
	BackendCalls    int
	BackendFailures int
	Purchases       map[string]int
}

// Inmem keeps the last max events and running totals for the session.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		cacheHits, cacheMiss int
		invalidations        int
		backendCalls         int
		backendFailures      int
		purchases            map[string]int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveLookup(source string, cacheMs, netMs float64) {
	m.push(&observe{Kind: "lookup", Source: source, Ms: cacheMs, NetMs: netMs})
}

func (m *Inmem) ObserveBackend(service, replica string, status int, durMs float64) {
	m.push(&observe{Kind: "backend", Service: service, Replica: replica, Status: status, Ms: durMs})
	m.mu.Lock()
	m.totals.backendCalls++
	if status == 0 || status >= 400 {
		m.totals.backendFailures++
	}
	m.mu.Unlock()
}

func (m *Inmem) ObservePurchase(outcome string, durMs float64) {
	m.push(&observe{Kind: "purchase", Outcome: outcome, Ms: durMs})
	m.mu.Lock()
	if m.totals.purchases == nil {
		m.totals.purchases = make(map[string]int)
	}
	m.totals.purchases[outcome]++
	m.mu.Unlock()
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, Ms: durMs})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.cacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.cacheMiss++
	m.mu.Unlock()
}

func (m *Inmem) IncInvalidation(n int) {
	m.mu.Lock()
	m.totals.invalidations += n
	m.mu.Unlock()
}

func (m *Inmem) Totals() Totals {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := Totals{
		CacheHits:       m.totals.cacheHits,
		CacheMisses:     m.totals.cacheMiss,
		Invalidations:   m.totals.invalidations,
		BackendCalls:    m.totals.backendCalls,
		BackendFailures: m.totals.backendFailures,
		Purchases:       make(map[string]int, len(m.totals.purchases)),
	}
	for k, v := range m.totals.purchases {
		t.Purchases[k] = v
	}
	return t
}
