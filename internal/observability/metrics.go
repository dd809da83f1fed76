package observability

// Metrics receives client and sandbox events. Durations are milliseconds;
// a backend status of 0 means the request never got a response.
type Metrics interface {
	ObserveLookup(source string, cacheMs, netMs float64)
	ObserveBackend(service, replica string, status int, durMs float64)
	ObservePurchase(outcome string, durMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	IncCacheHit()
	IncCacheMiss()
	IncInvalidation(n int)
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLookup(string, float64, float64)        {}
func (Noop) ObserveBackend(string, string, int, float64)   {}
func (Noop) ObservePurchase(string, float64)               {}
func (Noop) ObserveHTTP(string, string, int, float64)      {}
func (Noop) IncCacheHit()                                  {}
func (Noop) IncCacheMiss()                                 {}
func (Noop) IncInvalidation(int)                           {}

// Multi fans every event out to all of its members.
type Multi []Metrics

func (m Multi) ObserveLookup(source string, cacheMs, netMs float64) {
	for _, x := range m {
		x.ObserveLookup(source, cacheMs, netMs)
	}
}

func (m Multi) ObserveBackend(service, replica string, status int, durMs float64) {
	for _, x := range m {
		x.ObserveBackend(service, replica, status, durMs)
	}
}

func (m Multi) ObservePurchase(outcome string, durMs float64) {
	for _, x := range m {
		x.ObservePurchase(outcome, durMs)
	}
}

func (m Multi) ObserveHTTP(method, route string, status int, durMs float64) {
	for _, x := range m {
		x.ObserveHTTP(method, route, status, durMs)
	}
}

func (m Multi) IncCacheHit() {
	for _, x := range m {
		x.IncCacheHit()
	}
}

func (m Multi) IncCacheMiss() {
	for _, x := range m {
		x.IncCacheMiss()
	}
}

func (m Multi) IncInvalidation(n int) {
	for _, x := range m {
		x.IncInvalidation(n)
	}
}
