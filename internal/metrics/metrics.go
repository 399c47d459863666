package metrics

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of one provider's upstream counters.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	Endpoints       map[string]int
}

func (s *Snapshot) clone() Snapshot {
	out := *s
	out.Endpoints = make(map[string]int, len(s.Endpoints))
	for endpoint, n := range s.Endpoints {
		out.Endpoints[endpoint] = n
	}
	return out
}

// Recorder keeps in-memory upstream counters per provider and mirrors every
// observation to OpenTelemetry when telemetry is enabled. A nil Recorder
// discards everything.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*Snapshot
	inst      *instruments
}

// NewRecorder returns a Recorder that only keeps in-memory counters.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(inst *instruments) *Recorder {
	return &Recorder{providers: make(map[string]*Snapshot), inst: inst}
}

// RecordProviderCall counts one call to a provider endpoint.
func (r *Recorder) RecordProviderCall(provider, endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.update(provider, func(s *Snapshot) {
		s.Calls++
		s.Endpoints[endpoint]++
		s.LastCallLatency = duration
		if err != nil {
			s.Errors++
		}
	})
	r.inst.upstreamCall(provider, endpoint, duration, err != nil)
}

// RecordRateLimit counts a 429 from upstream. A zero retryAfter keeps the
// previously observed value.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.update(provider, func(s *Snapshot) {
		s.RateLimitHits++
		if retryAfter > 0 {
			s.LastRetryAfter = retryAfter
		}
	})
	r.inst.throttled(provider, retryAfter)
}

// RecordHTTPRequest reports one served request. Only exported through
// OpenTelemetry; nothing is kept in memory.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.inst.httpRequest(method, route, status, duration)
}

// Snapshot copies the counters for provider. Unknown providers yield zeros.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.providers[provider]
	if !ok {
		return Snapshot{}
	}
	return s.clone()
}

// EndpointCalls reports calls made to a single upstream endpoint.
func (r *Recorder) EndpointCalls(provider, endpoint string) int {
	return r.Snapshot(provider).Endpoints[endpoint]
}

// ProviderErrors reports failed upstream calls.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits reports how often upstream throttled the provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter reports the most recent non-zero Retry-After.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

func (r *Recorder) update(provider string, fn func(*Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.providers[provider]
	if !ok {
		s = &Snapshot{Endpoints: make(map[string]int)}
		r.providers[provider] = s
	}
	fn(s)
}
