package teststubs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// StubProvider is a test double for providers.DataProvider. It returns the
// response registered for each endpoint and records every request.
type StubProvider struct {
	Responses  map[string]stats.Response
	Scoreboard live.Scoreboard
	Err        error
	Calls      atomic.Int32

	mu       sync.Mutex
	requests []stats.Request
}

// FetchStats returns the configured response for req.Endpoint.
// Unregistered endpoints return an empty response.
func (s *StubProvider) FetchStats(ctx context.Context, req stats.Request) (stats.Response, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.Err != nil {
		return stats.Response{}, s.Err
	}
	return s.Responses[req.Endpoint], nil
}

// FetchLiveScoreboard returns the configured scoreboard and error.
func (s *StubProvider) FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return live.Scoreboard{}, s.Err
	}
	return s.Scoreboard, nil
}

// Requests returns a copy of the recorded stats requests.
func (s *StubProvider) Requests() []stats.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]stats.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent stats request, failing loudly when none was made.
func (s *StubProvider) LastRequest() stats.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		panic(fmt.Sprintf("teststubs: no requests recorded (calls=%d)", s.Calls.Load()))
	}
	return s.requests[len(s.requests)-1]
}
