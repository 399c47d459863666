package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/preston-bernstein/nba-stats-service/internal/config"
)

func fixtureProxy(t *testing.T) *httpadapter.HandlerAdapterV2 {
	t.Helper()
	proxy, err := newProxy(config.Config{
		Provider: config.ProviderFixture,
		Logging:  config.LoggingConfig{Level: "error"},
		Defaults: config.DefaultsConfig{LeagueID: "00", Timezone: "America/New_York"},
		Metrics:  config.MetricsConfig{Enabled: true},
	})
	if err != nil {
		t.Fatalf("newProxy: %v", err)
	}
	return proxy
}

func httpEvent(method, path, query string, headers map[string]string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RawPath:        path,
		RawQueryString: query,
		Headers:        headers,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			DomainName: "stats.example.com",
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:   method,
				Path:     path,
				SourceIP: "203.0.113.7",
			},
		},
	}
}

func TestMainReturnsWhenRunSkipped(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestProxyServesFixtureTeams(t *testing.T) {
	resp, err := fixtureProxy(t).ProxyWithContext(context.Background(), httpEvent(http.MethodGet, "/teams", "", nil))
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}

	var teams []map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &teams); err != nil {
		t.Fatalf("decode teams: %v", err)
	}
	if len(teams) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(teams))
	}
}

func TestProxyCarriesQueryAndHeadersBothWays(t *testing.T) {
	event := httpEvent(http.MethodGet, "/games", "GameDate=bad-date", map[string]string{"x-request-id": "req-1"})

	resp, err := fixtureProxy(t).ProxyWithContext(context.Background(), event)
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, resp.Body)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Fatalf("unexpected headers %+v", resp.Headers)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] != "Invalid date format. Use YYYY-MM-DD." || body["requestId"] != "req-1" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestProxyReturnsSetCookieAsCookies(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "a=1; Path=/")
		w.Header().Add("Set-Cookie", "b=2; Expires=Wed, 21 Oct 2026 07:28:00 GMT")
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := httpadapter.NewV2(handler).ProxyWithContext(context.Background(), httpEvent(http.MethodGet, "/health", "", nil))
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if len(resp.Cookies) != 2 || resp.Cookies[1] != "b=2; Expires=Wed, 21 Oct 2026 07:28:00 GMT" {
		t.Fatalf("expected both cookies intact, got %q", resp.Cookies)
	}
	if _, ok := resp.Headers["Set-Cookie"]; ok {
		t.Fatalf("expected Set-Cookie moved out of headers, got %+v", resp.Headers)
	}
}
