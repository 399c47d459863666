package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	proxy, err := newProxy(config.Load())
	if err != nil {
		os.Exit(1)
	}
	lambda.Start(proxy.ProxyWithContext)
}

// newProxy serves the router behind API Gateway HTTP API (payload v2) events.
func newProxy(cfg config.Config) (*httpadapter.HandlerAdapterV2, error) {
	// Lambda has no scrape port and freezes between invocations.
	cfg.Metrics.Enabled = false
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  "json",
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
	})

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		return nil, err
	}
	return httpadapter.NewV2(srv.Handler()), nil
}
