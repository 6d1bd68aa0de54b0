//go:build !gcloud

package main

import (
	"context"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/config"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    cfg.ServiceName,
			Version: Version,
		},
		Environment:   logging.Environment(cfg.Env),
		LogLevel:      cfg.LogLevel,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("visit-planning"),
	})
}
