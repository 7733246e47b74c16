package service

import (
	"context"
	"time"

	"github.com/chainsafe/wifi-whitelist/internal/metrics"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

// metricsService records prometheus metrics for every call of the wrapped Service.
type metricsService struct {
	svc     Service
	surface string
}

// NewMetrics creates a metrics decorator. surface labels where the
// submission came from, e.g. "http" or "cli".
func NewMetrics(svc Service, surface string) Service {
	return &metricsService{svc: svc, surface: surface}
}

func (ms *metricsService) Register(ctx context.Context, req *whitelist.RegisterRequest) (*whitelist.Entry, error) {
	start := time.Now()
	entry, err := ms.svc.Register(ctx, req)

	metrics.SubmissionDuration.WithLabelValues(ms.surface).Observe(time.Since(start).Seconds())
	result := metrics.Result(err)
	metrics.SubmissionsTotal.WithLabelValues(ms.surface, result).Inc()
	if result == metrics.ResultStoreError || result == metrics.ResultError {
		metrics.ErrorsTotal.WithLabelValues("service", result).Inc()
	}
	return entry, err
}

func (ms *metricsService) List(ctx context.Context) ([]*whitelist.Entry, error) {
	entries, err := ms.svc.List(ctx)
	if err != nil {
		metrics.ListRequestsTotal.WithLabelValues(metrics.ResultStoreError).Inc()
		metrics.ErrorsTotal.WithLabelValues("service", metrics.ResultStoreError).Inc()
		return nil, err
	}
	metrics.ListRequestsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return entries, nil
}
