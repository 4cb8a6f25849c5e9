/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gemeentenijmegen/haalcentraal-gateway/internal/logfields"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("start metrics HTTP server: %w", err)
	}

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the gateway.
type PromMetrics struct {
	searchAuthorizedCount prometheus.Counter
	searchRejectedCount   prometheus.Counter
	searchTime            prometheus.Histogram
	trustStoreRebuildTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		searchAuthorizedCount: newSearchAuthorizedCount(),
		searchRejectedCount:   newSearchRejectedCount(),
		searchTime:            newSearchTime(),
		trustStoreRebuildTime: newTrustStoreRebuildTime(),
	}

	registerMetrics(pm)

	return pm
}

// SearchAuthorizedIncrement increments the count of authorized searches.
func (pm *PromMetrics) SearchAuthorizedIncrement() {
	pm.searchAuthorizedCount.Inc()
}

// SearchRejectedIncrement increments the count of rejected searches.
func (pm *PromMetrics) SearchRejectedIncrement() {
	pm.searchRejectedCount.Inc()
}

// SearchTime records the time of a search call end to end.
func (pm *PromMetrics) SearchTime(value time.Duration) {
	pm.searchTime.Observe(value.Seconds())

	logger.Debug("search time", logfields.WithDuration(value))
}

// TrustStoreRebuildTime records the time of a trust store rebuild.
func (pm *PromMetrics) TrustStoreRebuildTime(value time.Duration) {
	pm.trustStoreRebuildTime.Observe(value.Seconds())

	logger.Debug("trust store rebuild time", logfields.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.searchAuthorizedCount, pm.searchRejectedCount, pm.searchTime, pm.trustStoreRebuildTime,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newSearchAuthorizedCount() prometheus.Counter {
	return newCounter(
		metrics.Search, metrics.SearchAuthorizedCountMetric,
		"The number of search requests that passed profile authorization.",
		nil,
	)
}

func newSearchRejectedCount() prometheus.Counter {
	return newCounter(
		metrics.Search, metrics.SearchRejectedCountMetric,
		"The number of search requests rejected by profile authorization.",
		nil,
	)
}

func newSearchTime() prometheus.Histogram {
	return newHistogram(
		metrics.Search, metrics.SearchTimeMetric,
		"The time (in seconds) it takes to authorize and forward a search request.",
		nil,
	)
}

func newTrustStoreRebuildTime() prometheus.Histogram {
	return newHistogram(
		metrics.TrustStore, metrics.TrustStoreRebuildTimeMetric,
		"The time (in seconds) it takes to rebuild the trust store.",
		nil,
	)
}
