/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "brp_gateway"

	// Search operations.
	Search                      = "search"
	SearchAuthorizedCountMetric = "search_authorized_total"
	SearchRejectedCountMetric   = "search_rejected_total"
	SearchTimeMetric            = "search_seconds"

	// Trust store operations.
	TrustStore                  = "truststore"
	TrustStoreRebuildTimeMetric = "truststore_rebuild_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	SearchAuthorizedIncrement()
	SearchRejectedIncrement()
	SearchTime(value time.Duration)
	TrustStoreRebuildTime(value time.Duration)
}
