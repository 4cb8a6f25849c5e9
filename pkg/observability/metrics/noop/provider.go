/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) SearchAuthorizedIncrement()            {}
func (n *NoMetrics) SearchRejectedIncrement()              {}
func (n *NoMetrics) SearchTime(_ time.Duration)            {}
func (n *NoMetrics) TrustStoreRebuildTime(_ time.Duration) {}
