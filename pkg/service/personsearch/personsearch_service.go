/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination personsearch_service_mocks_test.go -package personsearch_test -source=personsearch_service.go

package personsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/gemeentenijmegen/haalcentraal-gateway/internal/logfields"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/brp"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/client/haalcentraal"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/profile"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/resterr"
)

var logger = log.New("person-search")

type profileStore interface {
	Get(ctx context.Context, applicationID profile.ID) (*profile.Application, error)
}

type upstreamClient interface {
	Search(ctx context.Context, payload []byte) (*haalcentraal.Response, error)
}

type metricsProvider interface {
	SearchAuthorizedIncrement()
	SearchRejectedIncrement()
	SearchTime(value time.Duration)
}

// Result carries the upstream registry reply back to the transport layer
// without interpretation.
type Result struct {
	StatusCode int
	Body       []byte
}

// Service authorizes person search requests against the caller's registered
// profile and forwards accepted requests to the registry.
type Service struct {
	profileStore profileStore
	upstream     upstreamClient
	metrics      metricsProvider
}

// New returns a new search service.
func New(profileStore profileStore, upstream upstreamClient, metrics metricsProvider) *Service {
	return &Service{
		profileStore: profileStore,
		upstream:     upstream,
		metrics:      metrics,
	}
}

// Search parses the raw request body, authorizes the requested fields against
// the caller's profile and forwards the request to the registry. The reply is
// returned verbatim.
func (s *Service) Search(ctx context.Context, applicationID profile.ID, rawBody []byte) (*Result, error) {
	startTime := time.Now()

	defer func() {
		s.metrics.SearchTime(time.Since(startTime))
	}()

	req, err := brp.ParseSearchRequest(rawBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", resterr.ErrMalformedRequest, err)
	}

	if err = s.Authorize(ctx, applicationID, req.Fields); err != nil {
		return nil, err
	}

	return s.Forward(ctx, req)
}

// Authorize checks the requested fields against the caller's profile. The
// profile is read fresh on every call so that profile changes take effect
// immediately.
func (s *Service) Authorize(ctx context.Context, applicationID profile.ID, requestedFields []string) error {
	app, err := s.profileStore.Get(ctx, applicationID)
	if err != nil {
		s.metrics.SearchRejectedIncrement()

		return fmt.Errorf("get application profile: %w", err)
	}

	if !app.Allows(requestedFields) {
		s.metrics.SearchRejectedIncrement()

		logger.Warnc(ctx, "requested fields not allowed by profile",
			logfields.WithApplicationID(applicationID),
			logfields.WithRequestedFields(requestedFields))

		return resterr.ErrFieldsNotAllowed
	}

	s.metrics.SearchAuthorizedIncrement()

	return nil
}

// Forward sends the validated request to the registry and relays the reply,
// including non-success statuses, back to the caller.
func (s *Service) Forward(ctx context.Context, req *brp.SearchRequest) (*Result, error) {
	payload, err := req.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	logger.Debugc(ctx, "forwarding search request", logfields.WithSearchType(string(req.Type)))

	resp, err := s.upstream.Search(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("forward search request: %w", err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}
