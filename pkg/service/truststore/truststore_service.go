/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination truststore_service_mocks_test.go -package truststore_test -source=truststore_service.go

// Package truststore rebuilds the mTLS trust store of the public API domain
// whenever the set of accepted client certificates changes. The rebuild is
// staged: collect the certificates, publish the concatenated bundle, then
// point the domain at the new bundle version.
package truststore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/gemeentenijmegen/haalcentraal-gateway/internal/logfields"
)

var logger = log.New("trust-store")

// ErrNoCertificates is returned when the certificate store holds no
// certificates at all. Publishing an empty bundle would lock every client
// out, so the rebuild refuses and the previous bundle stays active.
var ErrNoCertificates = errors.New("no certificates provided")

type certificateStore interface {
	GetAll(ctx context.Context) ([]string, error)
}

type bundleStore interface {
	Upload(ctx context.Context, bundle string) (string, error)
}

type domainClient interface {
	GetDomainName(ctx context.Context, params *apigatewayv2.GetDomainNameInput,
		optFns ...func(*apigatewayv2.Options)) (*apigatewayv2.GetDomainNameOutput, error)
	UpdateDomainName(ctx context.Context, params *apigatewayv2.UpdateDomainNameInput,
		optFns ...func(*apigatewayv2.Options)) (*apigatewayv2.UpdateDomainNameOutput, error)
}

type metricsProvider interface {
	TrustStoreRebuildTime(value time.Duration)
}

// Service rebuilds the domain trust store from the certificate store.
type Service struct {
	certStore   certificateStore
	bundleStore bundleStore
	domain      domainClient
	domainName  string
	metrics     metricsProvider
}

// New returns a new trust store service managing the given custom domain.
func New(certStore certificateStore, bundleStore bundleStore, domain domainClient,
	domainName string, metrics metricsProvider) *Service {
	return &Service{
		certStore:   certStore,
		bundleStore: bundleStore,
		domain:      domain,
		domainName:  domainName,
		metrics:     metrics,
	}
}

// Rebuild regenerates the trust store bundle and rolls the domain forward to
// the new bundle version. If any stage fails the domain keeps serving the
// previously active version.
func (s *Service) Rebuild(ctx context.Context) error {
	startTime := time.Now()

	defer func() {
		s.metrics.TrustStoreRebuildTime(time.Since(startTime))
	}()

	if err := s.rebuild(ctx); err != nil {
		return fmt.Errorf("update trust store: %w", err)
	}

	return nil
}

func (s *Service) rebuild(ctx context.Context) error {
	logger.Debugc(ctx, "collecting certificates", logfields.WithStage("collect"))

	certs, err := s.certStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("collect certificates: %w", err)
	}

	if len(certs) == 0 {
		return ErrNoCertificates
	}

	logger.Debugc(ctx, "publishing bundle", logfields.WithStage("publish"),
		logfields.WithCertificateCount(len(certs)))

	version, err := s.bundleStore.Upload(ctx, strings.Join(certs, "\n"))
	if err != nil {
		return fmt.Errorf("publish bundle: %w", err)
	}

	logger.Debugc(ctx, "updating domain pointer", logfields.WithStage("activate"),
		logfields.WithDomainName(s.domainName),
		logfields.WithTruststoreVersion(version))

	if err = s.updateDomain(ctx, version); err != nil {
		return fmt.Errorf("activate bundle version %s: %w", version, err)
	}

	logger.Infoc(ctx, "trust store rebuilt",
		logfields.WithDomainName(s.domainName),
		logfields.WithTruststoreVersion(version),
		logfields.WithCertificateCount(len(certs)))

	return nil
}

// updateDomain re-reads the current domain configuration and rewrites it with
// the new trust store version, keeping every other attribute, including the
// trust store location, exactly as it was.
func (s *Service) updateDomain(ctx context.Context, version string) error {
	current, err := s.domain.GetDomainName(ctx, &apigatewayv2.GetDomainNameInput{
		DomainName: lo.ToPtr(s.domainName),
	})
	if err != nil {
		return fmt.Errorf("get domain configuration: %w", err)
	}

	if current.MutualTlsAuthentication == nil || current.MutualTlsAuthentication.TruststoreUri == nil {
		return fmt.Errorf("domain %s has no mutual TLS trust store configured", s.domainName)
	}

	_, err = s.domain.UpdateDomainName(ctx, &apigatewayv2.UpdateDomainNameInput{
		DomainName:              lo.ToPtr(s.domainName),
		DomainNameConfigurations: current.DomainNameConfigurations,
		MutualTlsAuthentication: &types.MutualTlsAuthenticationInput{
			TruststoreUri:     current.MutualTlsAuthentication.TruststoreUri,
			TruststoreVersion: lo.ToPtr(version),
		},
	})
	if err != nil {
		return fmt.Errorf("update domain configuration: %w", err)
	}

	return nil
}
