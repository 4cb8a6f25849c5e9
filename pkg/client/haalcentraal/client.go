/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package haalcentraal implements the outbound client for the Haal Centraal
// BRP "personen" endpoint: a JSON POST over mutually authenticated TLS with
// the upstream API key in the X-API-KEY header.
package haalcentraal

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/storage/awsecret/credentialstore"
)

const defaultTimeout = 30 * time.Second

// Response is the upstream status and body, relayed verbatim to callers.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client calls the upstream registry.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

type options struct {
	timeout            time.Duration
	insecureSkipVerify bool
	httpClient         *http.Client
}

// Opt sets a Client option.
type Opt func(*options)

// WithTimeout bounds each upstream call.
func WithTimeout(timeout time.Duration) Opt {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithInsecureSkipVerify relaxes upstream peer verification. Dev mode only;
// never enable outside a non-production configuration.
func WithInsecureSkipVerify(insecure bool) Opt {
	return func(o *options) {
		o.insecureSkipVerify = insecure
	}
}

// WithHTTPClient replaces the constructed client, for tests.
func WithHTTPClient(httpClient *http.Client) Opt {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// New builds a Client from the credential bundle.
func New(bundle *credentialstore.Bundle, opts ...Opt) (*Client, error) {
	o := &options{timeout: defaultTimeout}

	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient

	if httpClient == nil {
		keyPair, err := tls.X509KeyPair([]byte(bundle.Certificate), []byte(bundle.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("load client key pair: %w", err)
		}

		caPool := x509.NewCertPool()
		if !caPool.AppendCertsFromPEM([]byte(bundle.CAChain)) {
			return nil, fmt.Errorf("no certificates found in certificate authority chain")
		}

		httpClient = &http.Client{
			Timeout: o.timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					Certificates:       []tls.Certificate{keyPair},
					RootCAs:            caPool,
					MinVersion:         tls.VersionTLS12,
					InsecureSkipVerify: o.insecureSkipVerify, //nolint:gosec
				},
			},
		}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   bundle.Endpoint,
		apiKey:     bundle.APIKey,
	}, nil
}

// Search posts the payload to the upstream endpoint and returns its status
// and body unmodified.
func (c *Client) Search(ctx context.Context, payload []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream registry: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
