/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination credential_store_mocks_test.go -package credentialstore_test -source=credential_store.go -mock_names secretsManagerClient=MockSecretsManagerClient

package credentialstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/samber/lo"
)

type secretsManagerClient interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// Bundle holds the secret material for calling the upstream registry.
// It is loaded once at startup and never mutated afterwards.
type Bundle struct {
	Certificate string
	PrivateKey  string
	CAChain     string
	Endpoint    string
	APIKey      string
}

// Refs are the secret references the bundle is loaded from.
type Refs struct {
	Certificate string
	PrivateKey  string
	CAChain     string
	Endpoint    string
	APIKey      string
}

// Store loads the upstream credential bundle from AWS Secrets Manager.
type Store struct {
	client secretsManagerClient
	refs   Refs
}

// NewStore creates Store.
func NewStore(client secretsManagerClient, refs Refs) *Store {
	return &Store{
		client: client,
		refs:   refs,
	}
}

// Load fetches all five secrets and validates completeness. An incomplete
// bundle is a configuration error, not a retryable condition.
func (s *Store) Load(ctx context.Context) (*Bundle, error) {
	bundle := &Bundle{}

	for _, secret := range []struct {
		name string
		ref  string
		dst  *string
	}{
		{name: "client certificate", ref: s.refs.Certificate, dst: &bundle.Certificate},
		{name: "client private key", ref: s.refs.PrivateKey, dst: &bundle.PrivateKey},
		{name: "certificate authority chain", ref: s.refs.CAChain, dst: &bundle.CAChain},
		{name: "endpoint url", ref: s.refs.Endpoint, dst: &bundle.Endpoint},
		{name: "api key", ref: s.refs.APIKey, dst: &bundle.APIKey},
	} {
		value, err := s.getSecret(ctx, secret.ref)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", secret.name, err)
		}

		*secret.dst = value
	}

	if missing := bundle.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("credential bundle incomplete: missing %s", strings.Join(missing, ", "))
	}

	return bundle, nil
}

func (s *Store) getSecret(ctx context.Context, ref string) (string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: lo.ToPtr(ref),
	})
	if err != nil {
		return "", err
	}

	if out.SecretString != nil {
		return *out.SecretString, nil
	}

	return string(out.SecretBinary), nil
}

func (b *Bundle) missing() []string {
	var missing []string

	for _, field := range []struct {
		name  string
		value string
	}{
		{name: "client certificate", value: b.Certificate},
		{name: "client private key", value: b.PrivateKey},
		{name: "certificate authority chain", value: b.CAChain},
		{name: "endpoint url", value: b.Endpoint},
		{name: "api key", value: b.APIKey},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}
