/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination profile_store_mocks_test.go -package profilestore_test -source=profile_store.go -mock_names dynamoDBClient=MockDynamoDBClient

package profilestore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/profile"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/resterr"
)

type dynamoDBClient interface {
	GetItem(
		ctx context.Context,
		input *dynamodb.GetItemInput,
		opts ...func(*dynamodb.Options),
	) (*dynamodb.GetItemOutput, error)
}

// Store reads application profiles from the policy table. Lookups are never
// cached: revocations in the table take effect on the next request.
type Store struct {
	client    dynamoDBClient
	tableName string
}

// NewStore creates Store.
func NewStore(client dynamoDBClient, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// Get returns the profile keyed by the application id (the API key
// identifier), or resterr.ErrProfileNotFound when no item exists.
func (s *Store) Get(ctx context.Context, applicationID profile.ID) (*profile.Application, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: applicationID},
		},
		// Consistent read so an administrator's revocation is visible on the
		// very next lookup.
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get application profile: %w", err)
	}

	if out.Item == nil {
		return nil, resterr.ErrProfileNotFound
	}

	app := &profile.Application{}
	if err = attributevalue.UnmarshalMap(out.Item, app); err != nil {
		return nil, fmt.Errorf("unmarshal application profile: %w", err)
	}

	return app, nil
}
