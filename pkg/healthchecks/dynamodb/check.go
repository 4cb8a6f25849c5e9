/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination check_mocks_test.go -package dynamodb_test -source=check.go

package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/samber/lo"
)

type describeTableClient interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput,
		optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// New returns a health check that verifies the profile table is reachable.
func New(client describeTableClient, tableName string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: lo.ToPtr(tableName),
		}); err != nil {
			return fmt.Errorf("failed to describe table %s: %w", tableName, err)
		}

		return nil
	}
}
