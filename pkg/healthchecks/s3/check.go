/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination check_mocks_test.go -package s3_test -source=check.go

package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/samber/lo"
)

type headBucketClient interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput,
		optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// New returns a health check that verifies the bucket is reachable.
func New(client headBucketClient, bucket string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: lo.ToPtr(bucket),
		}); err != nil {
			return fmt.Errorf("failed to reach bucket %s: %w", bucket, err)
		}

		return nil
	}
}
