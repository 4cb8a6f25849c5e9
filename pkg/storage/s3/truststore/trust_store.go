/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination trust_store_mocks_test.go -package truststore_test -source=trust_store.go -mock_names s3Client=MockS3Client

package truststore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	// ObjectKey is the fixed key of the bundle object consumed by the
	// routing platform's mutual-TLS configuration.
	ObjectKey = "truststore.pem"

	contentType = "application/x-pem-file"
)

type s3Client interface {
	PutObject(
		ctx context.Context,
		input *s3.PutObjectInput,
		opts ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

// Store writes the concatenated PEM bundle into the trust-store bucket.
// The bucket is versioned; every upload produces a new immutable version.
type Store struct {
	s3Client s3Client
	bucket   string
}

// NewStore creates Store.
func NewStore(s3Client s3Client, bucket string) *Store {
	return &Store{
		s3Client: s3Client,
		bucket:   bucket,
	}
}

// Upload stores the bundle under the fixed object key and returns the new
// object version id. A missing version id fails the upload: the domain
// pointer must only ever reference versions returned here.
func (s *Store) Upload(ctx context.Context, bundle string) (string, error) {
	out, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Body:        strings.NewReader(bundle),
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(ObjectKey),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload trust store bundle: %w", err)
	}

	if out.VersionId == nil || *out.VersionId == "" {
		return "", fmt.Errorf("upload of %s returned no version id: bucket %s is not versioned",
			ObjectKey, s.bucket)
	}

	return *out.VersionId, nil
}
