/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination cert_store_mocks_test.go -package certstore_test -source=cert_store.go -mock_names s3Client=MockS3Client

package certstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/gemeentenijmegen/haalcentraal-gateway/internal/logfields"
)

var logger = log.New("cert-store")

type s3Client interface {
	ListObjectsV2(
		ctx context.Context,
		input *s3.ListObjectsV2Input,
		opts ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)

	GetObject(
		ctx context.Context,
		input *s3.GetObjectInput,
		opts ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)
}

// Store reads the individual trust certificates from the certificate bucket,
// one PEM object per trusted client certificate.
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

// GetAll lists the bucket and fetches each object's content as a UTF-8
// string, in listing order. A per-object fetch failure (for example an
// object deleted between listing and get) is logged and skipped; only the
// successes are returned.
func (s *Store) GetAll(ctx context.Context) ([]string, error) {
	var certificates []string

	var continuationToken *string

	for {
		out, err := s.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("list certificate objects: %w", err)
		}

		for _, object := range out.Contents {
			if object.Key == nil {
				continue
			}

			content, err := s.getObject(ctx, *object.Key)
			if err != nil {
				logger.Warnc(ctx, "skipping certificate object", log.WithError(err),
					logfields.WithBucket(s.bucket), logfields.WithObjectKey(*object.Key))

				continue
			}

			certificates = append(certificates, content)
		}

		if out.NextContinuationToken == nil {
			break
		}

		continuationToken = out.NextContinuationToken
	}

	return certificates, nil
}

func (s *Store) getObject(ctx context.Context, key string) (string, error) {
	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", err
	}

	defer out.Body.Close() //nolint:errcheck

	buf := new(strings.Builder)
	if _, err = io.Copy(buf, out.Body); err != nil {
		return "", err
	}

	return buf.String(), nil
}
