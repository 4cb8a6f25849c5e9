/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"github.com/alexliesenfeld/health"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/healthchecks/dynamodb"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/healthchecks/s3"
)

type Config struct {
	DynamoDBClient   *awsdynamodb.Client
	S3Client         *awss3.Client
	ProfileTableName string
	CertBucketName   string
}

func Get(config *Config) []health.Check {
	return []health.Check{
		{
			Name:               "profile-table",
			Check:              dynamodb.New(config.DynamoDBClient, config.ProfileTableName),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		},
		{
			Name:               "cert-bucket",
			Check:              s3.New(config.S3Client, config.CertBucketName),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		},
	}
}
