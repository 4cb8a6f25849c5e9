/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldApplicationID     = "applicationID"
	FieldSearchType        = "searchType"
	FieldRequestedFields   = "requestedFields"
	FieldBucket            = "bucket"
	FieldObjectKey         = "objectKey"
	FieldStage             = "stage"
	FieldDomainName        = "domainName"
	FieldTruststoreVersion = "truststoreVersion"
	FieldCertificateCount  = "certificateCount"
	FieldQueueURL          = "queueURL"
	FieldEventName         = "eventName"
	FieldCorrelationID     = "correlationID"
	FieldDuration          = "duration"
	FieldUserLogLevel      = "userLogLevel"
	FieldHostURL           = "hostURL"
)

// WithApplicationID sets the ApplicationID field.
func WithApplicationID(applicationID string) zap.Field {
	return zap.String(FieldApplicationID, applicationID)
}

// WithSearchType sets the SearchType field.
func WithSearchType(searchType string) zap.Field {
	return zap.String(FieldSearchType, searchType)
}

// WithRequestedFields sets the RequestedFields field.
func WithRequestedFields(fields []string) zap.Field {
	return zap.Strings(FieldRequestedFields, fields)
}

// WithBucket sets the Bucket field.
func WithBucket(bucket string) zap.Field {
	return zap.String(FieldBucket, bucket)
}

// WithObjectKey sets the ObjectKey field.
func WithObjectKey(objectKey string) zap.Field {
	return zap.String(FieldObjectKey, objectKey)
}

// WithStage sets the Stage field.
func WithStage(stage string) zap.Field {
	return zap.String(FieldStage, stage)
}

// WithDomainName sets the DomainName field.
func WithDomainName(domainName string) zap.Field {
	return zap.String(FieldDomainName, domainName)
}

// WithTruststoreVersion sets the TruststoreVersion field.
func WithTruststoreVersion(version string) zap.Field {
	return zap.String(FieldTruststoreVersion, version)
}

// WithCertificateCount sets the CertificateCount field.
func WithCertificateCount(count int) zap.Field {
	return zap.Int(FieldCertificateCount, count)
}

// WithQueueURL sets the QueueURL field.
func WithQueueURL(queueURL string) zap.Field {
	return zap.String(FieldQueueURL, queueURL)
}

// WithEventName sets the EventName field.
func WithEventName(eventName string) zap.Field {
	return zap.String(FieldEventName, eventName)
}

// WithCorrelationID sets the CorrelationID field.
func WithCorrelationID(correlationID string) zap.Field {
	return zap.String(FieldCorrelationID, correlationID)
}

// WithDuration sets the Duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(userLogLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, userLogLevel)
}

// WithHostURL sets the HostURL field.
func WithHostURL(hostURL string) zap.Field {
	return zap.String(FieldHostURL, hostURL)
}
