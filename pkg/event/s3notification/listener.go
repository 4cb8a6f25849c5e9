/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination listener_mocks_test.go -package s3notification_test -source=listener.go

// Package s3notification drives trust store rebuilds from the certificate
// bucket's change notifications, delivered through an SQS queue.
package s3notification

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/gemeentenijmegen/haalcentraal-gateway/internal/logfields"
)

var logger = log.New("s3-notification")

const (
	maxMessages     = 10
	waitTimeSeconds = 20
)

type sqsClient interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput,
		optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput,
		optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type rebuilder interface {
	Rebuild(ctx context.Context) error
}

// s3Event is the notification payload the bucket publishes on object changes.
type s3Event struct {
	Records []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Object struct {
				Key string `json:"key"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}

// Listener polls the notification queue and triggers a trust store rebuild
// for every certificate change. A message is only deleted after a successful
// rebuild, so failed rebuilds are retried through queue redelivery.
type Listener struct {
	client   sqsClient
	service  rebuilder
	queueURL string
}

// NewListener returns a listener for the given notification queue.
func NewListener(client sqsClient, service rebuilder, queueURL string) *Listener {
	return &Listener{
		client:   client,
		service:  service,
		queueURL: queueURL,
	}
}

// Start polls the queue until ctx is canceled. Receive errors are retried
// with exponential backoff.
func (l *Listener) Start(ctx context.Context) {
	logger.Infoc(ctx, "listening for certificate changes", logfields.WithQueueURL(l.queueURL))

	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	for ctx.Err() == nil {
		out, err := l.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            lo.ToPtr(l.queueURL),
			MaxNumberOfMessages: maxMessages,
			WaitTimeSeconds:     waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				break
			}

			next := bo.NextBackOff()
			if next == backoff.Stop {
				next = time.Minute
			}

			logger.Errorc(ctx, "receive notification messages", log.WithError(err))

			select {
			case <-time.After(next):
			case <-ctx.Done():
			}

			continue
		}

		bo.Reset()

		l.handleBatch(ctx, out.Messages)
	}

	logger.Infoc(ctx, "stopped listening for certificate changes")
}

func (l *Listener) handleBatch(ctx context.Context, messages []sqstypes.Message) {
	for _, msg := range messages {
		correlationID := uuid.NewString()

		if l.handleMessage(ctx, correlationID, msg) {
			if _, err := l.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
				QueueUrl:      lo.ToPtr(l.queueURL),
				ReceiptHandle: msg.ReceiptHandle,
			}); err != nil {
				logger.Warnc(ctx, "delete notification message", log.WithError(err),
					logfields.WithCorrelationID(correlationID))
			}
		}
	}
}

// handleMessage reports whether the message is fully processed and may be
// deleted. Messages that do not describe an object change are deleted without
// a rebuild; rebuild failures leave the message queued for redelivery.
func (l *Listener) handleMessage(ctx context.Context, correlationID string, msg sqstypes.Message) bool {
	var event s3Event

	if err := json.Unmarshal([]byte(lo.FromPtr(msg.Body)), &event); err != nil {
		logger.Warnc(ctx, "discarding unparseable notification", log.WithError(err),
			logfields.WithCorrelationID(correlationID))

		return true
	}

	if !objectChanged(event) {
		return true
	}

	for _, record := range event.Records {
		logger.Infoc(ctx, "certificate object changed",
			logfields.WithCorrelationID(correlationID),
			logfields.WithEventName(record.EventName),
			logfields.WithObjectKey(record.S3.Object.Key))
	}

	if err := l.service.Rebuild(ctx); err != nil {
		logger.Errorc(ctx, "rebuild trust store", log.WithError(err),
			logfields.WithCorrelationID(correlationID))

		return false
	}

	return true
}

func objectChanged(event s3Event) bool {
	for _, record := range event.Records {
		if strings.HasPrefix(record.EventName, "ObjectCreated:") ||
			strings.HasPrefix(record.EventName, "ObjectRemoved:") {
			return true
		}
	}

	return false
}
