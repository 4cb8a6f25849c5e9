/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/gemeentenijmegen/haalcentraal-gateway/cmd/common"
	"github.com/gemeentenijmegen/haalcentraal-gateway/internal/logfields"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/client/haalcentraal"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/event/s3notification"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/healthchecks"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/observability/metrics"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/observability/metrics/noop"
	promprovider "github.com/gemeentenijmegen/haalcentraal-gateway/pkg/observability/metrics/prometheus"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/v1/healthcheck"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/v1/mw"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/v1/personen"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/restapi/v1/version"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/service/personsearch"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/service/subset"
	truststoresvc "github.com/gemeentenijmegen/haalcentraal-gateway/pkg/service/truststore"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/storage/awsecret/credentialstore"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/storage/dynamodb/profilestore"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/storage/s3/certstore"
	"github.com/gemeentenijmegen/haalcentraal-gateway/pkg/storage/s3/truststore"
)

var logger = log.New("gateway-rest")

const metricsProviderPrometheus = "prometheus"

type server interface {
	ListenAndServe(host string, handler http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, handler http.Handler) error {
	return http.ListenAndServe(host, handler) //nolint:gosec
}

// StartOpts configures the start command.
type StartOpts func(cmd *startCmdOpts)

type startCmdOpts struct {
	version       string
	serverVersion string
}

// WithVersion sets the build version reported on /version.
func WithVersion(version string) StartOpts {
	return func(opts *startCmdOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the server version reported on /version/system.
func WithServerVersion(serverVersion string) StartOpts {
	return func(opts *startCmdOpts) {
		opts.serverVersion = serverVersion
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(srv server, opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(srv, opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(srv server, opts ...StartOpts) *cobra.Command {
	cmdOpts := &startCmdOpts{}

	for _, opt := range opts {
		opt(cmdOpts)
	}

	return &cobra.Command{
		Use:   "start",
		Short: "Start gateway-rest",
		Long:  "Start the Haal Centraal BRP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			return startGateway(params, cmdOpts, srv)
		},
	}
}

//nolint:funlen
func startGateway(params *startupParameters, cmdOpts *startCmdOpts, srv server) error {
	if params.logLevel != "" {
		common.SetDefaultLogLevel(logger, params.logLevel)
	}

	ctx := context.Background()

	var cfgOpts []func(*awsconfig.LoadOptions) error

	if params.awsRegion != "" {
		cfgOpts = append(cfgOpts, awsconfig.WithRegion(params.awsRegion))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return fmt.Errorf("load aws configuration: %w", err)
	}

	bundle, err := credentialstore.NewStore(secretsmanager.NewFromConfig(awsConfig), credentialstore.Refs{
		Certificate: params.secretRefs.certificate,
		PrivateKey:  params.secretRefs.privateKey,
		CAChain:     params.secretRefs.caChain,
		Endpoint:    params.secretRefs.endpoint,
		APIKey:      params.secretRefs.apiKey,
	}).Load(ctx)
	if err != nil {
		return fmt.Errorf("load registry credentials: %w", err)
	}

	clientOpts := []haalcentraal.Opt{
		haalcentraal.WithTimeout(params.requestTimeout),
	}

	if params.devMode {
		logger.Warn("developer mode enabled, registry server certificate is not verified")

		clientOpts = append(clientOpts, haalcentraal.WithInsecureSkipVerify(true))
	}

	upstream, err := haalcentraal.New(bundle, clientOpts...)
	if err != nil {
		return fmt.Errorf("create registry client: %w", err)
	}

	metricsImpl, err := createMetrics(params)
	if err != nil {
		return err
	}

	dynamoDBClient := awsdynamodb.NewFromConfig(awsConfig)
	s3Client := awss3.NewFromConfig(awsConfig)

	searchSvc := personsearch.New(
		profilestore.NewStore(dynamoDBClient, params.profileTableName),
		upstream,
		metricsImpl,
	)

	subsetSvc := subset.New(searchSvc)

	startTrustStoreListener(ctx, params, s3Client, awsConfig, metricsImpl)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(mw.APIKeyIdentity())

	personen.NewController(e, personen.Config{
		SearchService: searchSvc,
		SubsetService: subsetSvc,
	})

	healthcheck.NewController(e, healthchecks.Get(&healthchecks.Config{
		DynamoDBClient:   dynamoDBClient,
		S3Client:         s3Client,
		ProfileTableName: params.profileTableName,
		CertBucketName:   params.certBucketName,
	}))

	version.NewController(e, version.Config{
		Version:       cmdOpts.version,
		ServerVersion: cmdOpts.serverVersion,
	})

	logger.Info("starting gateway-rest", logfields.WithHostURL(params.hostURL))

	return srv.ListenAndServe(params.hostURL, e)
}

// startTrustStoreListener wires the trust store rebuild pipeline and starts
// the certificate change listener. Both are optional: without a custom domain
// there is no trust store to manage, and without a queue there is nothing to
// react to.
func startTrustStoreListener(ctx context.Context, params *startupParameters,
	s3Client *awss3.Client, awsConfig aws.Config, metricsImpl metrics.Metrics) {
	if params.customDomainName == "" || params.certQueueURL == "" {
		logger.Info("trust store management disabled")

		return
	}

	trustSvc := truststoresvc.New(
		certstore.NewStore(s3Client, params.certBucketName),
		truststore.NewStore(s3Client, params.truststoreBucketName),
		apigatewayv2.NewFromConfig(awsConfig),
		params.customDomainName,
		metricsImpl,
	)

	listener := s3notification.NewListener(sqs.NewFromConfig(awsConfig), trustSvc, params.certQueueURL)

	go listener.Start(ctx)
}

func createMetrics(params *startupParameters) (metrics.Metrics, error) {
	if params.metricsProviderName != metricsProviderPrometheus {
		return noop.GetMetrics(), nil
	}

	if params.metricsHostURL == "" {
		return nil, fmt.Errorf("%s is required when the prometheus metrics provider is enabled",
			metricsHostFlagName)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{}))

	provider := promprovider.NewPrometheusProvider(&http.Server{ //nolint:gosec
		Addr:    params.metricsHostURL,
		Handler: mux,
	})

	go func() {
		if err := provider.Create(); err != nil {
			logger.Error("metrics server stopped", log.WithError(err))
		}
	}()

	return provider.Metrics(), nil
}
