/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "Host:Port to run the gateway instance on."
	hostURLEnvKey        = "BRP_GATEWAY_HOST_URL"

	profileTableFlagName  = "profile-table-name"
	profileTableEnvKey    = "BRP_GATEWAY_PROFILE_TABLE_NAME"
	profileTableFlagUsage = "Name of the DynamoDB table holding application profiles. " +
		commonEnvVarUsageText + profileTableEnvKey

	certBucketFlagName  = "cert-bucket-name"
	certBucketEnvKey    = "BRP_GATEWAY_CERT_BUCKET_NAME"
	certBucketFlagUsage = "Name of the S3 bucket holding accepted client certificates. " +
		commonEnvVarUsageText + certBucketEnvKey

	truststoreBucketFlagName  = "truststore-bucket-name"
	truststoreBucketEnvKey    = "BRP_GATEWAY_TRUSTSTORE_BUCKET_NAME"
	truststoreBucketFlagUsage = "Name of the versioned S3 bucket the trust store bundle is published to. " +
		commonEnvVarUsageText + truststoreBucketEnvKey

	customDomainFlagName  = "custom-domain-name"
	customDomainEnvKey    = "BRP_GATEWAY_CUSTOM_DOMAIN_NAME"
	customDomainFlagUsage = "API Gateway custom domain whose mutual TLS trust store is managed. " +
		"If not set, trust store rebuilds are disabled. " + commonEnvVarUsageText + customDomainEnvKey

	certQueueFlagName  = "cert-notification-queue-url"
	certQueueEnvKey    = "BRP_GATEWAY_CERT_NOTIFICATION_QUEUE_URL"
	certQueueFlagUsage = "URL of the SQS queue receiving certificate bucket change notifications. " +
		"If not set, the gateway does not listen for certificate changes. " +
		commonEnvVarUsageText + certQueueEnvKey

	brpCertSecretFlagName  = "brp-cert-secret-id"
	brpCertSecretEnvKey    = "BRP_GATEWAY_BRP_CERT_SECRET_ID" //nolint: gosec
	brpCertSecretFlagUsage = "Secrets Manager id of the client certificate for the registry. " +
		commonEnvVarUsageText + brpCertSecretEnvKey

	brpKeySecretFlagName  = "brp-key-secret-id"
	brpKeySecretEnvKey    = "BRP_GATEWAY_BRP_KEY_SECRET_ID" //nolint: gosec
	brpKeySecretFlagUsage = "Secrets Manager id of the client private key for the registry. " +
		commonEnvVarUsageText + brpKeySecretEnvKey

	brpCASecretFlagName  = "brp-ca-secret-id"
	brpCASecretEnvKey    = "BRP_GATEWAY_BRP_CA_SECRET_ID" //nolint: gosec
	brpCASecretFlagUsage = "Secrets Manager id of the certificate authority chain of the registry. " +
		commonEnvVarUsageText + brpCASecretEnvKey

	brpEndpointSecretFlagName  = "brp-endpoint-secret-id"
	brpEndpointSecretEnvKey    = "BRP_GATEWAY_BRP_ENDPOINT_SECRET_ID" //nolint: gosec
	brpEndpointSecretFlagUsage = "Secrets Manager id of the registry endpoint url. " +
		commonEnvVarUsageText + brpEndpointSecretEnvKey

	brpAPIKeySecretFlagName  = "brp-api-key-secret-id"
	brpAPIKeySecretEnvKey    = "BRP_GATEWAY_BRP_API_KEY_SECRET_ID" //nolint: gosec
	brpAPIKeySecretFlagUsage = "Secrets Manager id of the registry api key. " +
		commonEnvVarUsageText + brpAPIKeySecretEnvKey

	awsRegionFlagName  = "aws-region"
	awsRegionEnvKey    = "BRP_GATEWAY_AWS_REGION"
	awsRegionFlagUsage = "AWS region of the gateway resources. If not set, the default " +
		"credential chain region is used. " + commonEnvVarUsageText + awsRegionEnvKey

	requestTimeoutFlagName  = "request-timeout"
	requestTimeoutEnvKey    = "BRP_GATEWAY_REQUEST_TIMEOUT"
	requestTimeoutFlagUsage = "Timeout for calls to the registry, as a Go duration (default 30s). " +
		commonEnvVarUsageText + requestTimeoutEnvKey

	devModeFlagName  = "dev-mode"
	devModeEnvKey    = "BRP_GATEWAY_DEV_MODE"
	devModeFlagUsage = "Developer mode skips verification of the registry server certificate. " +
		"Possible values: true, false (default: false). Never enable in production. " +
		commonEnvVarUsageText + devModeEnvKey

	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "BRP_GATEWAY_LOG_LEVEL"
	logLevelFlagUsage = "Logging level. Supported options: critical, error, warning, info, debug. " +
		"Defaults to info. " + commonEnvVarUsageText + logLevelEnvKey

	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderEnvKey    = "BRP_GATEWAY_METRICS_PROVIDER_NAME"
	metricsProviderFlagUsage = "Metrics provider. Supported options: prometheus. If not set, " +
		"metrics are disabled. " + commonEnvVarUsageText + metricsProviderEnvKey

	metricsHostFlagName  = "metrics-host-url"
	metricsHostEnvKey    = "BRP_GATEWAY_METRICS_HOST_URL"
	metricsHostFlagUsage = "Host:Port to serve prometheus metrics on. " +
		commonEnvVarUsageText + metricsHostEnvKey
)

const defaultRequestTimeout = 30 * time.Second

type secretRefs struct {
	certificate string
	privateKey  string
	caChain     string
	endpoint    string
	apiKey      string
}

type startupParameters struct {
	hostURL              string
	profileTableName     string
	certBucketName       string
	truststoreBucketName string
	customDomainName     string
	certQueueURL         string
	secretRefs           secretRefs
	awsRegion            string
	requestTimeout       time.Duration
	devMode              bool
	logLevel             string
	metricsProviderName  string
	metricsHostURL       string
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	profileTableName, err := cmdutils.GetUserSetVarFromString(cmd, profileTableFlagName, profileTableEnvKey, false)
	if err != nil {
		return nil, err
	}

	certBucketName, err := cmdutils.GetUserSetVarFromString(cmd, certBucketFlagName, certBucketEnvKey, false)
	if err != nil {
		return nil, err
	}

	truststoreBucketName, err := cmdutils.GetUserSetVarFromString(cmd, truststoreBucketFlagName,
		truststoreBucketEnvKey, false)
	if err != nil {
		return nil, err
	}

	customDomainName := cmdutils.GetUserSetOptionalVarFromString(cmd, customDomainFlagName, customDomainEnvKey)

	certQueueURL := cmdutils.GetUserSetOptionalVarFromString(cmd, certQueueFlagName, certQueueEnvKey)

	refs, err := getSecretRefs(cmd)
	if err != nil {
		return nil, err
	}

	awsRegion := cmdutils.GetUserSetOptionalVarFromString(cmd, awsRegionFlagName, awsRegionEnvKey)

	requestTimeout, err := getDuration(cmd, requestTimeoutFlagName, requestTimeoutEnvKey, defaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	devMode, err := getDevMode(cmd)
	if err != nil {
		return nil, err
	}

	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, logLevelFlagName, logLevelEnvKey)

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)

	metricsHostURL := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsHostFlagName, metricsHostEnvKey)

	return &startupParameters{
		hostURL:              hostURL,
		profileTableName:     profileTableName,
		certBucketName:       certBucketName,
		truststoreBucketName: truststoreBucketName,
		customDomainName:     customDomainName,
		certQueueURL:         certQueueURL,
		secretRefs:           refs,
		awsRegion:            awsRegion,
		requestTimeout:       requestTimeout,
		devMode:              devMode,
		logLevel:             logLevel,
		metricsProviderName:  metricsProviderName,
		metricsHostURL:       metricsHostURL,
	}, nil
}

func getSecretRefs(cmd *cobra.Command) (secretRefs, error) {
	refs := secretRefs{}

	for _, secret := range []struct {
		flagName string
		envKey   string
		dst      *string
	}{
		{flagName: brpCertSecretFlagName, envKey: brpCertSecretEnvKey, dst: &refs.certificate},
		{flagName: brpKeySecretFlagName, envKey: brpKeySecretEnvKey, dst: &refs.privateKey},
		{flagName: brpCASecretFlagName, envKey: brpCASecretEnvKey, dst: &refs.caChain},
		{flagName: brpEndpointSecretFlagName, envKey: brpEndpointSecretEnvKey, dst: &refs.endpoint},
		{flagName: brpAPIKeySecretFlagName, envKey: brpAPIKeySecretEnvKey, dst: &refs.apiKey},
	} {
		value, err := cmdutils.GetUserSetVarFromString(cmd, secret.flagName, secret.envKey, false)
		if err != nil {
			return secretRefs{}, err
		}

		*secret.dst = value
	}

	return refs, nil
}

func getDevMode(cmd *cobra.Command) (bool, error) {
	devModeString := cmdutils.GetUserSetOptionalVarFromString(cmd, devModeFlagName, devModeEnvKey)
	if devModeString == "" {
		return false, nil
	}

	devMode, err := strconv.ParseBool(devModeString)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", devModeFlagName, devModeString, err)
	}

	return devMode, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutString := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if timeoutString == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutString)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutString, err)
	}

	return timeout, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(profileTableFlagName, "", "", profileTableFlagUsage)
	startCmd.Flags().StringP(certBucketFlagName, "", "", certBucketFlagUsage)
	startCmd.Flags().StringP(truststoreBucketFlagName, "", "", truststoreBucketFlagUsage)
	startCmd.Flags().StringP(customDomainFlagName, "", "", customDomainFlagUsage)
	startCmd.Flags().StringP(certQueueFlagName, "", "", certQueueFlagUsage)
	startCmd.Flags().StringP(brpCertSecretFlagName, "", "", brpCertSecretFlagUsage)
	startCmd.Flags().StringP(brpKeySecretFlagName, "", "", brpKeySecretFlagUsage)
	startCmd.Flags().StringP(brpCASecretFlagName, "", "", brpCASecretFlagUsage)
	startCmd.Flags().StringP(brpEndpointSecretFlagName, "", "", brpEndpointSecretFlagUsage)
	startCmd.Flags().StringP(brpAPIKeySecretFlagName, "", "", brpAPIKeySecretFlagUsage)
	startCmd.Flags().StringP(awsRegionFlagName, "", "", awsRegionFlagUsage)
	startCmd.Flags().StringP(requestTimeoutFlagName, "", "", requestTimeoutFlagUsage)
	startCmd.Flags().StringP(devModeFlagName, "", "", devModeFlagUsage)
	startCmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", metricsProviderFlagUsage)
	startCmd.Flags().StringP(metricsHostFlagName, "", "", metricsHostFlagUsage)
}
