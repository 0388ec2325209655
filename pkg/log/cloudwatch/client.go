// Package cloudwatch retrieves log events from AWS CloudWatch Logs, turning
// the token-paginated API into a single bounded fetch and an unbounded
// backward-in-time stream over one log stream.
package cloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/bascanada/awsgetlogs/pkg/ty"
)

// CWClient defines the subset of the AWS CloudWatch Logs client consumed by
// this package. This is used to allow for mocking in tests.
type CWClient interface {
	GetLogEvents(ctx context.Context, params *cloudwatchlogs.GetLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.GetLogEventsOutput, error)
	FilterLogEvents(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error)
}

// GetLogClient creates a new CloudWatch Logs client.
// It uses the 'region' and 'profile' from the options if provided.
func GetLogClient(options ty.MI) (CWClient, error) {
	var cfgOptions []func(*config.LoadOptions) error

	// If a region is specified in the config, add it to the SDK options.
	if region, ok := options.GetStringOk("region"); ok {
		cfgOptions = append(cfgOptions, config.WithRegion(region))
	}

	// If a profile is specified, add it to the SDK options.
	if profile, ok := options.GetStringOk("profile"); ok {
		cfgOptions = append(cfgOptions, config.WithSharedConfigProfile(profile))
	}

	// Load the default AWS configuration, applying our custom options.
	cfg, err := config.LoadDefaultConfig(context.TODO(), cfgOptions...)
	if err != nil {
		return nil, err
	}

	var clientOptions []func(*cloudwatchlogs.Options)
	// Custom endpoint, mostly for localstack setups.
	if endpoint, ok := options.GetStringOk("endpoint"); ok {
		clientOptions = append(clientOptions, func(o *cloudwatchlogs.Options) {
			o.BaseEndpoint = &endpoint
		})
	}

	return cloudwatchlogs.NewFromConfig(cfg, clientOptions...), nil
}
