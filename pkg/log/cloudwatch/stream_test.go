package cloudwatch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/aws/smithy-go"
	"github.com/bascanada/awsgetlogs/pkg/ty"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestStreamFilter_FirstPage(t *testing.T) {
	calls := 0
	expectedStart := time.Now().Add(-3 * time.Hour).UnixMilli()
	mockClient := &mockCWClient{
		FilterLogEventsFunc: func(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error) {
			calls++
			assert.Equal(t, "log_group", aws.ToString(params.LogGroupName))
			assert.Equal(t, []string{"log_stream"}, params.LogStreamNames)
			assert.Equal(t, int32(1), aws.ToInt32(params.Limit))
			assert.Nil(t, params.NextToken)
			assert.InDelta(t, expectedStart, aws.ToInt64(params.StartTime), 5000)
			return &cloudwatchlogs.FilterLogEventsOutput{
				Events: []types.FilteredLogEvent{
					{
						LogStreamName: aws.String("string"),
						Timestamp:     aws.Int64(123),
						Message:       aws.String("string"),
						IngestionTime: aws.Int64(123),
						EventId:       aws.String("string"),
					},
				},
				SearchedLogStreams: []types.SearchedLogStream{
					{LogStreamName: aws.String("string"), SearchedCompletely: aws.Bool(true)},
				},
			}, nil
		},
	}

	logger, logs := newObservedLogger(zapcore.InfoLevel)
	stream := NewStreamFilter(mockClient, logger, "log_group", "log_stream", ty.OptWrap[int32](1))

	// both notices are logged at construction, before any remote call
	records := logs.All()
	assert.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, zapcore.InfoLevel, record.Level, "Wrong log message.")
	}
	assert.True(t, strings.HasPrefix(records[0].Message, "Going '3 hours' back in time."), "Wrong log message.")
	assert.True(t, strings.HasPrefix(records[1].Message, "Limiting results to '1'."), "Wrong log message.")

	page, err := stream.Next(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, page.Events, 1)
	assert.Equal(t, "string", page.Events[0].LogStreamName)
	assert.Equal(t, int64(123), page.Events[0].Timestamp)
	assert.Equal(t, "string", page.Events[0].Message)
	assert.Equal(t, int64(123), page.Events[0].IngestionTime)
	assert.Equal(t, "string", page.Events[0].EventID)
	assert.Len(t, page.SearchedStreams, 1)
	assert.True(t, page.SearchedStreams[0].SearchedCompletely)
	assert.False(t, page.NextToken.Set)

	// a token-less page does not stop the stream, the next pull re-queries
	// the same window without a token
	_, err = stream.Next(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	// no further records beyond the two construction notices
	assert.Len(t, logs.All(), 2)
}

func TestStreamFilter_TwoRuns(t *testing.T) {
	calls := 0
	mockClient := &mockCWClient{
		FilterLogEventsFunc: func(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error) {
			calls++
			switch calls {
			case 1:
				assert.Nil(t, params.NextToken)
				return &cloudwatchlogs.FilterLogEventsOutput{
					Events: []types.FilteredLogEvent{
						{
							LogStreamName: aws.String("string"),
							Timestamp:     aws.Int64(123),
							Message:       aws.String("string"),
							IngestionTime: aws.Int64(123),
							EventId:       aws.String("string"),
						},
					},
					SearchedLogStreams: []types.SearchedLogStream{
						{LogStreamName: aws.String("string"), SearchedCompletely: aws.Bool(true)},
					},
					NextToken: aws.String("next_token"),
				}, nil
			default:
				// the previous page's token is passed verbatim
				assert.Equal(t, "next_token", aws.ToString(params.NextToken))
				return &cloudwatchlogs.FilterLogEventsOutput{
					Events: []types.FilteredLogEvent{
						{
							LogStreamName: aws.String("string_"),
							Timestamp:     aws.Int64(1234),
							Message:       aws.String("string_"),
							IngestionTime: aws.Int64(1234),
							EventId:       aws.String("string_"),
						},
					},
					SearchedLogStreams: []types.SearchedLogStream{
						{LogStreamName: aws.String("string_"), SearchedCompletely: aws.Bool(false)},
					},
				}, nil
			}
		},
	}

	logger, logs := newObservedLogger(zapcore.InfoLevel)
	stream := NewStreamFilter(mockClient, logger, "log_group", "log_stream", ty.OptWrap[int32](1))

	first, err := stream.Next(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "string", first.Events[0].Message)
	assert.True(t, first.NextToken.Set)
	assert.Equal(t, "next_token", first.NextToken.Value)

	second, err := stream.Next(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "string_", second.Events[0].Message)
	assert.False(t, second.NextToken.Set)
	assert.False(t, second.SearchedStreams[0].SearchedCompletely)

	records := logs.All()
	assert.Len(t, records, 2)
	assert.True(t, strings.HasPrefix(records[0].Message, "Going '3 hours' back in time."), "Wrong log message.")
	assert.True(t, strings.HasPrefix(records[1].Message, "Limiting results to '1'."), "Wrong log message.")
}

func TestStreamFilter_NoLimit(t *testing.T) {
	mockClient := &mockCWClient{
		FilterLogEventsFunc: func(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error) {
			assert.Nil(t, params.Limit)
			return &cloudwatchlogs.FilterLogEventsOutput{}, nil
		},
	}

	logger, logs := newObservedLogger(zapcore.InfoLevel)
	stream := NewStreamFilter(mockClient, logger, "log_group", "log_stream", ty.Opt[int32]{})

	records := logs.All()
	assert.Len(t, records, 1)
	assert.True(t, strings.HasPrefix(records[0].Message, "Going '3 hours' back in time."), "Wrong log message.")

	_, err := stream.Next(context.Background())
	assert.NoError(t, err)
}

func TestStreamFilter_NoCredentialsError(t *testing.T) {
	calls := 0
	mockClient := &mockCWClient{
		FilterLogEventsFunc: func(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error) {
			calls++
			return nil, &smithy.GenericAPIError{Code: "NoCredentialsError", Message: "unable to locate credentials"}
		},
	}

	logger, logs := newObservedLogger(zapcore.ErrorLevel)
	stream := NewStreamFilter(mockClient, logger, "log_group", "log_stream", ty.Opt[int32]{})

	exitCode := -1
	stream.translator.exit = func(code int) { exitCode = code }

	page, err := stream.Next(context.Background())
	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, exitCode)

	records := logs.All()
	assert.Len(t, records, 1)
	assert.Equal(t, zapcore.ErrorLevel, records[0].Level)
	assert.True(t, strings.HasPrefix(records[0].Message, "Could not find AWS credentials. Error: "), "Wrong log message.")
}

func TestStreamFilter_ClientError(t *testing.T) {
	calls := 0
	mockClient := &mockCWClient{
		FilterLogEventsFunc: func(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error) {
			calls++
			return nil, &smithy.GenericAPIError{Code: "ClientError", Message: "boom"}
		},
	}

	logger, logs := newObservedLogger(zapcore.ErrorLevel)
	stream := NewStreamFilter(mockClient, logger, "log_group", "log_stream", ty.Opt[int32]{})

	exitCode := -1
	stream.translator.exit = func(code int) { exitCode = code }

	page, err := stream.Next(context.Background())
	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, exitCode)

	records := logs.All()
	assert.Len(t, records, 1)
	assert.Equal(t, zapcore.ErrorLevel, records[0].Level)
	assert.True(t, strings.HasPrefix(records[0].Message, "Error: "), "Wrong log message.")
}
