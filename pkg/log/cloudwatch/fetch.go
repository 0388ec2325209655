package cloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"go.uber.org/zap"
)

// Fetcher performs bounded fetches of log events for one group and stream.
type Fetcher struct {
	client     CWClient
	log        *zap.Logger
	translator *ErrorTranslator
}

func NewFetcher(client CWClient, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:     client,
		log:        logger,
		translator: NewErrorTranslator(logger),
	}
}

// GetLogs retrieves log events for the request, following continuation tokens
// in the requested direction until the service stops advancing them. Events
// are returned in the order the service produced them. On a remote failure no
// partial result is returned; the failure is translated and the process ends.
func (f *Fetcher) GetLogs(ctx context.Context, req FetchRequest) ([]LogEvent, error) {
	logGroup := req.LogGroup
	if logGroup == "" {
		logGroup = DefaultLogGroup
	}
	logStream := DefaultLogStream
	if req.LogStream.Set {
		logStream = req.LogStream.Value
	}

	input := &cloudwatchlogs.GetLogEventsInput{
		LogGroupName:  aws.String(logGroup),
		LogStreamName: aws.String(logStream),
		StartFromHead: aws.Bool(!req.Backward),
	}
	if req.StartTime.Set {
		input.StartTime = aws.Int64(req.StartTime.Value)
	}
	if req.EndTime.Set {
		input.EndTime = aws.Int64(req.EndTime.Value)
	}
	if req.Limit.Set {
		input.Limit = aws.Int32(req.Limit.Value)
	}

	var events []LogEvent
	for {
		output, err := f.client.GetLogEvents(ctx, input)
		if err != nil {
			return nil, f.translator.Fatal(err)
		}

		events = append(events, fromOutputEvents(output.Events)...)

		next := output.NextForwardToken
		if req.Backward {
			next = output.NextBackwardToken
		}
		// The service signals exhaustion by echoing back the token it was
		// given. Identical forward and backward tokens mean the call made no
		// progress in either direction.
		if next == nil ||
			aws.ToString(next) == aws.ToString(input.NextToken) ||
			aws.ToString(output.NextForwardToken) == aws.ToString(output.NextBackwardToken) {
			break
		}
		input.NextToken = next
	}

	f.log.Debug("bounded fetch done",
		zap.String("logGroup", logGroup),
		zap.String("logStream", logStream),
		zap.Int("events", len(events)))

	return events, nil
}
