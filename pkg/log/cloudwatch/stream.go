package cloudwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/bascanada/awsgetlogs/pkg/ty"
	"go.uber.org/zap"
)

// lookBack is the fixed window scanned backward from "now".
const lookBack = 3 * time.Hour

// StreamFilter lazily pages through the events of one log stream, starting a
// fixed look-back window in the past. It never terminates on its own: when a
// page arrives without a continuation token the next pull re-queries the same
// window from its start, so the caller bounds consumption (page count,
// wall clock, or a cancelled context). Not safe for concurrent iteration.
type StreamFilter struct {
	client     CWClient
	translator *ErrorTranslator

	logGroup  string
	logStream string
	limit     ty.Opt[int32]
	startTime int64

	// continuation token of the previous page, passed verbatim on the next call
	nextToken *string
}

// NewStreamFilter computes the look-back start time and logs the decision,
// and the limit if one was supplied, before any remote call is made.
func NewStreamFilter(client CWClient, logger *zap.Logger, logGroup, logStream string, limit ty.Opt[int32]) *StreamFilter {
	logger.Info(fmt.Sprintf("Going '%d hours' back in time.", int(lookBack.Hours())))
	if limit.Set {
		logger.Info(fmt.Sprintf("Limiting results to '%d'.", limit.Value))
	}

	return &StreamFilter{
		client:     client,
		translator: NewErrorTranslator(logger),
		logGroup:   logGroup,
		logStream:  logStream,
		limit:      limit,
		startTime:  time.Now().Add(-lookBack).UnixMilli(),
	}
}

// Next performs exactly one filter call and returns its page. A page is
// always returned before any decision about further pagination, even when the
// service already reports no continuation token.
func (s *StreamFilter) Next(ctx context.Context) (*Page, error) {
	input := &cloudwatchlogs.FilterLogEventsInput{
		LogGroupName:   aws.String(s.logGroup),
		LogStreamNames: []string{s.logStream},
		StartTime:      aws.Int64(s.startTime),
		NextToken:      s.nextToken,
	}
	if s.limit.Set {
		input.Limit = aws.Int32(s.limit.Value)
	}

	output, err := s.client.FilterLogEvents(ctx, input)
	if err != nil {
		return nil, s.translator.Fatal(err)
	}

	s.nextToken = output.NextToken

	return fromFilteredOutput(output), nil
}
