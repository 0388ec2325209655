package cloudwatch

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/bascanada/awsgetlogs/pkg/ty"
)

// Defaults applied when a fetch request does not name a group or stream.
const (
	DefaultLogGroup  = "default"
	DefaultLogStream = "default"
)

// LogEvent is a single event as returned by the service, never modified locally.
// LogStreamName and EventID are only populated by the filter operation.
type LogEvent struct {
	Timestamp     int64  `json:"timestamp"`
	Message       string `json:"message"`
	IngestionTime int64  `json:"ingestionTime"`
	LogStreamName string `json:"logStreamName,omitempty"`
	EventID       string `json:"eventId,omitempty"`
}

// SearchedStream reports whether a stream was fully scanned in one page.
type SearchedStream struct {
	LogStreamName      string `json:"logStreamName"`
	SearchedCompletely bool   `json:"searchedCompletely"`
}

// Page is the result of one remote call. A set NextToken means more pages may
// exist and must be threaded into the next call; its absence is the only
// termination signal for the current direction.
type Page struct {
	Events          []LogEvent       `json:"events"`
	SearchedStreams []SearchedStream `json:"searchedStreams,omitempty"`
	NextToken       ty.Opt[string]   `json:"nextToken"`
}

// FetchRequest holds the immutable parameters of a single bounded fetch.
type FetchRequest struct {
	LogGroup  string
	LogStream ty.Opt[string]
	// epoch millis
	StartTime ty.Opt[int64]
	EndTime   ty.Opt[int64]
	// max events per page, the service default applies when unset
	Limit ty.Opt[int32]
	// Backward reads from the tail of the stream instead of the head.
	Backward bool
}

func fromOutputEvents(events []types.OutputLogEvent) []LogEvent {
	out := make([]LogEvent, 0, len(events))
	for _, e := range events {
		out = append(out, LogEvent{
			Timestamp:     aws.ToInt64(e.Timestamp),
			Message:       aws.ToString(e.Message),
			IngestionTime: aws.ToInt64(e.IngestionTime),
		})
	}
	return out
}

func fromFilteredOutput(output *cloudwatchlogs.FilterLogEventsOutput) *Page {
	page := &Page{
		Events:          make([]LogEvent, 0, len(output.Events)),
		SearchedStreams: make([]SearchedStream, 0, len(output.SearchedLogStreams)),
	}
	for _, e := range output.Events {
		page.Events = append(page.Events, LogEvent{
			Timestamp:     aws.ToInt64(e.Timestamp),
			Message:       aws.ToString(e.Message),
			IngestionTime: aws.ToInt64(e.IngestionTime),
			LogStreamName: aws.ToString(e.LogStreamName),
			EventID:       aws.ToString(e.EventId),
		})
	}
	for _, s := range output.SearchedLogStreams {
		page.SearchedStreams = append(page.SearchedStreams, SearchedStream{
			LogStreamName:      aws.ToString(s.LogStreamName),
			SearchedCompletely: aws.ToBool(s.SearchedCompletely),
		})
	}
	if output.NextToken != nil {
		page.NextToken.S(*output.NextToken)
	}
	return page
}
