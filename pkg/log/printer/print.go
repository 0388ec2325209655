// Package printer writes fetched log events to a terminal or any io.Writer.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TylerBrock/colorjson"
	"github.com/bascanada/awsgetlogs/pkg/log/cloudwatch"
	"github.com/fatih/color"
)

var (
	timestampColor = color.New(color.FgCyan)
	streamColor    = color.New(color.FgYellow)
)

// EventPrinter renders log events, one line per event, or as JSON.
type EventPrinter struct {
	Out io.Writer
	// JSONOutput emits the raw events as a JSON array instead of lines.
	JSONOutput bool
	// ExpandJSON pretty prints messages that are themselves JSON objects.
	ExpandJSON bool
}

// Print writes the events in the order they were surfaced.
func (p EventPrinter) Print(events []cloudwatch.LogEvent) error {
	if p.JSONOutput {
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}

	for _, event := range events {
		ts := time.UnixMilli(event.Timestamp).UTC().Format(time.RFC3339)
		line := timestampColor.Sprint(ts)
		if event.LogStreamName != "" {
			line += " " + streamColor.Sprintf("[%s]", event.LogStreamName)
		}
		line += " " + p.renderMessage(event.Message)
		if _, err := fmt.Fprintln(p.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintPage writes one streaming page.
func (p EventPrinter) PrintPage(page *cloudwatch.Page) error {
	if p.JSONOutput {
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}
	return p.Print(page.Events)
}

func (p EventPrinter) renderMessage(message string) string {
	if !p.ExpandJSON {
		return message
	}

	trimmed := strings.TrimSpace(message)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return message
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return message
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	pretty, err := f.Marshal(obj)
	if err != nil {
		return message
	}
	return "\n" + string(pretty)
}
