package cmd

import (
	"os"
	"time"

	"github.com/bascanada/awsgetlogs/pkg/log/cloudwatch"
	"github.com/bascanada/awsgetlogs/pkg/log/printer"
	"github.com/bascanada/awsgetlogs/pkg/ty"
	"github.com/spf13/cobra"
)

var (
	getLogGroup  string
	getLogStream string
	getStart     string
	getEnd       string
	getLimit     int32
	getBackward  bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch the log events of a stream once, following pagination to the end",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := cloudwatch.GetLogClient(clientOptions(cfg))
		if err != nil {
			return err
		}

		req := cloudwatch.FetchRequest{
			LogGroup: firstNonEmpty(getLogGroup, cfg.LogGroup),
			Backward: getBackward,
		}
		if stream := firstNonEmpty(getLogStream, cfg.LogStream); stream != "" {
			req.LogStream.S(stream)
		}
		if getStart != "" {
			millis, err := ty.EpochMillis(getStart, time.Now())
			if err != nil {
				return err
			}
			req.StartTime.S(millis)
		}
		if getEnd != "" {
			millis, err := ty.EpochMillis(getEnd, time.Now())
			if err != nil {
				return err
			}
			req.EndTime.S(millis)
		}
		if cmd.Flags().Changed("limit") {
			req.Limit.S(getLimit)
		} else if cfg.Limit.Set {
			req.Limit = cfg.Limit
		}

		fetcher := cloudwatch.NewFetcher(client, logger)
		events, err := fetcher.GetLogs(cmd.Context(), req)
		if err != nil {
			return err
		}

		return eventPrinter().Print(events)
	},
}

func eventPrinter() printer.EventPrinter {
	var explicit *bool
	if noColor {
		v := false
		explicit = &v
	}
	printer.InitColorState(explicit, os.Stdout)
	return printer.EventPrinter{
		Out:        os.Stdout,
		JSONOutput: jsonOutput,
		ExpandJSON: expandJSON,
	}
}

func init() {
	getCmd.Flags().StringVarP(&getLogGroup, "group", "g", "", "log group name")
	getCmd.Flags().StringVarP(&getLogStream, "stream", "s", "", "log stream name")
	getCmd.Flags().StringVar(&getStart, "start", "", "start time, RFC3339 or a duration back from now (1h30m)")
	getCmd.Flags().StringVar(&getEnd, "end", "", "end time, RFC3339 or a duration back from now")
	getCmd.Flags().Int32Var(&getLimit, "limit", 0, "max events per page")
	getCmd.Flags().BoolVar(&getBackward, "backward", false, "read from the tail of the stream")
}
