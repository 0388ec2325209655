package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bascanada/awsgetlogs/pkg/log/cloudwatch"
	"github.com/bascanada/awsgetlogs/pkg/ty"
	"github.com/spf13/cobra"
)

var (
	filterLogGroup  string
	filterLogStream string
	filterLimit     int32
	filterPages     int
	filterInterval  time.Duration
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Continuously filter the events of a stream, scanning three hours back",
	Long: `Filter pulls pages of events for one log stream, starting three hours in
the past and following continuation tokens. It never stops by itself: bound it
with --pages or interrupt it with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := cloudwatch.GetLogClient(clientOptions(cfg))
		if err != nil {
			return err
		}

		var limit ty.Opt[int32]
		if cmd.Flags().Changed("limit") {
			limit.S(filterLimit)
		} else if cfg.Limit.Set {
			limit = cfg.Limit
		}

		logGroup := firstNonEmpty(filterLogGroup, cfg.LogGroup, cloudwatch.DefaultLogGroup)
		logStream := firstNonEmpty(filterLogStream, cfg.LogStream, cloudwatch.DefaultLogStream)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stream := cloudwatch.NewStreamFilter(client, logger, logGroup, logStream, limit)
		out := eventPrinter()

		for page := 0; filterPages == 0 || page < filterPages; page++ {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			result, err := stream.Next(ctx)
			if err != nil {
				return err
			}
			if err := out.PrintPage(result); err != nil {
				return err
			}

			if filterInterval > 0 {
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(filterInterval):
				}
			}
		}
		return nil
	},
}

func init() {
	filterCmd.Flags().StringVarP(&filterLogGroup, "group", "g", "", "log group name")
	filterCmd.Flags().StringVarP(&filterLogStream, "stream", "s", "", "log stream name")
	filterCmd.Flags().Int32Var(&filterLimit, "limit", 0, "max events per page")
	filterCmd.Flags().IntVar(&filterPages, "pages", 0, "stop after this many pages, 0 runs until interrupted")
	filterCmd.Flags().DurationVar(&filterInterval, "interval", 0, "pause between pulls")
}
