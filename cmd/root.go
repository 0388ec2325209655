// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"fmt"
	"os"

	"github.com/bascanada/awsgetlogs/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	region     string
	profile    string
	endpoint   string
	noColor    bool
	jsonOutput bool
	expandJSON bool

	loggerOptions log.Options
	logger        *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "awsgetlogs",
	Short: "Fetch and tail log events from AWS CloudWatch Logs",
	Long:  ``,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = log.Configure(&loggerOptions)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file with the default group/stream/region")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "AWS shared config profile")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "custom CloudWatch Logs endpoint")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output events as JSON")
	rootCmd.PersistentFlags().BoolVar(&expandJSON, "expand-json", false, "pretty print messages that are JSON objects")
	rootCmd.PersistentFlags().StringVar(&loggerOptions.Path, "logging-path", "", "file to output logs of the application")
	rootCmd.PersistentFlags().StringVar(&loggerOptions.Level, "logging-level", "", "logging level to output INFO WARN ERROR DEBUG TRACE")
	rootCmd.PersistentFlags().BoolVar(&loggerOptions.Stdout, "logging-stdout", false, "output application logs on stdout")

	// Register completion for --logging-level flag
	_ = rootCmd.RegisterFlagCompletionFunc("logging-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCommand)
}
