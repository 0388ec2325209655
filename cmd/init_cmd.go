package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		path := filepath.Join(dir, "config.yaml")

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s, use --force to overwrite", path)
		}

		defaultConfig := Config{
			LogGroup:  "/aws/lambda/my-function",
			LogStream: "",
			Region:    "us-east-1",
			Profile:   "",
		}

		data, err := yaml.Marshal(&defaultConfig)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}

		fmt.Printf("wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}
