package main

import (
	"fmt"

	"github.com/aretw0/braghook/internal/config"
	"github.com/aretw0/braghook/internal/entry"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List brag files in the configured workdir",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		files, err := entry.List(cfg.Workdir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
