package main

import (
	"log/slog"

	"github.com/aretw0/braghook"
	"github.com/aretw0/braghook/internal/config"
	"github.com/spf13/cobra"
)

var sendBragfile string

// sendCmd delivers a brag file without opening the editor first.
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Deliver a brag file without opening the editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		service := braghook.New(cfg, braghook.WithLogger(slog.Default()))

		return service.Send(cmd.Context(), service.EntryPath(sendBragfile))
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&sendBragfile, "bragfile", "b", "", "The brag file to send")
}
