package main

import (
	"fmt"

	"github.com/aretw0/braghook"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of braghook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("braghook version %s\n", braghook.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
