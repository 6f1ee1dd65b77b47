package main

import (
	"fmt"

	"github.com/aretw0/braghook/internal/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default braghook config file",
	Long:  `Write a braghook.yaml populated with defaults. Refuses to overwrite an existing file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.Create(configFile); err != nil {
			fatal("Failed to create config", err)
		}
		fmt.Println("Wrote config file", configFile)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
