package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/braghook"
	"github.com/aretw0/braghook/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
	bragfile   string
	autoSend   bool
)

// rootCmd runs the default flow: open today's brag in the editor, then
// offer to deliver it.
var rootCmd = &cobra.Command{
	Use:   "braghook",
	Short: "Keep a daily brag file and post it to chat webhooks",
	Long: `Braghook opens a dated Markdown brag file in your editor and, once you are
done, delivers it to any configured webhooks and archives it to a gist.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		service := braghook.New(cfg, braghook.WithLogger(slog.Default()))

		filename := service.EntryPath(bragfile)
		if err := service.Edit(filename); err != nil {
			return err
		}

		if !autoSend && !confirm("Send brag? [y/N] ") {
			return nil
		}
		return service.Send(cmd.Context(), filename)
	},
}

// confirm prompts on stdout and accepts only an explicit y/Y.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "The config file to use")
	rootCmd.Flags().StringVarP(&bragfile, "bragfile", "b", "", "The brag file to use")
	rootCmd.Flags().BoolVarP(&autoSend, "auto-send", "a", false, "Send without prompting")
}
