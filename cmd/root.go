// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/lladdr/internal/config"
	"firestige.xyz/lladdr/internal/log"
)

var (
	// Global flags
	configFile   string
	outputFormat string
	logLevel     string

	// cfg is loaded before every subcommand runs
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lladdr",
	Short: "lladdr - inspect and build packet socket addresses (sockaddr_ll)",
	Long: `lladdr works with Linux packet socket addresses (struct sockaddr_ll).

It resolves interfaces into addresses, encodes and decodes the native
20-byte sockaddr_ll layout, and assembles BPF programs that select a
link-layer protocol. It never opens a socket.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (optional)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"output format: text, json or yaml (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(filterCmd)
}

// loadConfig loads the config file, applies flag overrides and initializes
// logging.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		loaded.Output = outputFormat
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if err := loaded.ValidateAndApplyDefaults(); err != nil {
		return err
	}
	if err := log.Init(loaded.Log); err != nil {
		return err
	}
	cfg = loaded
	slog.Debug("config loaded", "path", configFile, "output", cfg.Output)
	return nil
}

// exitWithError prints error message and exits with code 1
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}
