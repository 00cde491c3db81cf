// Package main is the entry point for the sentilex server and CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/sentilex/internal/config"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	env        string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sentilex",
		Short: "Lexicon-based sentiment analysis",
		Long: `sentilex scores English text against polarity and modifier dictionaries.

Text is split into sentences, POS tagged, matched against the merged
dictionaries with a longest-match phrase tagger and scored with modifier
rules (inc, dec, inv). Use "serve" for the HTTP API, "analyze" for files
and stdin, and "lexicon" to inspect the loaded dictionaries.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: config/<env>.yaml)")
	cmd.PersistentFlags().StringVar(&opts.env, "env", config.GetEnv(), "environment: local, dev, docker, prod")

	cmd.AddCommand(
		newServeCmd(opts),
		newAnalyzeCmd(opts),
		newLexiconCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
