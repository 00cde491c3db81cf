package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lexiconuc "github.com/kailas-cloud/sentilex/internal/usecase/lexicon"
)

func newLexiconCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the merged dictionaries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print entry count, longest phrase length and sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := loadLexiconService(opts)
			if err != nil {
				return err
			}
			st := svc.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "entries:      %d\n", st.Entries)
			fmt.Fprintf(out, "max_key_size: %d\n", st.MaxKeySize)
			fmt.Fprintf(out, "sources:      %s\n", strings.Join(st.Sources, ", "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "lookup <phrase>",
		Short: "Print the merged tags of a phrase",
		Long: `Lookup prints the tags a phrase carries across all dictionaries. Words of a
multi-word phrase can be passed as separate arguments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadLexiconService(opts)
			if err != nil {
				return err
			}
			entry, err := svc.Lookup(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", entry.Phrase, strings.Join(entry.Tags, ", "))
			return nil
		},
	})

	return cmd
}

func loadLexiconService(opts *rootOptions) (*lexiconuc.Service, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	return lexiconuc.New(lex), nil
}
