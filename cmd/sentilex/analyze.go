package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	logpkg "github.com/kailas-cloud/sentilex/internal/logger"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var appendLog bool

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Score a file or stdin and print every stage",
		Long: `Analyze runs the pipeline over a file, or stdin when the argument is "-" or
missing. It prints the sentences, the POS-tagged tokens, the dictionary-tagged
expressions and the result line.

With --log the result is also appended to the configured result log.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args, appendLog)
		},
	}
	cmd.Flags().BoolVar(&appendLog, "log", false, "append the result to the configured result log")
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions, args []string, appendLog bool) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger, err := logpkg.NewLogger("cli")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return err
	}

	svc, err := newAnalysisService(cfg, lex, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if appendLog {
		sink, err := openResultLog(ctx, cfg.ResultLog, logger)
		if err != nil {
			return err
		}
		defer func() { _ = sink.Close() }()
		svc.WithResultLog(sink)
	}

	res, err := svc.Analyze(ctx, text)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), &res)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// writeReport prints the stage traces followed by the result line.
func writeReport(w io.Writer, res *domanalysis.Result) error {
	tr := res.Trace()
	var b strings.Builder

	b.WriteString("Sentences:\n")
	for _, s := range tr.Sentences {
		fmt.Fprintf(&b, "  %s\n", strings.Join(s, " | "))
	}

	b.WriteString("POS tagged:\n")
	for _, s := range tr.POSTagged {
		parts := make([]string, len(s))
		for i, t := range s {
			parts[i] = t.Surface() + "/" + strings.Join(t.Tags(), ",")
		}
		fmt.Fprintf(&b, "  %s\n", strings.Join(parts, " "))
	}

	b.WriteString("Dictionary tagged:\n")
	for _, s := range tr.Tagged {
		parts := make([]string, len(s))
		for i, e := range s {
			parts[i] = "[" + e.Surface() + "]/" + strings.Join(e.Tags(), ",")
		}
		fmt.Fprintf(&b, "  %s\n", strings.Join(parts, " "))
	}

	b.WriteString(res.Line())
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
