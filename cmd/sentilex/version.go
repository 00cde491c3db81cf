package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/sentilex/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of sentilex",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sentilex %s\n", version.String())
		},
	}
}
