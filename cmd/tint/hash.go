package main

import (
	"github.com/spf13/cobra"
)

func newHashCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <file>...",
		Short: "Print SHA-256 digests for files",
		Long: `Hash prints the SHA-256 digest of each file in the same two-column
format the manifest uses, so the output can be appended to a MANIFEST
file directly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.Hash(args)
		},
	}
}
