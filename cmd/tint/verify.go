package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

func newVerifyCmd(app *App) *cobra.Command {
	var (
		theme   string
		all     bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check themes against the manifest",
		Long: `Verify recomputes theme file digests and compares them with the
SHA-256 digests recorded in the manifest. The exit code is 1 when any
checked theme fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Verify(cmd.Context(), theme, all, workers)
		},
	}

	cmd.Flags().StringVarP(&theme, "theme", "t", "", "theme to verify (default from config)")
	cmd.Flags().BoolVar(&all, "all", false, "verify every manifest entry")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "concurrent checks with --all")

	return cmd
}
