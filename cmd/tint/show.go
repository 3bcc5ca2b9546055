package main

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var (
		theme   string
		verify  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a theme's attributes",
		Long: `Show loads a theme and prints its attributes. On a truecolor
terminal, values that name colors render as swatches; pipes, NO_COLOR,
and --no-color all produce plain text.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !noColor {
				app.Color = termenv.EnvColorProfile() == termenv.TrueColor
			}
			return app.Show(theme, verify)
		},
	}

	cmd.Flags().StringVarP(&theme, "theme", "t", "", "theme to show (default from config)")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify the theme before loading it")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable swatch rendering")

	return cmd
}
