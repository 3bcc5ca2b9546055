package main

import (
	"github.com/fwojciec/tint/bubbletea"
	"github.com/fwojciec/tint/chroma"
	"github.com/fwojciec/tint/clipboard"
	tintgloss "github.com/fwojciec/tint/lipgloss"
	"github.com/spf13/cobra"
)

func newPreviewCmd(app *App) *cobra.Command {
	var (
		theme  string
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse a theme interactively",
		Long: `Preview opens a full-screen attribute browser for a theme. Use j/k
to move, s to toggle the raw source view, y to copy the selected value,
and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The previewer queries the terminal, so build it only
			// when this command actually runs.
			if app.Previewer == nil {
				chrome := tintgloss.Detect()
				tokenizer, err := chroma.NewTokenizer(chroma.StyleFromChrome(chrome.Styles()))
				if err != nil {
					return err
				}
				app.Previewer = bubbletea.NewPreviewer(chrome,
					bubbletea.WithPreviewTokenizer(tokenizer),
					bubbletea.WithPreviewClipboard(clipboard.New()),
				)
			}
			return app.Preview(cmd.Context(), theme, verify)
		},
	}

	cmd.Flags().StringVarP(&theme, "theme", "t", "", "theme to preview (default from config)")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify the theme before loading it")

	return cmd
}
