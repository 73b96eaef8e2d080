package cmd

import (
	"fmt"

	"github.com/bnema/rag-cli/internal/application"
	"github.com/bnema/rag-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change local search preferences",
	}

	cmd.AddCommand(newPrefsShowCmd(a), newPrefsSetCmd(a), newPrefsResetCmd(a))

	return cmd
}

func writePrefs(cmd *cobra.Command, prefs domain.Preferences) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "results: %d\nsearch_mode: %s\n", prefs.ResultCount, prefs.SearchMode)
	return err
}

func newPrefsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := a.preferences.Get(cmd.Context())
			if err != nil {
				return err
			}
			return writePrefs(cmd, prefs)
		},
	}
}

func newPrefsSetCmd(a *app) *cobra.Command {
	var results int
	var mode string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the default result count or search mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update := application.PreferencesUpdate{}
			if cmd.Flags().Changed("results") {
				update.ResultCount = &results
			}
			if cmd.Flags().Changed("search-mode") {
				m := domain.SearchMode(mode)
				update.SearchMode = &m
			}
			if update.ResultCount == nil && update.SearchMode == nil {
				return fmt.Errorf("nothing to change: pass --results or --search-mode")
			}

			prefs, err := a.preferences.Update(cmd.Context(), update)
			if err != nil {
				return err
			}
			return writePrefs(cmd, prefs)
		},
	}

	cmd.Flags().IntVar(&results, "results", domain.DefaultResultCount, fmt.Sprintf("Results per search (1-%d)", domain.MaxResultCount))
	cmd.Flags().StringVar(&mode, "search-mode", string(domain.SearchModeFast), `Search mode: "search" or "rerank"`)

	return cmd
}

func newPrefsResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := a.preferences.Reset(cmd.Context())
			if err != nil {
				return err
			}
			return writePrefs(cmd, prefs)
		},
	}
}
