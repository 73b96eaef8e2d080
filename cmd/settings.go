package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage server-side settings",
	}

	apiKey := &cobra.Command{
		Use:   "api-key",
		Short: "Show, replace or test the LLM provider API key",
	}
	apiKey.AddCommand(newAPIKeyShowCmd(a), newAPIKeySetCmd(a), newAPIKeyTestCmd(a))
	cmd.AddCommand(apiKey)

	return cmd
}

func newAPIKeyShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the masked API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.settings.APIKey(cmd.Context())
			if err != nil {
				return explain(err)
			}

			key := status.MaskedKey
			if key == "" {
				key = "(not set)"
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "api key: %s\n", key); err != nil {
				return err
			}
			if status.Provider != "" {
				_, err = fmt.Fprintf(out, "provider: %s\n", status.Provider)
			}
			return err
		},
	}
}

func newAPIKeySetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Replace the API key (read without echo, or from stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).secret("API key: ")
			if err != nil {
				return err
			}
			if err := a.settings.SetAPIKey(cmd.Context(), key); err != nil {
				return explain(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "API key updated")
			return err
		},
	}
}

func newAPIKeyTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check the stored API key against the provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.settings.TestAPIKey(cmd.Context())
			if err != nil {
				return explain(err)
			}

			verdict := "ok"
			if !result.OK {
				verdict = "failed"
			}
			line := "api key test: " + verdict
			if result.Message != "" {
				line += " (" + result.Message + ")"
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
				return err
			}
			if !result.OK {
				return fmt.Errorf("api key test failed")
			}
			return nil
		},
	}
}
