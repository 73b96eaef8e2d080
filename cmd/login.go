package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session tokens",
		Long:  "Sign in with username and password. The password is read from the terminal without echo, or from the first line of stdin when piped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			if strings.TrimSpace(username) == "" {
				value, err := p.line("Username: ")
				if err != nil {
					return err
				}
				username = value
			}
			password, err := p.secret("Password: ")
			if err != nil {
				return err
			}

			if err := a.session.Login(cmd.Context(), strings.TrimSpace(username), password); err != nil {
				return explain(err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in to %s as %s\n", a.client.BaseURL(), strings.TrimSpace(username))
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted when empty)")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session on the server and forget local tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.Logout(cmd.Context())
			if err != nil {
				return err
			}
			if result.RevokeErr != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: server sign-out failed: %v\n", result.RevokeErr)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.session.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "server: %s\ncredentials: %s\n", a.client.BaseURL(), a.cfg.Backend); err != nil {
				return err
			}
			if a.cfg.File != "" {
				if _, err := fmt.Fprintf(out, "config: %s\n", a.cfg.File); err != nil {
					return err
				}
			}
			switch {
			case !status.SignedIn:
				_, err = fmt.Fprintln(out, "session: signed out")
			case status.CanRefresh:
				_, err = fmt.Fprintln(out, "session: signed in (refreshable)")
			default:
				_, err = fmt.Fprintln(out, "session: signed in (access token only)")
			}
			return err
		},
	}
}
