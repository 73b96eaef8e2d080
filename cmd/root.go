package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/rag-cli/internal/adapters/api"
	"github.com/bnema/rag-cli/internal/domain"
	"github.com/spf13/cobra"
)

// skipWire marks commands that run without config, credentials or network.
const skipWire = "rag/skip-wire"

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "rag",
		Short:         "RAG CLI: ingest documents, search and chat with your knowledge base",
		Long:          "rag talks to a retrieval-augmented generation backend: upload files or URLs and follow indexing tasks, search and rerank chunks, chat with sources, and manage the provider API key.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWire] != "" {
				return nil
			}
			wired, err := wireApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*a = *wired
			cmd.SetContext(a.contextWithLogger(cmd.Context()))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.metrics || a.metrics == nil {
				return nil
			}
			if err := a.metrics.WriteText(cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (default ~/.rag/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print client metrics to stderr when the command finishes")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRenderCmd(),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newUploadCmd(a),
		newTasksCmd(a),
		newDocumentsCmd(a),
		newCollectionsCmd(a),
		newChatCmd(a),
		newSearchCmd(a),
		newSettingsCmd(a),
		newPrefsCmd(a),
	)

	return rootCmd
}

// explain turns well-known failures into actionable messages.
func explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAuthenticationExpired):
		return fmt.Errorf("%w; please run `rag login`", err)
	case errors.Is(err, domain.ErrNotSignedIn):
		return fmt.Errorf("%w; run `rag login` first", err)
	case api.IsUnauthorized(err):
		return fmt.Errorf("%w; please run `rag login`", err)
	default:
		return err
	}
}
