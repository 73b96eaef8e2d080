package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/rag-cli/internal/application"
	"github.com/bnema/rag-cli/internal/domain"
	"github.com/spf13/cobra"
)

type searchResultJSON struct {
	Chunk          string   `json:"chunk"`
	Source         string   `json:"source"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
}

func newSearchCmd(a *app) *cobra.Command {
	var rerank, fast, asJSON bool
	var topK int

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search indexed chunks",
		Long:  "Search indexed chunks. Mode and result count default to the stored preferences (see `rag prefs`).",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rerank && fast {
				return fmt.Errorf("--rerank and --fast are mutually exclusive")
			}

			req := application.SearchCommand{Query: strings.Join(args, " "), Results: topK}
			switch {
			case rerank:
				req.Mode = domain.SearchModeRerank
			case fast:
				req.Mode = domain.SearchModeFast
			}

			resp, err := a.search.Search(cmd.Context(), req)
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload := make([]searchResultJSON, 0, len(resp.Results))
				for _, result := range resp.Results {
					payload = append(payload, searchResultJSON{Chunk: result.Chunk, Source: result.Source, RelevanceScore: result.RelevanceScore})
				}
				return writeJSON(out, payload)
			}

			if len(resp.Results) == 0 {
				_, err = fmt.Fprintf(out, "No results for %q\n", resp.Query)
				return err
			}
			for i, result := range resp.Results {
				header := fmt.Sprintf("%d. %s", i+1, result.Source)
				if result.RelevanceScore != nil {
					header += fmt.Sprintf(" (score %.3f)", *result.RelevanceScore)
				}
				if _, err := fmt.Fprintf(out, "%s\n%s\n\n", header, strings.TrimSpace(result.Chunk)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rerank, "rerank", false, "Rerank a wider candidate pool before returning results")
	cmd.Flags().BoolVar(&fast, "fast", false, "Plain vector search, ignoring the stored mode")
	cmd.Flags().IntVarP(&topK, "top-k", "k", 0, "Number of results (default: stored preference)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.AddCommand(newSearchSuggestCmd(a))

	return cmd
}

func newSearchSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Suggest queries for a prefix of at least two characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := a.search.Suggest(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			for _, suggestion := range suggestions {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), suggestion); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
