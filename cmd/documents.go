package cmd

import (
	"errors"
	"fmt"

	markuprender "github.com/bnema/rag-cli/internal/adapters/render/markup"
	statusrender "github.com/bnema/rag-cli/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

type documentJSON struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

func newDocumentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "List, preview, move and delete indexed documents",
	}

	cmd.AddCommand(newDocumentsListCmd(a), newDocumentsShowCmd(a), newDocumentsMoveCmd(a), newDocumentsDeleteCmd(a))

	return cmd
}

func newDocumentsListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List indexed documents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := a.documents.List(cmd.Context())
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload := make([]documentJSON, 0, len(docs))
				for _, doc := range docs {
					payload = append(payload, documentJSON{Name: doc.Name, SizeBytes: doc.SizeBytes})
				}
				return writeJSON(out, payload)
			}

			if _, err := fmt.Fprintf(out, "documents: %d\n", len(docs)); err != nil {
				return err
			}
			for _, doc := range docs {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", doc.Name, statusrender.FormatSize(doc.SizeBytes)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newDocumentsShowCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Preview a document's extracted text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := a.documents.Show(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}

			text := preview.Content
			if !raw {
				text = markuprender.NewRenderer(markuprender.Options{}).RenderText(preview.Content)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the content without markup rendering")

	return cmd
}

func newDocumentsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a document and its chunks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.documents.Delete(cmd.Context(), args[0]); err != nil {
				return explain(err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted: %s\n", args[0])
			return err
		},
	}
}

func newDocumentsMoveCmd(a *app) *cobra.Command {
	var unfiled bool

	cmd := &cobra.Command{
		Use:   "move <name> [collection]",
		Short: "Move a document into a collection, by id or name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			switch {
			case len(args) == 2 && unfiled:
				return errors.New("pass a collection or --unfiled, not both")
			case len(args) == 2:
				target = args[1]
			case !unfiled:
				return errors.New("missing collection (use --unfiled to remove the document from its collection)")
			}

			move, err := a.documents.Move(cmd.Context(), args[0], target)
			if err != nil {
				return explain(err)
			}
			collection := move.Collection
			if collection == "" {
				collection = "(none)"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\tcollection: %s\n", move.Document, collection)
			return err
		},
	}

	cmd.Flags().BoolVar(&unfiled, "unfiled", false, "Remove the document from its collection")

	return cmd
}
