package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type collectionJSON struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DocumentCount int    `json:"document_count"`
}

func newCollectionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"cols"},
		Short:   "List and create document collections",
	}

	cmd.AddCommand(newCollectionsListCmd(a), newCollectionsCreateCmd(a))

	return cmd
}

func newCollectionsListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List collections with their document counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			collections, err := a.documents.Collections(cmd.Context())
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload := make([]collectionJSON, 0, len(collections))
				for _, col := range collections {
					payload = append(payload, collectionJSON{
						ID:            int64(col.ID),
						Name:          col.Name,
						Description:   col.Description,
						DocumentCount: col.DocumentCount,
					})
				}
				return writeJSON(out, payload)
			}

			if len(collections) == 0 {
				_, err = fmt.Fprintln(out, "No collections yet.")
				return err
			}
			for _, col := range collections {
				line := fmt.Sprintf("%d\t%s\t%d docs", col.ID, col.Name, col.DocumentCount)
				if col.Description != "" {
					line += "\t" + col.Description
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCollectionsCreateCmd(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.documents.CreateCollection(cmd.Context(), args[0], description)
			if err != nil {
				return explain(err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created: %s (id %d)\n", created.Name, created.ID)
			return err
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description of the collection")

	return cmd
}
