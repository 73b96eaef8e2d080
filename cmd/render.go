package cmd

import (
	"fmt"
	"io"
	"os"

	markuprender "github.com/bnema/rag-cli/internal/adapters/render/markup"
	"github.com/bnema/rag-cli/internal/markup"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var tree bool
	var width int

	cmd := &cobra.Command{
		Use:         "render [file]",
		Short:       "Render markup from a file or stdin",
		Long:        "Render the lightweight markup used in answers (headings, lists, **strong**, *emphasis*, `code`, $math$). Reads stdin when no file is given.",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipWire: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read markup: %w", err)
			}

			nodes := markup.Render(string(src))
			if tree {
				_, err = fmt.Fprint(cmd.OutOrStdout(), markup.Dump(nodes))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markuprender.NewRenderer(markuprender.Options{Width: width}).Render(nodes))
			return err
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "Print the parsed node tree instead of rendered text")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap paragraphs at this width (0 disables wrapping)")

	return cmd
}
