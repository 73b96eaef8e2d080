package cmd

import (
	"fmt"

	statusrender "github.com/bnema/rag-cli/internal/adapters/render/status"
	"github.com/bnema/rag-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUploadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Queue a file or URL for indexing",
	}

	cmd.AddCommand(newUploadFileCmd(a), newUploadURLCmd(a))

	return cmd
}

func newUploadFileCmd(a *app) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Upload a .txt, .md, .pdf or .docx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.ingestion.UploadFile(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			return afterUpload(cmd, a, id, wait)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Follow the indexing task until it finishes")

	return cmd
}

func newUploadURLCmd(a *app) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "url <url>",
		Short: "Fetch and index a web page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.ingestion.UploadURL(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			return afterUpload(cmd, a, id, wait)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Follow the indexing task until it finishes")

	return cmd
}

func afterUpload(cmd *cobra.Command, a *app, id domain.TaskID, wait bool) error {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "task: %s\n", id); err != nil {
		return err
	}
	if !wait {
		return nil
	}
	return watchTask(cmd.Context(), a, cmd.OutOrStdout(), id)
}

func newTasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Follow or cancel background indexing tasks",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "watch <task-id>",
			Short: "Poll a task until it completes, fails or is cancelled",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return watchTask(cmd.Context(), a, cmd.OutOrStdout(), domain.TaskID(args[0]))
			},
		},
		newTasksShowCmd(a),
		&cobra.Command{
			Use:   "cancel <task-id>",
			Short: "Ask the server to cancel a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id := domain.TaskID(args[0])
				if err := a.ingestion.Cancel(cmd.Context(), id); err != nil {
					return explain(err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "cancel requested: %s\n", id)
				return err
			},
		},
	)

	return cmd
}

func newTasksShowCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Print the current state of a task once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.ingestion.Status(cmd.Context(), domain.TaskID(args[0]))
			if err != nil {
				return explain(err)
			}

			opts := statusrender.RenderOptions{Now: a.now()}
			if short {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), statusrender.Line(record, opts))
				return err
			}
			view, err := statusrender.Render(statusrender.Snapshot{Task: record}, opts)
			if err != nil {
				return fmt.Errorf("render task: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the status and progress bar")

	return cmd
}
