package cmd

import (
	"fmt"
	"strings"
	"time"

	markuprender "github.com/bnema/rag-cli/internal/adapters/render/markup"
	"github.com/bnema/rag-cli/internal/domain"
	"github.com/spf13/cobra"
)

type chatAnswerJSON struct {
	ID             int64    `json:"id,omitempty"`
	ConversationID string   `json:"conversation_id"`
	Answer         string   `json:"answer"`
	Sources        []string `json:"sources"`
}

func newChatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask questions grounded in your documents",
	}

	cmd.AddCommand(
		newChatAskCmd(a),
		newChatHistoryCmd(a),
		newChatShowCmd(a),
		newChatCitationsCmd(a),
		newChatFeedbackCmd(a),
	)

	return cmd
}

func newChatAskCmd(a *app) *cobra.Command {
	var conversation string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a question, optionally continuing a conversation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := a.chat.Ask(cmd.Context(), strings.Join(args, " "), domain.ConversationID(conversation))
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, chatAnswerJSON{
					ID:             answer.ID,
					ConversationID: string(answer.ConversationID),
					Answer:         answer.Answer,
					Sources:        answer.Sources,
				})
			}

			if _, err := fmt.Fprintln(out, markuprender.NewRenderer(markuprender.Options{}).RenderText(answer.Answer)); err != nil {
				return err
			}
			if err := writeSources(cmd, answer.Sources); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			if answer.ID > 0 {
				if _, err := fmt.Fprintf(out, "chat: %d\n", answer.ID); err != nil {
					return err
				}
			}
			if answer.ConversationID != "" {
				_, err = fmt.Fprintf(out, "conversation: %s\n", answer.ConversationID)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&conversation, "conversation", "c", "", "Conversation ID to continue")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newChatHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := a.chat.History(cmd.Context())
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if len(history) == 0 {
				_, err = fmt.Fprintln(out, "No conversations yet.")
				return err
			}
			for _, summary := range history {
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", summary.ID, formatWhen(summary.UpdatedAt), summary.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newChatShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <conversation-id>",
		Short: "Print every message of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conversation, err := a.chat.Conversation(cmd.Context(), domain.ConversationID(args[0]))
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			renderer := markuprender.NewRenderer(markuprender.Options{})
			if conversation.Title != "" {
				if _, err := fmt.Fprintf(out, "# %s\n", conversation.Title); err != nil {
					return err
				}
			}
			for _, msg := range conversation.Messages {
				if _, err := fmt.Fprintf(out, "\n[%s]\n%s\n", msg.Role, renderer.RenderText(msg.Content)); err != nil {
					return err
				}
				if err := writeSources(cmd, msg.Sources); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type citationJSON struct {
	Index  int    `json:"index"`
	Source string `json:"source"`
	Text   string `json:"text"`
}

func newChatCitationsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "citations <chat-id>",
		Short: "Show the document chunks an answer was built from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseChatID(args[0])
			if err != nil {
				return err
			}
			citations, err := a.chat.Citations(cmd.Context(), id)
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload := make([]citationJSON, 0, len(citations.Citations))
				for _, cite := range citations.Citations {
					payload = append(payload, citationJSON{Index: cite.Index, Source: cite.Source, Text: cite.Text})
				}
				return writeJSON(out, payload)
			}

			if citations.Question != "" {
				if _, err := fmt.Fprintf(out, "question: %s\n", citations.Question); err != nil {
					return err
				}
			}
			if len(citations.Citations) == 0 {
				_, err = fmt.Fprintln(out, "No citations.")
				return err
			}
			for _, cite := range citations.Citations {
				if _, err := fmt.Fprintf(out, "\n[%d] %s\n%s\n", cite.Index, cite.Source, strings.TrimSpace(cite.Text)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newChatFeedbackCmd(a *app) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "feedback <chat-id> <up|down>",
		Short: "Rate an answer; rating again replaces the earlier rating",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseChatID(args[0])
			if err != nil {
				return err
			}
			rating, err := domain.ParseFeedbackRating(args[1])
			if err != nil {
				return err
			}

			feedback, err := a.chat.Feedback(cmd.Context(), id, rating, comment)
			if err != nil {
				return explain(err)
			}
			msg := feedback.Message
			if msg == "" {
				msg = "Feedback recorded."
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\tchat %d\t%s\n", msg, feedback.ChatID, feedback.Rating)
			return err
		},
	}

	cmd.Flags().StringVarP(&comment, "comment", "m", "", "Optional comment sent with the rating")

	return cmd
}

func writeSources(cmd *cobra.Command, sources []string) error {
	if len(sources) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "\nsources:"); err != nil {
		return err
	}
	for _, source := range sources {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", source); err != nil {
			return err
		}
	}
	return nil
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
