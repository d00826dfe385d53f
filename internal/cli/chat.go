package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var conversationID, model string
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a chat message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := apiClient()

			if model == "" {
				models, err := c.User.AvailableModels(cmd.Context())
				if err != nil {
					return err
				}
				if len(models) == 0 {
					return fmt.Errorf("no models available on your plan")
				}
				model = models[0].ID
			}

			res, err := c.Chat.Send(cmd.Context(), conversationID, model, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("[%s] %s\n", res.Reply.Role, res.Reply.Content)
			if res.Limit != nil {
				fmt.Printf("(%d/%d messages used, conversation %s)\n", res.Used, *res.Limit, res.Conversation.ID)
			} else {
				fmt.Printf("(conversation %s)\n", res.Conversation.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&conversationID, "conversation", "c", "", "continue an existing conversation")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model ID (defaults to the first available)")
	return cmd
}

func newConversationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "Manage conversation history",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List conversations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			convs, err := apiClient().Conversations.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, conv := range convs {
				fmt.Printf("%s  %-24s  %s\n", conv.ID, conv.Title, conv.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print a conversation's messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := apiClient().Conversations.Messages(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, m := range msgs {
				fmt.Printf("[%s] %s\n", m.Role, m.Content)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a conversation and its messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient().Conversations.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Conversation deleted")
			return nil
		},
	})

	return cmd
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models available on your plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := apiClient().User.AvailableModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Printf("%-40s  %s\n", m.ID, m.Provider)
			}
			return nil
		},
	}
}
