package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/session"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/tui"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
)

// chatCmd starts the Concierge chat panel
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "talk to the Aura Concierge",
	Long: `Start an interactive chat with the Aura Concierge assistant.

The conversation keeps its context through a backend-assigned session id
for as long as the panel stays open. Nothing is persisted: closing the
panel ends the conversation.`,
	Example: `  # Start the chat panel
  $ aura chat

  # Keyboard and mouse controls:
  •  Enter sends the message
  •  ↑/↓ and PgUp/PgDn scroll the conversation
  •  drag any panel corner with the mouse to resize
  •  Esc quits`,
	RunE: runChat,
}

func init() {
	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'aura chat' to start a conversation.")
		return fmt.Errorf("invalid arguments")
	}

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	ctrl := session.New(apiClient)
	program := tui.NewChatProgram(ctrl)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run chat TUI: %w", err)
	}

	return nil
}
