package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sdiallo/woyofal/internal/share"
	"github.com/sdiallo/woyofal/internal/tui"
)

// ErrNotATerminal is returned when the interactive session is requested
// without a terminal attached.
var ErrNotATerminal = errors.New("interactive mode requires a terminal")

// NewTUICmd creates the "tui" command, launching the interactive
// estimation session.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive estimation session",
		Long: `Open the interactive terminal session: estimate tab, appliance
projection tab, and tariff settings with reset.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotATerminal
			}

			rates, err := loadRates(cmd)
			if err != nil {
				return err
			}

			model := tui.NewModel(cmd.Context(), rates, share.Clipboard{})
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
