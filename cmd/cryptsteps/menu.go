package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cryptsteps/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Show the mode picker. After a session ends you return to the picker.

Controls:
  Up/Down/W/S  - Navigate
  Enter/Space  - Select mode
  Esc/Q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	for {
		mode, err := tui.RunPicker(runtimeConfig().ScreenW)
		if err != nil {
			return err
		}
		if mode == "" {
			return nil
		}
		if err := playMode(cmd.Context(), mode); err != nil {
			return err
		}
	}
}
