package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alantheprice/consoletk/pkg/console"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Echo decoded key events (arrows included) until ESC",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeys()
	},
}

func runKeys() error {
	session, err := console.Open(4)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.WriteAt("Press keys (esc quits)", 0, 0, console.Style{Bold: console.FlagOn}); err != nil {
		return err
	}

	count := 0
	for {
		ev, err := session.Poll()
		if err != nil {
			return err
		}
		if ev.Key == console.KeyEscape {
			break
		}
		if !ev.None() {
			count++
			line := fmt.Sprintf("%-30s (total: %d)", describeKey(ev), count)
			if err := session.WriteAt(line, 0, 2, console.Style{Fg: console.Cyan}); err != nil {
				return err
			}
		}
		time.Sleep(20 * time.Millisecond)
	}

	if err := session.Close(); err != nil {
		return err
	}
	color.Green("saw %d key events", count)
	return nil
}
