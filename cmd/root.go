package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consoletk",
	Short: "Terminal rendering toolkit demos",
	Long: `ConsoleTK draws positioned, colorized widgets (labels, bars, boxes,
separators, boolean matrices) inside a fixed-height scroll region of a
text terminal, and polls the keyboard without blocking.

Available commands:
  demo - Render the full widget set in a live update loop
  keys - Echo decoded key events (arrows included) until ESC`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(keysCmd)
}
