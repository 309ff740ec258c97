package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "stackwatch",
	Short: "Watch a running stack deployment and narrate its progress",
	Long: `Stackwatch observes an already-running deployment operation on the
deployment service. It polls the stack's event feed, reconstructs
chronological order across overlapping polls, renders a live per-resource
status board, and exits once the stack reports its own terminal status.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("stackwatch version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
