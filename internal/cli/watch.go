package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mfleet/stackwatch/internal/board"
	"github.com/mfleet/stackwatch/internal/config"
	"github.com/mfleet/stackwatch/internal/source"
	"github.com/mfleet/stackwatch/internal/track"
)

var (
	watchManifest   string
	watchEndpoint   string
	watchCheckpoint string
	watchInterval   time.Duration
	watchPlain      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <stack>",
	Short: "Watch a deployment until it finishes",
	Long: `Watch polls the stack's event feed until the stack itself reports a
terminal status, then prints the final snapshot.

On an interactive terminal the per-resource status board redraws in place;
elsewhere (pipes, CI logs) each event is appended as its own line, which
--plain also forces.

With --checkpoint, events up to and including the given event id are
attributed to an earlier operation and skipped. Without it, the full event
history is tracked.

The exit status reflects the deployment: 0 when the stack reached a
create/update success, non-zero otherwise.

Example:
  stackwatch watch orders-api
  stackwatch watch orders-api --checkpoint 5f0c91ae --interval 5s`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchManifest, "manifest", "stackwatch.yaml", "Path to the manifest file")
	watchCmd.Flags().StringVar(&watchEndpoint, "endpoint", "", "Deployment service URL (overrides the manifest)")
	watchCmd.Flags().StringVar(&watchCheckpoint, "checkpoint", "", "Last event id preceding the tracked operation")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Poll interval (overrides the manifest)")
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "Append one line per event instead of redrawing the board")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	stack := args[0]

	manifest, err := config.Load(watchManifest)
	if err != nil {
		return err
	}
	if err := config.CheckVersion(manifest, Version); err != nil {
		return err
	}

	endpoint := watchEndpoint
	if endpoint == "" {
		endpoint = manifest.Endpoint
	}
	if endpoint == "" {
		return fmt.Errorf("no deployment service endpoint: set endpoint in %s or pass --endpoint", watchManifest)
	}

	api := source.NewClient(endpoint, os.Getenv(manifest.TokenEnv), Version)

	b := board.New(board.Options{
		Out:         os.Stdout,
		Interactive: boardInteractive(watchPlain, int(os.Stdout.Fd())),
		IDAliases:   manifest.Aliases.Resources,
		TypeAliases: manifest.Aliases.Types,
	})

	tracker := track.NewTracker(track.TrackerOptions{
		Source:          api,
		Renderer:        b,
		Checkpoint:      watchCheckpoint,
		Interval:        resolveInterval(watchInterval, manifest),
		CheckpointPolls: manifest.Poll.CheckpointPolls,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := tracker.Track(ctx, stack)
	if err != nil {
		return err
	}

	printOutcome(stack, outcome)
	if !outcome.Success {
		return fmt.Errorf("stack %s did not deploy successfully", stack)
	}
	return nil
}

// boardInteractive decides the rendering mode: the overwritable board
// needs cursor control, so it requires a terminal and no --plain.
func boardInteractive(plain bool, fd int) bool {
	return !plain && term.IsTerminal(fd)
}

// resolveInterval prefers the flag over the manifest.
func resolveInterval(flag time.Duration, m *config.Manifest) time.Duration {
	if flag > 0 {
		return flag
	}
	return time.Duration(m.Poll.IntervalSeconds) * time.Second
}

// printOutcome writes the final snapshot summary.
func printOutcome(stack string, outcome track.Outcome) {
	if outcome.Stack == nil {
		fmt.Printf("\nStack %s no longer exists.\n", stack)
		return
	}
	fmt.Printf("\nStack:  %s\n", outcome.Stack.Name)
	fmt.Printf("Status: %s\n", outcome.Stack.Status)
	if outcome.Stack.Reason != "" {
		fmt.Printf("Reason: %s\n", outcome.Stack.Reason)
	}
}
