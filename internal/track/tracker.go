package track

import (
	"context"
	"time"

	"github.com/mfleet/stackwatch/internal/logging"
	"github.com/mfleet/stackwatch/internal/source"
)

// Default tracker tuning.
const (
	// DefaultInterval is the fixed poll cadence.
	DefaultInterval = 3 * time.Second
	// DefaultCheckpointPolls bounds the resume search: if the checkpoint
	// has not been located after this many fully-scanned pages, the run
	// fails with CheckpointNotFoundError.
	DefaultCheckpointPolls = 5
)

// Renderer receives per-resource status updates from the tracker.
// Observe is called once per newly-seen event; Flush once per poll, after
// the page has been processed, so output volume is bounded by the poll
// cadence rather than the event rate.
type Renderer interface {
	Observe(e source.Event)
	Flush()
}

// Outcome is produced once, at loop termination. Stack is the final
// snapshot and is nil when the stack no longer exists. Success reports
// whether the terminating status was a create/update success; the tracked
// operation's own failure is a normal outcome, not an error.
type Outcome struct {
	Stack   *source.Stack
	Success bool
}

// Tracker observes a single already-running stack operation until it
// terminates. One Tracker instance is strictly sequential and owns its
// seen-set and render state exclusively; tracking several stacks
// concurrently means one independent Tracker (and Renderer) per stack.
type Tracker struct {
	source          source.API
	renderer        Renderer
	checkpoint      string
	interval        time.Duration
	checkpointPolls int
}

// TrackerOptions configures a Tracker. Source and Renderer are required;
// zero-valued tuning fields fall back to the defaults.
type TrackerOptions struct {
	Source          source.API
	Renderer        Renderer
	Checkpoint      string
	Interval        time.Duration
	CheckpointPolls int
}

// NewTracker creates a Tracker with the given options.
func NewTracker(opts TrackerOptions) *Tracker {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	checkpointPolls := opts.CheckpointPolls
	if checkpointPolls <= 0 {
		checkpointPolls = DefaultCheckpointPolls
	}
	return &Tracker{
		source:          opts.Source,
		renderer:        opts.Renderer,
		checkpoint:      opts.Checkpoint,
		interval:        interval,
		checkpointPolls: checkpointPolls,
	}
}

// Track polls the event feed until the stack reports its own terminal
// status, rendering progress along the way, then fetches the final
// snapshot. Transient transport failures are swallowed and retried
// indefinitely. The returned error is non-nil only for context
// cancellation or an unlocatable checkpoint; the deployment's own failure
// is reported through Outcome.Success.
func (t *Tracker) Track(ctx context.Context, stack string) (Outcome, error) {
	seen := make(map[string]struct{})
	ord := newOrderer(t.checkpoint)
	searchMisses := 0

	for {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if err := sleep(ctx, t.interval); err != nil {
			return Outcome{}, err
		}

		page, err := t.source.StackEvents(ctx, stack)
		if err != nil {
			if ctx.Err() != nil {
				return Outcome{}, ctx.Err()
			}
			if source.IsNotFound(err) {
				// The stack disappeared mid-operation; report failure
				// with an empty snapshot rather than propagating.
				return Outcome{Success: false}, nil
			}
			logging.Debug("event fetch failed, retrying", "stack", stack, "error", err)
			continue
		}

		candidates := ord.bracket(page, seen)
		if !ord.found {
			searchMisses++
			if searchMisses >= t.checkpointPolls {
				return Outcome{}, &CheckpointNotFoundError{Stack: stack, Checkpoint: t.checkpoint}
			}
			continue
		}

		for _, e := range dedupe(candidates, seen) {
			t.renderer.Observe(e)
			if IsTerminal(e) && e.LogicalID == stack {
				// Anything after this event in the page belongs to a
				// later operation.
				t.renderer.Flush()
				return t.finish(ctx, stack, IsSuccess(e))
			}
		}
		t.renderer.Flush()
	}
}

// finish fetches the final snapshot once the terminal event has been
// observed. A missing stack maps to failure with an empty snapshot;
// transient failures retry on the poll cadence like everywhere else.
func (t *Tracker) finish(ctx context.Context, stack string, success bool) (Outcome, error) {
	for {
		snapshot, err := t.source.Describe(ctx, stack)
		if err == nil {
			return Outcome{Stack: snapshot, Success: success}, nil
		}
		if ctx.Err() != nil {
			return Outcome{}, ctx.Err()
		}
		if source.IsNotFound(err) {
			return Outcome{Success: false}, nil
		}
		logging.Debug("final describe failed, retrying", "stack", stack, "error", err)
		if err := sleep(ctx, t.interval); err != nil {
			return Outcome{}, err
		}
	}
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
