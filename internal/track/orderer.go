package track

import (
	"fmt"

	"github.com/mfleet/stackwatch/internal/source"
)

// CheckpointNotFoundError means the event feed never delivered the
// checkpoint event, so events cannot be attributed to the tracked
// operation. It is fatal.
type CheckpointNotFoundError struct {
	Stack      string
	Checkpoint string
}

func (e *CheckpointNotFoundError) Error() string {
	return fmt.Sprintf("checkpoint event %s not found in event feed for stack %s", e.Checkpoint, e.Stack)
}

// orderer restores chronological order within a fetched page and brackets
// it against the caller's checkpoint: the id of the last event known to
// predate the tracked operation.
type orderer struct {
	checkpoint string
	found      bool
}

// newOrderer creates an orderer for the given checkpoint. An empty
// checkpoint means track from full history; nothing is skipped.
func newOrderer(checkpoint string) *orderer {
	return &orderer{
		checkpoint: checkpoint,
		found:      checkpoint == "",
	}
}

// bracket reverses a most-recent-first page into chronological order and
// returns the events that postdate the checkpoint. Until the checkpoint is
// located, every scanned event is consumed into seen and excluded from
// candidacy, the checkpoint event itself included. If the checkpoint is
// not in this page, nil is returned and the search resumes on the next
// one; found reports whether it has been located.
func (o *orderer) bracket(page []source.Event, seen map[string]struct{}) []source.Event {
	events := make([]source.Event, len(page))
	for i, e := range page {
		events[len(page)-1-i] = e
	}

	if o.found {
		return events
	}

	for i, e := range events {
		seen[e.ID] = struct{}{}
		if e.ID == o.checkpoint {
			o.found = true
			return events[i+1:]
		}
	}
	return nil
}
