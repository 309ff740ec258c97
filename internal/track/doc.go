// Package track reconciles the deployment service's best-effort event feed
// into an ordered, exactly-once narration of a single stack operation.
//
// The feed returns overlapping most-recent-first pages with no delivery
// guarantees. The Tracker polls on a fixed cadence and runs each page
// through three stages:
//   - the orderer restores chronological order and brackets the page
//     against the caller's checkpoint, so events from earlier operations
//     are never attributed to this one;
//   - the deduplicator drops events already processed in a prior poll;
//   - the classifier decides whether an event is the stack's own terminal
//     status and whether that status means success.
//
// Transient transport failures are retried indefinitely; a long deployment
// must survive network blips. The only error a run surfaces (besides
// context cancellation) is CheckpointNotFoundError, which means the feed
// never produced the bracketing event and the run cannot safely attribute
// events to the requested operation.
package track
