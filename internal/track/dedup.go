package track

import "github.com/mfleet/stackwatch/internal/source"

// dedupe filters out events whose ids are already in seen and records
// every id, new or repeat. Overlapping polls are the norm — each poll
// re-returns most of the prior page — and repeats can interleave with
// genuinely new events, so membership is checked per event rather than
// assuming an old-prefix/new-suffix split.
func dedupe(events []source.Event, seen map[string]struct{}) []source.Event {
	var fresh []source.Event
	for _, e := range events {
		if _, ok := seen[e.ID]; !ok {
			fresh = append(fresh, e)
		}
		seen[e.ID] = struct{}{}
	}
	return fresh
}
