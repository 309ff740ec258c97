package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeDropsSeenIDs(t *testing.T) {
	seen := map[string]struct{}{"e1": {}}

	fresh := dedupe(page("e1", "e2", "e3"), seen)

	assert.Equal(t, []string{"e2", "e3"}, ids(fresh))
	assert.Len(t, seen, 3, "every id is recorded, new or repeat")
}

func TestDedupeIdempotentAcrossOverlappingPolls(t *testing.T) {
	seen := make(map[string]struct{})

	first := dedupe(page("e1", "e2", "e3"), seen)
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids(first))

	// The next poll re-returns the whole prior page plus one new event.
	second := dedupe(page("e1", "e2", "e3", "e4"), seen)
	assert.Equal(t, []string{"e4"}, ids(second))

	// Re-delivering everything yields nothing new.
	third := dedupe(page("e1", "e2", "e3", "e4"), seen)
	assert.Empty(t, third)
}

func TestDedupeHandlesInterleavedRepeats(t *testing.T) {
	// Repeats and genuinely new events can interleave; a contiguous
	// old-prefix/new-suffix split cannot be assumed.
	seen := map[string]struct{}{"e1": {}, "e3": {}}

	fresh := dedupe(page("e1", "e2", "e3", "e4"), seen)

	assert.Equal(t, []string{"e2", "e4"}, ids(fresh))
}

func TestDedupeEmptyInput(t *testing.T) {
	seen := make(map[string]struct{})
	assert.Empty(t, dedupe(nil, seen))
	assert.Empty(t, seen)
}
