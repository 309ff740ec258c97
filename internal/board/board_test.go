package board

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfleet/stackwatch/internal/source"
)

func event(id, logical, typ string, status source.Status, reason string) source.Event {
	return source.Event{ID: id, StackName: "api", LogicalID: logical, Type: typ, Status: status, Reason: reason}
}

func TestPlainModePrintsOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: false})

	b.Observe(event("e1", "db", "Deploy::Database", source.StatusCreateInProgress, ""))
	b.Observe(event("e2", "db", "Deploy::Database", source.StatusCreateComplete, ""))
	b.Flush() // no-op in plain mode

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "CREATE_IN_PROGRESS")
	assert.Contains(t, lines[1], "CREATE_COMPLETE")
	assert.NotContains(t, buf.String(), "\033[", "plain mode emits no escape sequences")
}

func TestPlainModeLineFormat(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: false})

	b.Observe(event("e1", "db", "Deploy::Database", source.StatusCreateFailed, "quota exceeded"))

	line := strings.TrimRight(buf.String(), "\n")
	// Fixed-width status column, then type, then id, then reason.
	assert.True(t, strings.HasPrefix(line, "CREATE_FAILED"), line)
	idx := strings.Index(line, "Deploy::Database")
	assert.Equal(t, statusWidth+2, idx, "status column is fixed-width")
	assert.True(t, strings.HasSuffix(line, "db (quota exceeded)"), line)
}

func TestOverwriteModeBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: true})

	b.Observe(event("e1", "db", "Deploy::Database", source.StatusCreateInProgress, ""))
	assert.Zero(t, buf.Len(), "interactive mode writes nothing before Flush")

	b.Flush()
	assert.Contains(t, buf.String(), "CREATE_IN_PROGRESS")
}

func TestOverwriteModeRedrawsInPlace(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: true})

	b.Observe(event("e1", "db", "Deploy::Database", source.StatusCreateInProgress, ""))
	b.Observe(event("e2", "fn", "Deploy::Function", source.StatusCreateInProgress, ""))
	b.Flush()

	first := buf.String()
	assert.NotContains(t, first, CursorUp(2), "first draw does not move the cursor")

	buf.Reset()
	b.Observe(event("e3", "db", "Deploy::Database", source.StatusCreateComplete, ""))
	b.Flush()

	second := buf.String()
	// Exactly the two previously-drawn lines are climbed over, then the
	// whole board is rewritten.
	assert.True(t, strings.HasPrefix(second, CursorUp(2)), second)
	assert.Contains(t, second, "CREATE_COMPLETE")
	assert.Contains(t, second, "fn", "unchanged rows are rewritten too")
	assert.Equal(t, 2, strings.Count(second, "\n"))
}

func TestOverwriteModeRowPositionFixedByFirstSeen(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: true})

	b.Observe(event("e1", "db", "Deploy::Database", source.StatusCreateInProgress, ""))
	b.Observe(event("e2", "fn", "Deploy::Function", source.StatusCreateInProgress, ""))
	// db updates after fn appeared; its row must stay first.
	b.Observe(event("e3", "db", "Deploy::Database", source.StatusCreateComplete, ""))
	b.Flush()

	out := buf.String()
	assert.Less(t, strings.Index(out, "db"), strings.Index(out, "fn"))
	assert.Equal(t, 2, strings.Count(out, "\n"), "one row per resource, not per event")
	// The db row shows its latest status only; the one in-progress left
	// is fn's.
	assert.Equal(t, 1, strings.Count(out, "CREATE_IN_PROGRESS"))
	assert.Equal(t, 1, strings.Count(out, "CREATE_COMPLETE"))
}

func TestOverwriteModeGrowsRegion(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: true})

	b.Observe(event("e1", "db", "Deploy::Database", source.StatusCreateInProgress, ""))
	b.Flush()
	buf.Reset()

	b.Observe(event("e2", "fn", "Deploy::Function", source.StatusCreateInProgress, ""))
	b.Flush()

	// Only one line was drawn last round, so only one is climbed over.
	assert.True(t, strings.HasPrefix(buf.String(), CursorUp(1)))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestStatusStyling(t *testing.T) {
	tests := []struct {
		status source.Status
		want   string
	}{
		{source.StatusCreateInProgress, FgYellow},
		{source.StatusUpdateComplete, FgGreen},
		{source.StatusCreateFailed, FgRed},
		{source.StatusRollbackInProgress, FgMagenta},
		{source.StatusUpdateRollbackComplete, FgMagenta},
		{source.StatusUpdateRollbackFailed, FgRed},
		{source.Status("REVIEW_IN_PROGRESS"), FgYellow},
		{source.Status("SOMETHING_ELSE"), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusStyle(tt.status), string(tt.status))
	}
}

func TestStyledRowsReset(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: true})

	b.Observe(event("e1", "db", "Deploy::Database", source.StatusCreateComplete, ""))
	b.Flush()

	out := buf.String()
	assert.Contains(t, out, FgGreen)
	assert.Contains(t, out, Reset)
}

func TestUnknownStatusRendersNeutral(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Out: &buf, Interactive: true})

	b.Observe(event("e1", "db", "Deploy::Database", source.Status("IMPORT_IN_FLIGHT"), ""))
	b.Flush()

	out := buf.String()
	assert.Contains(t, out, "IMPORT_IN_FLIGHT")
	assert.NotContains(t, out, Reset, "neutral rows carry no style to reset")
}

func TestAliases(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{
		Out:         &buf,
		Interactive: false,
		IDAliases:   map[string]string{"db-7f3a": "orders database"},
		TypeAliases: map[string]string{"Deploy::Database": "database"},
	})

	b.Observe(event("e1", "db-7f3a", "Deploy::Database", source.StatusCreateComplete, ""))
	b.Observe(event("e2", "fn-1", "Deploy::Function", source.StatusCreateComplete, ""))

	out := buf.String()
	assert.Contains(t, out, "database  orders database")
	// Unaliased names pass through.
	assert.Contains(t, out, "Deploy::Function  fn-1")
}
