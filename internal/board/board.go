// Package board renders per-resource deployment status to a terminal.
//
// In interactive mode the board is an overwritable table: each resource
// owns one row, fixed at first-seen position, updated in place so the
// display reflects current status rather than history. In plain mode
// (pipes, CI logs) it degrades to one appended line per event.
package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/mfleet/stackwatch/internal/source"
)

// statusWidth is the render width of the status column, sized to the
// longest token in the service vocabulary (UPDATE_ROLLBACK_IN_PROGRESS).
const statusWidth = 27

// Options configures a Board.
type Options struct {
	Out         io.Writer
	Interactive bool
	// IDAliases maps logical resource ids to display names.
	IDAliases map[string]string
	// TypeAliases maps resource types to display names.
	TypeAliases map[string]string
}

// Board implements the track.Renderer contract. One Board owns one output
// region; its cursor bookkeeping is instance state, so concurrent trackers
// must each use their own Board (or serialize through a single one).
type Board struct {
	out         io.Writer
	interactive bool
	idAliases   map[string]string
	typeAliases map[string]string

	order  []string // logical ids in first-seen order
	latest map[string]source.Event
	drawn  int // lines written by the previous redraw
}

// New creates a Board writing to opts.Out.
func New(opts Options) *Board {
	return &Board{
		out:         opts.Out,
		interactive: opts.Interactive,
		idAliases:   opts.IDAliases,
		typeAliases: opts.TypeAliases,
		latest:      make(map[string]source.Event),
	}
}

// Observe records an event. In interactive mode the row state is updated
// and nothing is written until Flush; in plain mode the event is printed
// immediately, one line per event.
func (b *Board) Observe(e source.Event) {
	if !b.interactive {
		fmt.Fprintln(b.out, b.line(e, false))
		return
	}

	if _, ok := b.latest[e.LogicalID]; !ok {
		b.order = append(b.order, e.LogicalID)
	}
	b.latest[e.LogicalID] = e
}

// Flush redraws the whole board: the cursor moves up over exactly the
// lines drawn last round, then every row is cleared and rewritten
// top-to-bottom. Rows only accumulate, so new ones extend the region
// downward. No-op in plain mode.
func (b *Board) Flush() {
	if !b.interactive || len(b.order) == 0 {
		return
	}

	var sb strings.Builder
	if b.drawn > 0 {
		sb.WriteString(CursorUp(b.drawn))
	}
	for _, id := range b.order {
		sb.WriteString(ClearLine)
		sb.WriteString(b.line(b.latest[id], true))
		sb.WriteString("\n")
	}
	b.drawn = len(b.order)

	fmt.Fprint(b.out, sb.String())
}

// line formats one row: fixed-width status token, resource type, logical
// id, optional parenthesized reason. Styling is applied per line and
// always reset.
func (b *Board) line(e source.Event, styled bool) string {
	typ := alias(b.typeAliases, e.Type)
	id := alias(b.idAliases, e.LogicalID)

	row := fmt.Sprintf("%-*s  %s  %s", statusWidth, string(e.Status), typ, id)
	if e.Reason != "" {
		row += " (" + e.Reason + ")"
	}

	if !styled {
		return row
	}
	style := statusStyle(e.Status)
	if style == "" {
		return row
	}
	return style + row + Reset
}

func alias(aliases map[string]string, name string) string {
	if display, ok := aliases[name]; ok {
		return display
	}
	return name
}

// statusStyle maps a status token to its family style: failures red,
// rollbacks magenta, in-progress yellow, successes green. Unknown tokens
// get no style rather than failing.
func statusStyle(s source.Status) string {
	token := string(s)
	switch {
	case strings.HasSuffix(token, "_FAILED"):
		return FgRed
	case strings.Contains(token, "ROLLBACK"):
		return FgMagenta
	case strings.HasSuffix(token, "_IN_PROGRESS"):
		return FgYellow
	case strings.HasSuffix(token, "_COMPLETE"):
		return FgGreen
	default:
		return ""
	}
}
