package board

import "fmt"

// ANSI escape sequences. Only the overwrite-mode primitives the board
// needs: move up N lines, clear to end of line, and a handful of styles.
const (
	ClearLine = "\033[K" // Clear from cursor to end of line

	Reset = "\033[0m"
	Dim   = "\033[2m"

	FgRed     = "\033[31m"
	FgGreen   = "\033[32m"
	FgYellow  = "\033[33m"
	FgMagenta = "\033[35m"
)

// CursorUp returns an ANSI escape sequence to move the cursor up n lines.
func CursorUp(n int) string {
	return fmt.Sprintf("\033[%dA", n)
}
