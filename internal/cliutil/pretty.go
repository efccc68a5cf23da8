package cliutil

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	plusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	minusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	zeroStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// isTerminal reports whether w is a terminal file descriptor worth
// colorizing. Piped/redirected output (any non-*os.File writer, or a file
// that isn't a tty) always gets the spec's plain format.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintASMPretty writes the "+ "/"- "/"  " pretty-print format (spec.md §6),
// colorized when w is a terminal. The bytes written to asm_pretty.txt via
// WriteASMFiles never go through this path, so file output is unaffected.
func PrintASMPretty(w io.Writer, asm [][]int) {
	color := isTerminal(w)
	for _, row := range asm {
		for _, v := range row {
			fmt.Fprint(w, prettyCell(v, color))
		}
		fmt.Fprintln(w)
	}
}

func prettyCell(v int, color bool) string {
	var plain string
	switch v {
	case 1:
		plain = "+ "
	case -1:
		plain = "- "
	default:
		plain = "  "
	}
	if !color {
		return plain
	}
	switch v {
	case 1:
		return plusStyle.Render(plain)
	case -1:
		return minusStyle.Render(plain)
	default:
		return zeroStyle.Render(plain)
	}
}

// PrintMatrix writes a plain integer matrix (ASM, corner-sum, or raw height
// field), one row per line, space-separated.
func PrintMatrix(w io.Writer, m [][]int) {
	for _, row := range m {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, strconv.Itoa(v))
		}
		fmt.Fprintln(w)
	}
}
