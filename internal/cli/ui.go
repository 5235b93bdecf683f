package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtree "github.com/charmbracelet/lipgloss/tree"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - marks
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - keys
	colorDim    = lipgloss.Color("240") // Dim gray - guides
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for node values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric results.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for tree guides and secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleMark for nodes marked in the browser.
	StyleMark = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(8)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// =============================================================================
// Output
// =============================================================================

// ui writes command output, styled unless color is off.
type ui struct {
	w     io.Writer
	color bool
}

func (u *ui) style(s lipgloss.Style, text string) string {
	if !u.color {
		return text
	}
	return s.Render(text)
}

// println prints a plain line.
func (u *ui) println(text string) {
	fmt.Fprintln(u.w, text)
}

// printValue prints a node value.
func (u *ui) printValue(v string) {
	fmt.Fprintln(u.w, u.style(StyleValue, v))
}

// printNumber prints a numeric result.
func (u *ui) printNumber(n int) {
	fmt.Fprintln(u.w, u.style(StyleNumber, fmt.Sprint(n)))
}

// printSuccess prints a success message.
func (u *ui) printSuccess(format string, args ...any) {
	fmt.Fprintln(u.w, u.style(styleIconSuccess, iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printKeyValue prints a labeled value.
func (u *ui) printKeyValue(key, value string) {
	if !u.color {
		fmt.Fprintf(u.w, "%-8s %s\n", key, value)
		return
	}
	fmt.Fprintln(u.w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// styleTree applies the palette to a lipgloss tree; without color the tree
// is left as is. The enumerator keeps its one-space right padding.
func (u *ui) styleTree(t *lgtree.Tree) *lgtree.Tree {
	if !u.color {
		return t
	}
	return t.
		EnumeratorStyle(StyleDim.PaddingRight(1)).
		ItemStyle(StyleValue)
}
