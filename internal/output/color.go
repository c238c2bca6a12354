package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	Filename lipgloss.Style
	LineNum  lipgloss.Style
	Column   lipgloss.Style
	Match    lipgloss.Style
}

// NewStyles creates the default color styles rendered with the given profile.
// The renderer is detached from any terminal so output is identical whether
// it ends up on a TTY, in a pipe, or in a test buffer.
func NewStyles(profile termenv.Profile) Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return Styles{
		Filename: base.Foreground(lipgloss.Color("5")),            // magenta
		LineNum:  base.Foreground(lipgloss.Color("2")),            // green
		Column:   base.Foreground(lipgloss.Color("6")),            // cyan
		Match:    base.Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return NewStyles(termenv.Ascii)
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
