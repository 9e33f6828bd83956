package ui

import (
	"os"

	"golang.org/x/term"
)

const Banner = `
 █████╗ ██╗  ██╗ ██╗██╗   ██╗
██╔══██╗███║███║███║╚██╗ ██╔╝
███████║╚██║╚██║╚██║ ╚████╔╝
██╔══██║ ██║ ██║ ██║  ╚██╔╝
██║  ██║ ██║ ██║ ██║   ██║
╚═╝  ╚═╝ ╚═╝ ╚═╝ ╚═╝   ╚═╝
`

const (
	ColorReset  = "\033[0m"
	ColorGray   = "\033[90m"
	ColorWhite  = "\033[97m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"

	ColorMinor    = "\033[37m"
	ColorModerate = "\033[34m"
	ColorMajor    = "\033[33m"
	ColorCritical = "\033[31m"
)

// IsTerminal reports whether stdout is an interactive terminal. Piped output
// gets no ANSI escapes.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Colorize wraps s in the given ANSI color when writing to a terminal.
func Colorize(color, s string) string {
	if !IsTerminal() {
		return s
	}
	return color + s + ColorReset
}
