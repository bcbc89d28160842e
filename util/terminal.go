package util

import (
	"os"

	"golang.org/x/term"
)

// Terminal abstracts the terminal queries used by goclip
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

type defaultTerminal struct{}

func (defaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (defaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// DefaultTerminal queries the process' real terminal
var DefaultTerminal Terminal = defaultTerminal{}

// TerminalWidth returns the width of the terminal attached to stdout or fallback when
// stdout is not a terminal
func TerminalWidth(fallback int) int {
	return TerminalWidthOf(DefaultTerminal, int(os.Stdout.Fd()), fallback)
}

// TerminalWidthOf returns the width of the terminal fd using t, or fallback
func TerminalWidthOf(t Terminal, fd int, fallback int) int {
	if !t.IsTerminal(fd) {
		return fallback
	}

	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
