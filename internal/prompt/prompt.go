// Package prompt asks yes/no questions on the controlling terminal.
//
// The record entry point is invoked from a shell hook whose stdin and
// stdout are part of the hook's pipeline, so the confirmation dialog
// talks to /dev/tty directly instead.
package prompt

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/autoalias/internal/engine"
)

const devTTY = "/dev/tty"

// TTY prompts on the controlling terminal.
type TTY struct {
	path string
}

// New creates a prompter over /dev/tty.
func New() *TTY {
	return &TTY{path: devTTY}
}

// Confirm writes the message to the terminal and reads one response line.
// Only "y" (case-insensitive) is a yes. If the terminal cannot be
// acquired it returns DecisionUnavailable; the caller decides how to
// degrade.
func (p *TTY) Confirm(message string) engine.Decision {
	tty, err := os.OpenFile(p.path, os.O_RDWR, 0)
	if err != nil {
		return engine.DecisionUnavailable
	}
	defer func() {
		_ = tty.Close()
	}()
	if !term.IsTerminal(int(tty.Fd())) {
		return engine.DecisionUnavailable
	}
	if _, err := tty.WriteString(message); err != nil {
		return engine.DecisionUnavailable
	}
	line, err := bufio.NewReader(tty).ReadString('\n')
	if err != nil && line == "" {
		return engine.DecisionUnavailable
	}
	if strings.EqualFold(strings.TrimSpace(line), "y") {
		return engine.DecisionYes
	}
	return engine.DecisionNo
}
