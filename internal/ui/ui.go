// Package ui implements the terminal prompts used by the selection flow.
// On a terminal it runs small bubbletea programs; otherwise it falls back to
// numbered line prompts so the flow can be piped or scripted.
package ui

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrCancelled is returned when the user leaves a prompt without answering.
var ErrCancelled = errors.New("selection cancelled")

// Prompter asks the user for a query and for choices.
type Prompter struct {
	in          io.Reader
	lines       *bufio.Reader
	out         io.Writer
	interactive bool
}

// New returns a prompter on stdin/stdout, interactive when stdin is a terminal.
func New() *Prompter {
	return &Prompter{
		in:          os.Stdin,
		lines:       bufio.NewReader(os.Stdin),
		out:         os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewLine returns a non-interactive prompter reading answers line by line.
func NewLine(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, lines: bufio.NewReader(in), out: out}
}

// Input prompts for free text.
func (p *Prompter) Input(ctx context.Context, prompt string) (string, error) {
	if p.interactive {
		return runInput(ctx, p.in, p.out, prompt)
	}
	return lineInput(p.lines, p.out, prompt)
}

// Select presents items and returns the chosen index.
func (p *Prompter) Select(ctx context.Context, prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, errors.New("no items to select from")
	}
	if p.interactive {
		return runSelect(ctx, p.in, p.out, prompt, items)
	}
	return lineSelect(p.lines, p.out, prompt, items)
}
