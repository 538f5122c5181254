// Package repl is a line-oriented calculator shell.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"
)

const prompt = "> "

const helpText = `Type keys and press Enter.
  0-9 .     digits
  + - * /   operator (evaluated left to right)
  =         calculate
  c         clear
  <         delete last character
  %         divide by 100
  n         toggle sign
  r         square root
  q         square
  u         undo
Commands: help, history, clear-history, quit`

// REPL reads keys from in and writes the display to out
type REPL struct {
	engine *calculator.Engine
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a REPL driving engine
func New(engine *calculator.Engine, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run reads lines until input ends, the user quits, or ctx is cancelled
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, r.engine.CurrentInput())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(r.out, prompt)
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		if quit := r.handleLine(strings.TrimSpace(r.in.Text())); quit {
			return nil
		}
	}
}

// handleLine runs one line of input and reports whether the user asked to quit
func (r *REPL) handleLine(line string) bool {
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(r.out, helpText)
		return false
	case "history":
		r.printHistory()
		return false
	case "clear-history":
		r.engine.ClearHistory()
		fmt.Fprintln(r.out, "History cleared.")
		return false
	}

	display, err := keypad.PressSequence(r.engine, line)
	if err != nil {
		slog.Debug("Key sequence failed", "keys", line, "error", err)
		fmt.Fprintf(r.out, "Error: %s\n", results.ErrorMessage(err))
	}
	fmt.Fprintln(r.out, display)
	return false
}

func (r *REPL) printHistory() {
	entries := results.NewHistoryEntries(r.engine.History())
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No calculations yet.")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(r.out, "%d: %s = %s\n", entry.Index, entry.Expression, entry.Display)
	}
}
