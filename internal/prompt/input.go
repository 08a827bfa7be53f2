// Package prompt provides line input for interactive mode.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts input with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter implements Prompter on top of liner with history support.
type LinerPrompter struct {
	state *liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true) // Ctrl+C to cancel
	return &LinerPrompter{state: line}
}

// Prompt reads one line of input. Non-empty lines are added to history.
func (p *LinerPrompter) Prompt(text string) (string, error) {
	result, err := p.state.Prompt(text)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	if result != "" {
		p.state.AppendHistory(result)
	}
	return result, nil
}

// Close restores the terminal state.
func (p *LinerPrompter) Close() error {
	if err := p.state.Close(); err != nil {
		return fmt.Errorf("failed to close prompter: %w", err)
	}
	return nil
}
