package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThePhoDit/GFormsRegExpParser/internal/pattern"
	"github.com/ThePhoDit/GFormsRegExpParser/internal/prompt"
	"github.com/ThePhoDit/GFormsRegExpParser/internal/testutil"
)

// fakePrompter feeds canned lines to runInteractive, then cancels.
type fakePrompter struct {
	lines  []string
	next   int
	closed bool
}

func (p *fakePrompter) Prompt(string) (string, error) {
	if p.next >= len(p.lines) {
		return "", prompt.ErrCancelled
	}
	line := p.lines[p.next]
	p.next++
	return line, nil
}

func (p *fakePrompter) Close() error {
	p.closed = true
	return nil
}

func TestRunInteractive(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)
	color.NoColor = true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	p := &fakePrompter{lines: []string{"Hi", "colo(u", "Bye"}}
	err := runInteractive(cmd, pattern.New(pattern.Options{}), p)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "[hH][iI]\n")
	assert.Contains(t, output, "Error:")
	assert.Contains(t, output, "[bB][yY][eE]\n")
	assert.True(t, p.closed, "prompter should be closed on exit")
}

func TestRunInteractiveStopsOnEmptyLine(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)
	color.NoColor = true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	p := &fakePrompter{lines: []string{"", "never reached"}}
	err := runInteractive(cmd, pattern.New(pattern.Options{}), p)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, p.next, "nothing should be read after the empty line")
}
