package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ThePhoDit/GFormsRegExpParser/internal/pattern"
	"github.com/ThePhoDit/GFormsRegExpParser/internal/prompt"
)

// createInteractiveCommand creates the REPL subcommand.
func createInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Convert lines to patterns interactively",
		Long:  "Read lines from the terminal and print the generated pattern for each.\nAn empty line or Ctrl+C exits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, cfg, err := generatorFromCommand(cmd)
			if err != nil {
				return err
			}
			if !cfg.Color {
				color.NoColor = true
			}

			return runInteractive(cmd, gen, prompt.NewLinerPrompter())
		},
	}
}

func runInteractive(cmd *cobra.Command, gen *pattern.Generator, p prompt.Prompter) error {
	defer func() { _ = p.Close() }()

	out := cmd.OutOrStdout()
	for {
		line, err := p.Prompt(color.CyanString("text> "))
		if err != nil {
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}

		result, err := gen.Build(line)
		if err != nil {
			_, _ = fmt.Fprintln(out, color.RedString("Error: %v", err))
			continue
		}
		_, _ = fmt.Fprintln(out, color.GreenString("%s", result))
	}
}
