package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

// createCheckCommand creates the pattern testing subcommand.
func createCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <pattern> <text>",
		Short: "Test whether a pattern matches a text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matched, err := regexp.MatchString(args[0], args[1])
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}

			if matched {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✓] Pattern matches!")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✗] Pattern does not match")
			return &ExitError{Code: 1}
		},
	}
}
