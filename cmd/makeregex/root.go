package main

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ThePhoDit/GFormsRegExpParser/internal/config"
	"github.com/ThePhoDit/GFormsRegExpParser/internal/logging"
	"github.com/ThePhoDit/GFormsRegExpParser/internal/pattern"
	"github.com/ThePhoDit/GFormsRegExpParser/internal/storage"
)

var version = "1.0.0"

// ExitError carries a specific process exit code out of command execution
type ExitError struct {
	Message string
	Code    int
}

func (e *ExitError) Error() string {
	return e.Message
}

// createRootCommand creates the main command that compiles text to a pattern.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "makeregex <text1> [text2]",
		Short: "Generate a regex that matches any casing of the given text",
		Long: `Generate a regex from a word or sentence that matches letters in either
case using brackets (e.g. [aA]), compresses repeated characters with {n},
collapses whitespace runs to \s+, turns (...) spans into optional groups,
and expands {digit/word} placeholders into alternations.

With two texts, the output matches either one.`,
		Example: `  makeregex Hello
  makeregex "Good   job!!"
  makeregex "colo(u)r"
  makeregex "a(b(c)d)e"
  makeregex "I have {2/two} cats"
  makeregex "I have {2/two} cats" "Tengo {2/dos} gatos"`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to defaults file (default: XDG config dir)")
	rootCmd.PersistentFlags().BoolP("accents", "a", false, "Accented letters also match their unaccented forms")
	rootCmd.Flags().Bool("verify", false, "Compile the generated pattern and check it against the inputs")

	rootCmd.AddCommand(
		createCheckCommand(),
		createInteractiveCommand(),
	)

	return rootCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := loggingContext(cmd)
	log := logging.Get(ctx)

	gen, _, err := generatorFromCommand(cmd)
	if err != nil {
		return err
	}

	text1 := args[0]
	text2 := ""
	if len(args) == 2 {
		text2 = args[1]
	}

	result, err := gen.Generate(text1, text2)
	if err != nil {
		log.Error().Err(err).Msg("pattern generation failed")
		return &ExitError{Message: err.Error(), Code: 2}
	}

	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return fmt.Errorf("failed to get verify flag: %w", err)
	}
	if verify {
		if err := verifyPattern(result, args); err != nil {
			log.Error().Err(err).Msg("pattern verification failed")
			return err
		}
	}

	log.Debug().Int("inputs", len(args)).Int("pattern_length", len(result)).Msg("pattern generated")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// generatorFromCommand builds a pattern generator from the defaults file and
// flags; an explicitly set --accents flag wins over the file.
func generatorFromCommand(cmd *cobra.Command) (*pattern.Generator, *config.Config, error) {
	cfg, err := loadDefaults(cmd)
	if err != nil {
		return nil, nil, err
	}

	accents := cfg.Accents
	if cmd.Flags().Changed("accents") {
		accents, err = cmd.Flags().GetBool("accents")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get accents flag: %w", err)
		}
	}

	return pattern.New(pattern.Options{AccentInsensitive: accents}), cfg, nil
}

func loadDefaults(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	fs := afero.NewOsFs()
	if path == "" {
		path = storage.New(fs).GetConfigPath()
	}

	cfg, err := config.Load(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	return cfg, nil
}

// loggingContext returns the command context, attaching a rotating file
// logger when none is present yet. Generation proceeds without logs if the
// data directory is unavailable.
func loggingContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if logging.Get(ctx).GetLevel() != zerolog.Disabled {
		return ctx
	}

	withLog, err := logging.New(ctx, afero.NewOsFs(), logging.Config{Level: logging.DebugLevel})
	if err != nil {
		return ctx
	}
	return withLog
}

// verifyPattern compiles the generated pattern with the host regexp engine
// and checks that each input text matches it. Inputs containing placeholder
// directives are compile-checked only, since {2/two} matches "2" or "two"
// rather than the directive text itself.
func verifyPattern(generated string, texts []string) error {
	re, err := regexp.Compile("^(?:" + generated + ")$")
	if err != nil {
		return fmt.Errorf("generated pattern does not compile: %w", err)
	}

	for _, text := range texts {
		if strings.ContainsRune(text, '{') {
			continue
		}
		if !re.MatchString(text) {
			return fmt.Errorf("generated pattern %q does not match input %q", generated, text)
		}
	}
	return nil
}
