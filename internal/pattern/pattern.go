// Package pattern compiles a literal word or sentence into a regular
// expression that matches its real-world spellings: letters match in either
// case via bracket classes, repeated characters compress to {n}, contiguous
// whitespace collapses to \s+, parenthesized spans become optional
// non-capturing groups, and {digit/word} placeholders become alternations.
//
// The produced pattern uses only non-capturing groups, alternation, bounded
// repetition, character classes, and \s+, so any standard regex engine can
// consume it; this package never executes patterns itself.
package pattern

// Options configures pattern generation.
type Options struct {
	// AccentInsensitive widens letter classes with the unaccented base
	// letter, so á produces [aAáÁ] instead of [áÁ].
	AccentInsensitive bool
}

// Generator compiles literal text into patterns. The zero value is usable
// and accent-sensitive; Generators are stateless and safe for concurrent use.
type Generator struct {
	opts Options
}

// New creates a Generator with the given options.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Build compiles a single text into a pattern fragment. It scans the text
// left to right, classifying each run and concatenating the emitted
// fragments; groups and placeholder sides recurse through Build on their own
// sub-ranges.
func (g *Generator) Build(text string) (string, error) {
	return g.buildRunes([]rune(text))
}

func (g *Generator) buildRunes(s []rune) (string, error) {
	var out []byte
	n := len(s)
	for i := 0; i < n; {
		fragment, next, err := g.segment(s, i, n)
		if err != nil {
			return "", err
		}
		out = append(out, fragment...)
		i = next
	}
	return string(out), nil
}

// Generate compiles text1, and when text2 is non-empty also compiles it and
// joins the two as (?:p1)|(?:p2) so the result matches either input. The
// first compilation failure aborts the whole call with no partial output.
func (g *Generator) Generate(text1, text2 string) (string, error) {
	p1, err := g.Build(text1)
	if err != nil {
		return "", err
	}
	if text2 == "" {
		return p1, nil
	}
	p2, err := g.Build(text2)
	if err != nil {
		return "", err
	}
	return "(?:" + p1 + ")|(?:" + p2 + ")", nil
}
