package pattern

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// segment classifies the rune at s[i] and emits the regex fragment for the
// maximal run it starts. It returns the fragment and the index of the first
// rune after the run. Classification order is whitespace, group, placeholder,
// letter, then literal; the first match wins.
func (g *Generator) segment(s []rune, i, end int) (string, int, error) {
	ch := s[i]

	switch {
	case unicode.IsSpace(ch):
		j := i + 1
		for j < end && unicode.IsSpace(s[j]) {
			j++
		}
		return `\s+`, j, nil

	case ch == '(':
		j, err := findMatchingParen(s, i)
		if err != nil {
			return "", 0, err
		}
		inner, err := g.buildRunes(s[i+1 : j])
		if err != nil {
			return "", 0, err
		}
		return "(?:" + inner + ")?", j + 1, nil

	case ch == '{':
		return g.placeholder(s, i, end)

	case unicode.IsLetter(ch):
		fragment, j := g.letterRun(s, i, end)
		return fragment, j, nil
	}

	// Any other rune: compress an exact-equality run and escape it.
	j := i + 1
	for j < end && !unicode.IsSpace(s[j]) && s[j] != '(' && s[j] != ')' && s[j] == ch {
		j++
	}
	fragment := regexp.QuoteMeta(string(ch))
	if count := j - i; count > 1 {
		fragment += fmt.Sprintf("{%d}", count)
	}
	return fragment, j, nil
}

// placeholder handles a {left/right} directive starting at s[i] == '{'.
// Both sides are trimmed and compiled independently, so each side gets full
// whitespace, group, letter, and repeat handling of its own.
func (g *Generator) placeholder(s []rune, i, end int) (string, int, error) {
	j := i + 1
	for j < end && s[j] != '}' {
		j++
	}
	if j >= end {
		return "", 0, fmt.Errorf("at offset %d: %w", i, ErrUnmatchedBrace)
	}

	content := string(s[i+1 : j])
	sep := strings.IndexRune(content, '/')
	if sep == -1 {
		return "", 0, fmt.Errorf("at offset %d: %w", i, ErrInvalidPlaceholder)
	}

	left, err := g.Build(strings.TrimSpace(content[:sep]))
	if err != nil {
		return "", 0, err
	}
	right, err := g.Build(strings.TrimSpace(content[sep+1:]))
	if err != nil {
		return "", 0, err
	}
	return "(?:" + left + ")|(?:" + right + ")", j + 1, nil
}

// letterRun emits a case-insensitive bracket class for the run of letters
// starting at s[i] that case-fold to the same letter, with a {n} suffix for
// runs longer than one. Run detection always compares the original runes;
// accent stripping only widens the class.
func (g *Generator) letterRun(s []rune, i, end int) (string, int) {
	ch := s[i]
	j := i + 1
	for j < end && unicode.IsLetter(s[j]) && unicode.ToLower(s[j]) == unicode.ToLower(ch) {
		j++
	}

	var class []rune
	seen := make(map[rune]bool, 4)
	add := func(r rune) {
		for _, v := range []rune{unicode.ToLower(r), unicode.ToUpper(r)} {
			if !seen[v] {
				seen[v] = true
				class = append(class, v)
			}
		}
	}

	if g.opts.AccentInsensitive {
		if base := stripAccents(ch); unicode.ToLower(base) != unicode.ToLower(ch) {
			add(base)
		}
	}
	add(ch)

	fragment := "[" + string(class) + "]"
	if count := j - i; count > 1 {
		fragment += fmt.Sprintf("{%d}", count)
	}
	return fragment, j
}

// findMatchingParen returns the index of the ')' matching s[i] == '(',
// honoring nesting. s must be scoped to the region being resolved; recursive
// builds always pass a freshly sliced sub-range, so indices stay local.
func findMatchingParen(s []rune, i int) (int, error) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, fmt.Errorf("at offset %d: %w", i, ErrUnmatchedParen)
}
