package dutch

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMinLength is the minimum literal length, in characters, considered
// worth reporting.
const DefaultMinLength = 30

// Config holds the scan parameters, fixed for the duration of one scan.
type Config struct {
	MinLength int
}

func (cfg Config) minLength() int {
	if cfg.MinLength <= 0 {
		return DefaultMinLength
	}
	return cfg.MinLength
}

// Match is a string literal that passed all filters, with the 1-based number
// of the line it was found on. The literal text is reported as written in the
// source: escape sequences are not decoded.
type Match struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

var (
	// A single- or double-quoted literal on one line. An escaped quote does
	// not terminate the literal; an unterminated quote produces no match.
	literalPattern = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"|'((?:[^'\\]|\\.)*)'`)

	// Natural-language text almost always carries punctuation or whitespace.
	userFacingPattern = regexp.MustCompile(`[.,!?:;()\[\]{}<>\s]`)

	// Dotted namespace/path tokens like com.example.Foo. Full-string match only.
	identifierPattern = regexp.MustCompile(`^\w+(?:\.\w+)+$`)
)

type verdict int

const (
	accepted verdict = iota
	tooShort
	noPunctuation
	identifierShaped
)

func classify(text string, cfg Config) verdict {
	if utf8.RuneCountInString(text) < cfg.minLength() {
		return tooShort
	}
	if !userFacingPattern.MatchString(text) {
		return noPunctuation
	}
	if identifierPattern.MatchString(strings.TrimSpace(text)) {
		return identifierShaped
	}
	return accepted
}

// literals returns the contents of every quoted literal on one line,
// left to right, without the delimiting quotes.
func literals(line string) []string {
	var out []string
	for _, groups := range literalPattern.FindAllStringSubmatch(line, -1) {
		if strings.HasPrefix(groups[0], `"`) {
			out = append(out, groups[1])
		} else {
			out = append(out, groups[2])
		}
	}
	return out
}

// scanClassified reads r line by line and reports every literal found,
// together with the filter verdict for it. Lines are independent: no state
// crosses a line boundary.
func scanClassified(r io.Reader, cfg Config, fn func(lineno int, text string, v verdict) error) error {
	br := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineno++
			for _, text := range literals(line) {
				if err := fn(lineno, text, classify(text, cfg)); err != nil {
					return err
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Scan reads r line by line and calls emit for every literal that passes all
// filters, in line order and left-to-right order within a line.
func Scan(r io.Reader, cfg Config, emit func(Match) error) error {
	return scanClassified(r, cfg, func(lineno int, text string, v verdict) error {
		if v != accepted {
			return nil
		}
		return emit(Match{Line: lineno, Text: text})
	})
}
