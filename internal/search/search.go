package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type caseSensitiveSearcher struct{}

type caseInsensitiveSearcher struct{}

// New returns the Searcher matching the requested case sensitivity.
func New(caseSensitive bool) Searcher {
	if caseSensitive {
		return &caseSensitiveSearcher{}
	}
	return &caseInsensitiveSearcher{}
}

func (s *caseSensitiveSearcher) Search(query, contents string) []string {
	return Search(query, contents)
}

func (s *caseInsensitiveSearcher) Search(query, contents string) []string {
	return SearchCaseInsensitive(query, contents)
}

// Search returns every line of contents containing query, trimmed of
// surrounding whitespace, in file order. The returned strings share memory
// with contents.
func Search(query, contents string) []string {
	return filterLines(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive is Search with both query and candidate lines
// lowercased before the containment test. Results keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	// A Caser keeps state between calls and must not be shared.
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	return filterLines(contents, func(line string) bool {
		return strings.Contains(lower.String(line), query)
	})
}

// filterLines applies match to each untrimmed line and trims only the
// lines that are kept.
func filterLines(contents string, match func(line string) bool) []string {
	results := []string{}
	for line := range lines(contents) {
		if match(line) {
			results = append(results, strings.TrimSpace(line))
		}
	}
	return results
}

// lines yields the lines of s without their "\n" or "\r\n" terminators.
// A final newline does not start a new line.
func lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
