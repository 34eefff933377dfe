package search

// Searcher describes the behaviour required from a line filter.
type Searcher interface {
	Search(query, contents string) []string
}
