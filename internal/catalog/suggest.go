package catalog

import "strings"

// MaxSuggestions bounds the autocomplete panel.
const MaxSuggestions = 6

// Suggest returns up to MaxSuggestions entries whose name or meaning
// contains the query case-insensitively, in original list order. An empty
// query yields no suggestions.
func Suggest(entries []NameEntry, query string) []NameEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []NameEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Meaning), q) {
			out = append(out, e)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Suggester tracks the state of an autocomplete panel over one entry list:
// the current query, whether the panel is open, and which suggestion holds
// keyboard focus. It is not safe for concurrent use; each session owns one.
type Suggester struct {
	entries []NameEntry

	query       string
	suggestions []NameEntry
	open        bool
	focused     int // index into suggestions, -1 when nothing is focused
}

// NewSuggester builds a suggester over the given entry list.
func NewSuggester(entries []NameEntry) *Suggester {
	return &Suggester{entries: entries, focused: -1}
}

// SetQuery updates the query text, recomputes suggestions, and re-opens the
// panel whenever there is something to show. Focus resets on every change.
func (s *Suggester) SetQuery(query string) {
	s.query = query
	s.suggestions = Suggest(s.entries, query)
	s.open = len(s.suggestions) > 0
	s.focused = -1
}

// Focus re-opens the panel for the current query, as when the input regains
// focus with text already present.
func (s *Suggester) Focus() {
	if len(s.suggestions) > 0 {
		s.open = true
	}
}

// MoveDown advances keyboard focus, wrapping from the last suggestion back
// to the first.
func (s *Suggester) MoveDown() {
	if !s.open || len(s.suggestions) == 0 {
		return
	}
	s.focused = (s.focused + 1) % len(s.suggestions)
}

// MoveUp moves keyboard focus backwards, wrapping from the first suggestion
// to the last.
func (s *Suggester) MoveUp() {
	if !s.open || len(s.suggestions) == 0 {
		return
	}
	if s.focused <= 0 {
		s.focused = len(s.suggestions) - 1
		return
	}
	s.focused--
}

// Commit selects the focused suggestion: the query becomes the suggestion's
// exact name and the panel closes. The selected entry is returned so the
// host can open its detail view. Without focus there is nothing to commit.
func (s *Suggester) Commit() (NameEntry, bool) {
	if !s.open || s.focused < 0 || s.focused >= len(s.suggestions) {
		return NameEntry{}, false
	}
	e := s.suggestions[s.focused]
	s.query = e.Name
	s.open = false
	s.focused = -1
	return e, true
}

// Select commits a specific suggestion by index, as when one is clicked.
func (s *Suggester) Select(i int) (NameEntry, bool) {
	if !s.open || i < 0 || i >= len(s.suggestions) {
		return NameEntry{}, false
	}
	s.focused = i
	return s.Commit()
}

// Dismiss closes the panel without committing, for Escape or a click
// outside the input and panel.
func (s *Suggester) Dismiss() {
	s.open = false
	s.focused = -1
}

// Open reports whether the panel is showing.
func (s *Suggester) Open() bool { return s.open }

// Query returns the current query text.
func (s *Suggester) Query() string { return s.query }

// Suggestions returns the current suggestion list.
func (s *Suggester) Suggestions() []NameEntry { return s.suggestions }

// Focused returns the index of the focused suggestion, -1 for none.
func (s *Suggester) Focused() int { return s.focused }
