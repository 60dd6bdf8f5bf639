package glob

import (
	"sync"
)

// ParseWarning reports a pattern line that failed to compile during
// AddLines. Bad lines are skipped rather than aborting the whole batch.
type ParseWarning struct {
	Pattern string // the problematic pattern line
	Line    int    // line number in the source content (1-indexed)
	Err     error  // the underlying *InvalidCharacterError or *MalformedPatternError
}

// WarningHandler is called for each parse warning if set.
type WarningHandler func(warning ParseWarning)

// SetOptions configures Set behavior.
type SetOptions struct {
	// MaxBacktrackSteps limits backtracking during each pattern's match
	// attempt. Default: 0, meaning unlimited (the package default for
	// Match). Set a positive value to bound pathological patterns; an
	// exhausted budget counts as a non-match for that pattern.
	MaxBacktrackSteps int
}

// MatchResult provides detailed information about a Set match decision.
type MatchResult struct {
	// Pattern is the text of the first matching pattern (empty if
	// Matched == false).
	Pattern string

	// Index is the position of the matching pattern in insertion order.
	// Zero-valued if Matched == false.
	Index int

	// Line is the line number (1-indexed) if the pattern came from
	// AddLines, zero if it was added via Add or no pattern matched.
	Line int

	// Matched indicates whether any pattern in the set matched the text.
	Matched bool
}

// setEntry is one compiled pattern plus its provenance.
type setEntry struct {
	pat  *Pattern
	line int // source line for AddLines entries, 0 for Add
}

// Set holds an ordered collection of compiled patterns. A text matches
// the set if it matches any pattern; patterns are tried in insertion
// order and the first full match wins.
//
// Thread Safety: Set is safe for concurrent use. Compiled trees are
// immutable, so concurrent Match calls never race; Add/AddLines take the
// write lock. For best performance, batch all Add calls before starting
// concurrent Match operations.
type Set struct {
	mu       sync.RWMutex
	entries  []setEntry
	warnings []ParseWarning
	handler  WarningHandler
	opts     SetOptions
}

// NewSet creates an empty Set with default options.
func NewSet() *Set {
	return &Set{}
}

// NewSetWithOptions creates a Set with custom options.
func NewSetWithOptions(opts SetOptions) *Set {
	return &Set{opts: opts}
}

// SetWarningHandler sets a callback for parse warnings from AddLines.
// If set, warnings are reported via callback instead of being collected.
// Must be called before AddLines for the handler to receive its warnings.
func (s *Set) SetWarningHandler(fn WarningHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = fn
}

// Add compiles the given patterns and appends them to the set.
// Compilation is all-or-nothing: on the first bad pattern the error is
// returned and nothing is added.
//
// Thread-safe: can be called concurrently with Match.
func (s *Set) Add(patterns ...string) error {
	// Compile outside the lock
	entries := make([]setEntry, 0, len(patterns))
	for _, pattern := range patterns {
		p, err := Parse(pattern)
		if err != nil {
			return err
		}
		entries = append(entries, setEntry{pat: p})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

// AddLines parses newline-separated pattern content and adds each line
// as a pattern.
//
// Input normalization (applied automatically):
//   - UTF-8 BOM is stripped if present
//   - CRLF and CR line endings are normalized to LF
//   - Unescaped trailing whitespace on each line is trimmed
//
// Blank lines and lines starting with # are skipped; a leading \# keeps
// the line as a pattern whose first character is a literal #. Lines that
// fail to compile become warnings and are skipped.
//
// Returns warnings for bad lines. Warnings are only returned if no
// WarningHandler was set via SetWarningHandler; otherwise they go to the
// handler.
//
// Thread-safe: can be called concurrently with Match.
func (s *Set) AddLines(content []byte) []ParseWarning {
	if content == nil {
		return nil
	}

	// Parse outside the lock
	entries, parseWarnings := parseLines(content)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entries...)

	if s.handler != nil {
		for _, w := range parseWarnings {
			s.handler(w)
		}
		return nil
	}

	s.warnings = append(s.warnings, parseWarnings...)
	return parseWarnings
}

// Warnings returns all collected parse warnings.
// Only populated if no WarningHandler was set.
func (s *Set) Warnings() []ParseWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external mutation
	if len(s.warnings) == 0 {
		return nil
	}
	result := make([]ParseWarning, len(s.warnings))
	copy(result, s.warnings)
	return result
}

// Match reports whether text matches any pattern in the set.
// Thread-safe: can be called concurrently.
func (s *Set) Match(text string) bool {
	return s.MatchWithReason(text).Matched
}

// MatchWithReason returns detailed information about which pattern
// matched the text. Patterns are tried in insertion order; the first
// full match wins.
// Thread-safe: can be called concurrently.
func (s *Set) MatchWithReason(text string) MatchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries {
		e := &s.entries[i]

		var ok bool
		if s.opts.MaxBacktrackSteps > 0 {
			ok = e.pat.MatchWithBudget(text, s.opts.MaxBacktrackSteps)
		} else {
			ok = e.pat.Match(text)
		}

		if ok {
			return MatchResult{
				Pattern: e.pat.String(),
				Index:   i,
				Line:    e.line,
				Matched: true,
			}
		}
	}

	return MatchResult{}
}

// PatternCount returns the number of patterns currently in the set.
// Useful for debugging and testing.
func (s *Set) PatternCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
