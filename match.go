package glob

import (
	"strings"
)

// DefaultMaxBacktrackSteps is the default step limit for MatchWithBudget.
// This prevents pathological patterns (e.g. deeply nested wildcards) from
// causing excessive CPU usage. The budget is shared across the entire match
// attempt and covers every node visit and every backtracking trial.
const DefaultMaxBacktrackSteps = 10000

// notAMatch is the sentinel position returned when a matcher fails at a
// given branch. It is distinct from every valid string position; it is a
// normal return value propagated by callers, never an error.
const notAMatch = -1

// Matcher is one node of a compiled pattern tree. Each node consumes zero
// or more characters of the input and delegates the remainder to its rest
// continuation. A tree is built once, never mutated during matching, and
// is therefore safe to reuse across concurrent Match calls.
//
// The set of node kinds is closed: Null, Lit, Any, Either, Choice,
// OnePlus, Charset, and Range. The unexported match method prevents
// implementations outside this package.
type Matcher interface {
	// matchFrom attempts to consume input starting at start and returns
	// the position after this node's chain has matched, or notAMatch.
	matchFrom(text string, start int, ctx *matchContext) int

	// String returns a debug representation of the node and its chain.
	String() string
}

// matchContext tracks state during matching to prevent runaway backtracking.
type matchContext struct {
	steps    int
	maxSteps int
}

// newMatchContext creates a match context with the specified limit.
// If maxSteps is 0, uses DefaultMaxBacktrackSteps.
// If maxSteps is -1, no limit is applied.
func newMatchContext(maxSteps int) *matchContext {
	if maxSteps == 0 {
		maxSteps = DefaultMaxBacktrackSteps
	}
	return &matchContext{
		steps:    0,
		maxSteps: maxSteps,
	}
}

// tick increments the step counter and returns false if the limit is exceeded.
func (ctx *matchContext) tick() bool {
	ctx.steps++
	if ctx.maxSteps < 0 {
		return true // No limit
	}
	return ctx.steps <= ctx.maxSteps
}

// Match reports whether m matches text in its entirety. There is no
// partial-match mode: the match succeeds only if the whole input is
// consumed.
//
// Matching never returns an error; absence of a match is the false return.
// Backtracking is unbounded — worst case exponential for pathological
// patterns, which is an inherent property of a naive backtracking matcher.
// Callers needing bounded latency should use MatchWithBudget.
//
// Thread-safe: a Matcher tree is immutable and may be shared across
// concurrent Match calls.
func Match(m Matcher, text string) bool {
	ctx := newMatchContext(-1)
	return m.matchFrom(text, 0, ctx) == len(text)
}

// MatchWithBudget is Match with a step budget. Every node visit and every
// backtracking trial counts as one step; when the budget is exhausted the
// match fails (returns false), indistinguishable from a non-match.
// maxSteps of 0 uses DefaultMaxBacktrackSteps; -1 means unlimited
// (equivalent to Match).
func MatchWithBudget(m Matcher, text string, maxSteps int) bool {
	ctx := newMatchContext(maxSteps)
	return m.matchFrom(text, 0, ctx) == len(text)
}

// orNull substitutes a fresh terminal for a nil rest continuation.
// Every tree gets its own terminal instance; Null is stateless, so this
// is a clarity matter rather than a behavioral one.
func orNull(rest Matcher) Matcher {
	if rest == nil {
		return nullMatcher{}
	}
	return rest
}

// nullMatcher matches zero characters. It is the implicit terminator of
// every pattern chain: it consumes nothing, so the full-string check in
// Match succeeds exactly when the chain ends at end of input.
type nullMatcher struct{}

// Null returns the terminal matcher. It reports success at its own
// position without consuming input; a bare Null matches only the empty
// string under Match.
func Null() Matcher {
	return nullMatcher{}
}

func (nullMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	if !ctx.tick() {
		return notAMatch
	}
	return start
}

func (nullMatcher) String() string { return "" }

// litMatcher matches an exact run of characters.
type litMatcher struct {
	chars string
	rest  Matcher
}

// Lit returns a matcher for the exact character run chars, continuing
// with rest (nil means end of pattern).
func Lit(chars string, rest Matcher) Matcher {
	return litMatcher{chars: chars, rest: orNull(rest)}
}

func (m litMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	if !ctx.tick() {
		return notAMatch
	}
	end := start + len(m.chars)
	if end > len(text) || text[start:end] != m.chars {
		return notAMatch
	}
	return m.rest.matchFrom(text, end, ctx)
}

func (m litMatcher) String() string {
	return escapeLiteral(m.chars) + m.rest.String()
}

// anyMatcher matches any run of zero or more characters.
type anyMatcher struct {
	rest Matcher
}

// Any returns a wildcard matcher: zero or more of any character,
// continuing with rest (nil means end of pattern). Consumption lengths
// are tried shortest first, backtracking until rest reaches the end of
// the input.
func Any(rest Matcher) Matcher {
	return anyMatcher{rest: orNull(rest)}
}

func (m anyMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	// Less than or equal: the wildcard must be able to consume nothing.
	for i := start; i <= len(text); i++ {
		if !ctx.tick() {
			return notAMatch
		}
		// Success here means reaching the end of the whole string, not
		// merely that rest matched. Nested wildcards rely on this.
		if r := m.rest.matchFrom(text, i, ctx); r == len(text) {
			return r
		}
	}
	return notAMatch
}

func (m anyMatcher) String() string {
	return "*" + m.rest.String()
}

// eitherMatcher matches its left alternative or, failing that, its right.
type eitherMatcher struct {
	left  Matcher
	right Matcher
	rest  Matcher
}

// Either returns a two-way alternation: left followed by rest, or else
// right followed by rest (nil rest means end of pattern). Left is tried
// first; the first alternative that leads to full-string success wins.
func Either(left, right, rest Matcher) Matcher {
	return eitherMatcher{left: left, right: right, rest: orNull(rest)}
}

func (m eitherMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	if !ctx.tick() {
		return notAMatch
	}
	for _, pat := range [2]Matcher{m.left, m.right} {
		end := pat.matchFrom(text, start, ctx)
		if end == notAMatch {
			continue
		}
		if end = m.rest.matchFrom(text, end, ctx); end == len(text) {
			return end
		}
	}
	return notAMatch
}

func (m eitherMatcher) String() string {
	return "{" + m.left.String() + "," + m.right.String() + "}" + m.rest.String()
}

// choiceMatcher generalizes eitherMatcher to an ordered list of candidates.
type choiceMatcher struct {
	patterns []Matcher
	rest     Matcher
}

// Choice returns an ordered N-way alternation: candidates are tried in
// list order and the first whose match followed by rest reaches the end
// of the input wins. An empty candidate list never matches. nil rest
// means end of pattern.
//
// Choice has no surface syntax in the pattern language; it is a
// programmatic primitive only.
func Choice(patterns []Matcher, rest Matcher) Matcher {
	return choiceMatcher{patterns: patterns, rest: orNull(rest)}
}

func (m choiceMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	if !ctx.tick() {
		return notAMatch
	}
	for _, pat := range m.patterns {
		end := pat.matchFrom(text, start, ctx)
		if end == notAMatch {
			continue
		}
		if end = m.rest.matchFrom(text, end, ctx); end == len(text) {
			return end
		}
	}
	return notAMatch
}

func (m choiceMatcher) String() string {
	parts := make([]string, len(m.patterns))
	for i, pat := range m.patterns {
		parts[i] = pat.String()
	}
	return "{" + strings.Join(parts, ",") + "}" + m.rest.String()
}

// onePlusMatcher matches one or more repetitions of a single character.
type onePlusMatcher struct {
	c    byte
	rest Matcher
}

// OnePlus returns a matcher for one or more contiguous repetitions of c,
// continuing with rest (nil means end of pattern). Zero repetitions never
// match; the repetition boundary backtracks until rest reaches the end of
// the input.
//
// OnePlus has no surface syntax in the pattern language; it is a
// programmatic primitive only.
func OnePlus(c byte, rest Matcher) Matcher {
	return onePlusMatcher{c: c, rest: orNull(rest)}
}

func (m onePlusMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	// Repetitions must be contiguous from start; the loop stops at the
	// first non-matching character.
	for i := start; i < len(text) && text[i] == m.c; i++ {
		if !ctx.tick() {
			return notAMatch
		}
		if end := m.rest.matchFrom(text, i+1, ctx); end == len(text) {
			return end
		}
	}
	return notAMatch
}

func (m onePlusMatcher) String() string {
	return escapeLiteral(string(m.c)) + "+" + m.rest.String()
}

// charsetMatcher matches exactly one character from a set.
type charsetMatcher struct {
	chars string
	rest  Matcher
}

// Charset returns a matcher for exactly one input character that is a
// member of chars, continuing with rest (nil means end of pattern).
func Charset(chars string, rest Matcher) Matcher {
	return charsetMatcher{chars: chars, rest: orNull(rest)}
}

func (m charsetMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	if !ctx.tick() {
		return notAMatch
	}
	if start >= len(text) {
		return notAMatch
	}
	for i := 0; i < len(m.chars); i++ {
		if text[start] != m.chars[i] {
			continue
		}
		if end := m.rest.matchFrom(text, start+1, ctx); end == len(text) {
			return end
		}
	}
	return notAMatch
}

func (m charsetMatcher) String() string {
	return "[" + escapeLiteral(m.chars) + "]" + m.rest.String()
}

// rangeMatcher matches exactly one character within an inclusive range.
type rangeMatcher struct {
	low  byte
	high byte
	rest Matcher
}

// Range returns a matcher for exactly one input character within
// [low, high] inclusive (ordinal comparison), continuing with rest
// (nil means end of pattern).
//
// Range has no surface syntax in the pattern language; it is a
// programmatic primitive only.
func Range(low, high byte, rest Matcher) Matcher {
	return rangeMatcher{low: low, high: high, rest: orNull(rest)}
}

func (m rangeMatcher) matchFrom(text string, start int, ctx *matchContext) int {
	if !ctx.tick() {
		return notAMatch
	}
	if start >= len(text) {
		return notAMatch
	}
	if text[start] < m.low || text[start] > m.high {
		return notAMatch
	}
	return m.rest.matchFrom(text, start+1, ctx)
}

func (m rangeMatcher) String() string {
	return "[" + escapeLiteral(string(m.low)) + "-" + escapeLiteral(string(m.high)) + "]" + m.rest.String()
}

// escapeLiteral backslash-escapes pattern metacharacters so that debug
// strings round-trip through the tokenizer.
func escapeLiteral(s string) string {
	if !strings.ContainsAny(s, `*{}[],\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '{', '}', '[', ']', ',', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
