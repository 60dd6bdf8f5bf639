// Package glob provides backtracking pattern matching over a small
// glob-style mini-language.
//
// A pattern compiles into an immutable tree of match nodes; each node
// consumes a prefix of the input and delegates the remainder to its rest
// continuation, backtracking across choice points until the whole input
// is consumed. Matching is always full-string: there is no partial-match
// or substring mode.
//
// # Basic Usage
//
//	p, err := glob.Parse("*{log,tmp}")
//	if err != nil {
//	    // bad pattern
//	}
//
//	p.Match("debuglog")  // true  (* consumed "debug", then either branch "log")
//	p.Match("debugtxt")  // false
//
// Static patterns can use MustParse:
//
//	var binaries = glob.MustParse("build*")
//
// # Pattern Syntax
//
//	abc        literal run (A-Z, a-z, 0-9)
//	*          any run of zero or more characters
//	{abc,def}  either of exactly two literal alternatives
//	[abc]      exactly one character from the set
//	\x         escape: x is literal, whatever it would otherwise mean
//
// Any other character is rejected with *InvalidCharacterError; a
// structurally invalid {...} or [...] group is rejected with
// *MalformedPatternError. Matching itself never errors.
//
// # Programmatic Matchers
//
// Trees can also be built directly from the primitive constructors, which
// reach three node kinds the pattern syntax does not: Choice (ordered
// N-way alternation), OnePlus (one or more of a single character), and
// Range (one character within an inclusive range).
//
//	m := glob.Lit("x", glob.OnePlus('o', glob.Range('0', '9', nil)))
//	glob.Match(m, "xooo7") // true
//
// Each constructor takes the continuation to match after it; nil means
// end of pattern.
//
// # Pattern Sets
//
// Set compiles an ordered collection of patterns and matches a text if
// any pattern matches. AddLines loads newline-separated pattern lists
// with # comments, collecting per-line warnings instead of failing the
// whole batch.
//
// # Thread Safety
//
// Compiled trees are never mutated during matching, so a Pattern or a
// raw Matcher may be shared freely across goroutines. Set additionally
// synchronizes Add against concurrent Match.
//
// # Complexity
//
// The matcher is a naive backtracking engine: worst-case running time is
// exponential for pathological patterns such as deeply nested wildcards.
// This is inherent to the algorithm, not a defect. Match imposes no
// limit; callers needing bounded latency should use MatchWithBudget or
// SetOptions.MaxBacktrackSteps.
package glob
