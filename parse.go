package glob

import (
	"fmt"
)

// MalformedPatternError reports a structurally invalid token sequence:
// an unbalanced or incorrectly shaped {...} or [...] group, or a stray
// closing token.
type MalformedPatternError struct {
	Pattern string // the pattern being parsed
	Index   int    // token index where parsing failed (0-indexed)
	Reason  string // human-readable description
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("glob: malformed pattern %q: %s (token %d)", e.Pattern, e.Reason, e.Index)
}

// Pattern is a compiled pattern: the original text plus the root of its
// matcher tree. A Pattern is immutable after Parse and safe for
// concurrent use.
type Pattern struct {
	pattern string
	root    Matcher
}

// Parse compiles a pattern into a matcher tree.
//
// The surface grammar is:
//
//	pattern := unit*
//	unit    := literal-run | '*' | '{' literal ',' literal '}' | '[' literal ']'
//
// with backslash escaping any character into the surrounding literal run.
// An empty pattern compiles to the bare terminal and matches only the
// empty string.
//
// Parse fails with *InvalidCharacterError for bytes the tokenizer rejects
// and with *MalformedPatternError for structurally invalid token
// sequences. No partial Pattern is returned on error.
func Parse(pattern string) (*Pattern, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}

	root, err := buildMatcher(pattern, tokens, 0)
	if err != nil {
		return nil, err
	}

	return &Pattern{pattern: pattern, root: root}, nil
}

// MustParse is Parse but panics on error. Intended for patterns known
// valid at compile time, typically package-level variables.
func MustParse(pattern string) *Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether text matches the compiled pattern in its
// entirety. Thread-safe: the tree is never mutated during matching.
func (p *Pattern) Match(text string) bool {
	return Match(p.root, text)
}

// MatchWithBudget is Match with a backtracking step budget; see
// MatchWithBudget at package level for the budget semantics.
func (p *Pattern) MatchWithBudget(text string, maxSteps int) bool {
	return MatchWithBudget(p.root, text, maxSteps)
}

// String returns the original pattern text.
func (p *Pattern) String() string {
	return p.pattern
}

// buildMatcher recursively builds the matcher chain for tokens[i:].
// Each unit's rest continuation is the build of everything after it, so
// the first token becomes the outermost node and the terminal sits at
// the innermost position once tokens are exhausted.
func buildMatcher(pattern string, tokens []Token, i int) (Matcher, error) {
	if i >= len(tokens) {
		return Null(), nil
	}

	switch tok := tokens[i]; tok.Type {
	case TokenLiteral:
		rest, err := buildMatcher(pattern, tokens, i+1)
		if err != nil {
			return nil, err
		}
		return Lit(tok.Text, rest), nil

	case TokenAny:
		rest, err := buildMatcher(pattern, tokens, i+1)
		if err != nil {
			return nil, err
		}
		return Any(rest), nil

	case TokenEitherStart:
		// Fixed shape: { Literal , Literal }
		if i+3 >= len(tokens) ||
			tokens[i+1].Type != TokenLiteral ||
			tokens[i+2].Type != TokenLiteral ||
			tokens[i+3].Type != TokenEitherEnd {
			return nil, &MalformedPatternError{
				Pattern: pattern,
				Index:   i,
				Reason:  "expected {literal,literal}",
			}
		}
		rest, err := buildMatcher(pattern, tokens, i+4)
		if err != nil {
			return nil, err
		}
		return Either(Lit(tokens[i+1].Text, nil), Lit(tokens[i+2].Text, nil), rest), nil

	case TokenCharsetStart:
		// Fixed shape: [ Literal ]
		if i+2 >= len(tokens) ||
			tokens[i+1].Type != TokenLiteral ||
			tokens[i+2].Type != TokenCharsetEnd {
			return nil, &MalformedPatternError{
				Pattern: pattern,
				Index:   i,
				Reason:  "expected [literal]",
			}
		}
		rest, err := buildMatcher(pattern, tokens, i+3)
		if err != nil {
			return nil, err
		}
		return Charset(tokens[i+1].Text, rest), nil

	case TokenEitherEnd:
		return nil, &MalformedPatternError{
			Pattern: pattern,
			Index:   i,
			Reason:  "stray } without opening {",
		}

	case TokenCharsetEnd:
		return nil, &MalformedPatternError{
			Pattern: pattern,
			Index:   i,
			Reason:  "stray ] without opening [",
		}
	}

	return nil, &MalformedPatternError{
		Pattern: pattern,
		Index:   i,
		Reason:  fmt.Sprintf("unexpected token %s", tokens[i]),
	}
}
