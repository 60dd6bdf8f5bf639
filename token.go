package glob

import (
	"fmt"
	"strings"
)

// TokenType identifies the lexical class of a Token.
type TokenType int

// Token types produced by Tokenize.
const (
	TokenLiteral      TokenType = iota // maximal run of characters matched verbatim
	TokenAny                           // *
	TokenEitherStart                   // {
	TokenEitherEnd                     // }
	TokenCharsetStart                  // [
	TokenCharsetEnd                    // ]
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenLiteral:
		return "Literal"
	case TokenAny:
		return "Any"
	case TokenEitherStart:
		return "EitherStart"
	case TokenEitherEnd:
		return "EitherEnd"
	case TokenCharsetStart:
		return "CharsetStart"
	case TokenCharsetEnd:
		return "CharsetEnd"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit of a pattern. Tokens are consumed
// left-to-right by the parser; Text is set only for TokenLiteral.
type Token struct {
	Type TokenType
	Text string
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Type == TokenLiteral {
		return fmt.Sprintf("Literal(%q)", t.Text)
	}
	return t.Type.String()
}

// InvalidCharacterError reports a byte the tokenizer does not accept.
// The supported character set is intentionally restrictive: alphanumerics,
// the metacharacters * { } [ ] , and backslash escapes.
type InvalidCharacterError struct {
	Char byte // the offending byte
	Pos  int  // byte offset in the pattern (0-indexed)
}

func (e *InvalidCharacterError) Error() string {
	if e.Char == '\\' {
		return fmt.Sprintf("glob: trailing backslash escapes nothing at position %d", e.Pos)
	}
	return fmt.Sprintf("glob: invalid character %q at position %d", e.Char, e.Pos)
}

// tokenizer accumulates tokens during a single left-to-right scan.
// current buffers the pending literal run.
type tokenizer struct {
	tokens  []Token
	current strings.Builder
}

// flush ends the current literal run, emitting it as a Literal token if
// non-empty.
func (tk *tokenizer) flush() {
	if tk.current.Len() > 0 {
		tk.tokens = append(tk.tokens, Token{Type: TokenLiteral, Text: tk.current.String()})
		tk.current.Reset()
	}
}

// emit flushes the current run and appends a non-literal token.
func (tk *tokenizer) emit(typ TokenType) {
	tk.flush()
	tk.tokens = append(tk.tokens, Token{Type: typ})
}

// Tokenize scans a pattern into its token sequence.
//
// Scanning rules, in priority order per character:
//
//  1. Backslash escapes the next character: it joins the current literal
//     run verbatim, whatever it would otherwise mean ("\*" is a literal
//     star, "\{" a literal brace). A backslash at end of pattern escapes
//     nothing and is rejected.
//  2. The metacharacters * { } [ ] end the current run and emit their
//     token; a comma ends the run without emitting (it separates the
//     alternatives inside braces).
//  3. Alphanumerics (A-Z, a-z, 0-9) extend the current run.
//  4. Anything else fails with *InvalidCharacterError.
//
// A pending run at end of input is flushed as a final Literal token.
// Tokenize of the empty pattern yields an empty sequence.
func Tokenize(pattern string) ([]Token, error) {
	var tk tokenizer

	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		if ch == '\\' {
			if i+1 >= len(pattern) {
				return nil, &InvalidCharacterError{Char: '\\', Pos: i}
			}
			i++
			tk.current.WriteByte(pattern[i])
			continue
		}

		switch {
		case ch == '*':
			tk.emit(TokenAny)
		case ch == '{':
			tk.emit(TokenEitherStart)
		case ch == '}':
			tk.emit(TokenEitherEnd)
		case ch == '[':
			tk.emit(TokenCharsetStart)
		case ch == ']':
			tk.emit(TokenCharsetEnd)
		case ch == ',':
			tk.flush()
		case isAlphanumeric(ch):
			tk.current.WriteByte(ch)
		default:
			return nil, &InvalidCharacterError{Char: ch, Pos: i}
		}
	}

	tk.flush()
	return tk.tokens, nil
}

// isAlphanumeric reports whether ch is in [A-Za-z0-9].
func isAlphanumeric(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
}
