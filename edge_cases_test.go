package glob

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEdgeCases_EscapedMetacharacters runs escapes end to end: pattern
// text through the tokenizer and parser, then a match.
func TestEdgeCases_EscapedMetacharacters(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"all metacharacters escaped", `\*\{\}\[\]\,`, "*{}[],", true},
		{"escaped star then real star", `\**`, "*anything", true},
		{"escaped star then real star needs prefix", `\**`, "anything", false},
		{"escaped backslash", `a\\b`, `a\b`, true},
		{"escaped comma inside braces", `{a\,b,c}`, "a,b", true},
		{"escaped comma inside braces other branch", `{a\,b,c}`, "c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Match(tt.text))
		})
	}
}

// TestEdgeCases_MultibyteInput exercises byte-oriented matching against
// multi-byte text. The engine is not Unicode-aware: wildcards consume
// bytes, and non-ASCII pattern bytes are rejected by the tokenizer.
func TestEdgeCases_MultibyteInput(t *testing.T) {
	t.Run("wildcard consumes multibyte text", func(t *testing.T) {
		assert.True(t, Match(Any(nil), "日本語"))
		assert.True(t, MustParse("a*b").Match("a日本語b"))
	})

	t.Run("non-ASCII pattern byte rejected", func(t *testing.T) {
		_, err := Tokenize("日")
		var invErr *InvalidCharacterError
		require.True(t, errors.As(err, &invErr))
		assert.Equal(t, byte(0xE6), invErr.Char)
		assert.Equal(t, 0, invErr.Pos)
	})

	t.Run("escape admits only one byte", func(t *testing.T) {
		// \ escapes the first byte of the rune; the continuation bytes
		// are then standalone invalid characters.
		_, err := Tokenize(`\日`)
		var invErr *InvalidCharacterError
		require.True(t, errors.As(err, &invErr))
		assert.Equal(t, 2, invErr.Pos)
	})
}

func TestEdgeCases_LongInputs(t *testing.T) {
	t.Run("long literal", func(t *testing.T) {
		long := strings.Repeat("ab", 5000)
		p := MustParse(long)
		assert.True(t, p.Match(long))
		assert.False(t, p.Match(long+"x"))
	})

	t.Run("wildcard over long text", func(t *testing.T) {
		p := MustParse("a*z")
		assert.True(t, p.Match("a"+strings.Repeat("m", 10000)+"z"))
	})

	t.Run("long single-character run", func(t *testing.T) {
		m := OnePlus('a', Lit("b", nil))
		assert.True(t, Match(m, strings.Repeat("a", 10000)+"b"))
		assert.False(t, Match(m, strings.Repeat("a", 10000)))
	})
}

func TestEdgeCases_WildcardGreediness(t *testing.T) {
	// Shortest consumption is tried first, but any length that lets the
	// continuation finish the string is accepted.
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"*a", "aaa", true},     // star takes "aa"
		{"a*", "aaa", true},     // star takes the tail
		{"*a*", "banana", true}, // first star stops at the first 'a', second takes the rest
		{"*a*", "xyz", false},
		{"*aa*", "banana", false}, // no contiguous "aa"
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.pattern).Match(tt.text))
		})
	}
}

func TestEdgeCases_TokenizerFlush(t *testing.T) {
	t.Run("comma at end flushes without token", func(t *testing.T) {
		tokens, err := Tokenize("ab,")
		require.NoError(t, err)
		assert.Equal(t, []Token{lit("ab")}, tokens)
	})

	t.Run("consecutive commas", func(t *testing.T) {
		tokens, err := Tokenize("a,,b")
		require.NoError(t, err)
		assert.Equal(t, []Token{lit("a"), lit("b")}, tokens)
	})

	t.Run("run pending at end of input", func(t *testing.T) {
		tokens, err := Tokenize("*ab")
		require.NoError(t, err)
		assert.Equal(t, []Token{tok(TokenAny), lit("ab")}, tokens)
	})
}

func TestEdgeCases_ParserChains(t *testing.T) {
	t.Run("long unit chain", func(t *testing.T) {
		p := MustParse("*{ab,cd}[xy]ef*")
		assert.True(t, p.Match("zzabxef"))
		assert.True(t, p.Match("cdyefzz"))
		assert.False(t, p.Match("zzabef"))
	})

	t.Run("adjacent groups", func(t *testing.T) {
		p := MustParse("{a,b}{c,d}")
		assert.True(t, p.Match("ac"))
		assert.True(t, p.Match("bd"))
		assert.False(t, p.Match("ab"))
	})

	t.Run("malformed error reports failing token index", func(t *testing.T) {
		_, err := Parse("ab*{x")
		var malErr *MalformedPatternError
		require.True(t, errors.As(err, &malErr))
		assert.Equal(t, 2, malErr.Index) // Literal, Any, then the bad brace
	})
}

func TestEdgeCases_FreshTerminals(t *testing.T) {
	// Two trees never share structure: parsing the same pattern twice
	// yields independent, equal trees.
	a := MustParse("a*{b,c}")
	b := MustParse("a*{b,c}")
	assert.Equal(t, a.root, b.root)

	// Matching one tree concurrently with the other is always safe; a
	// match never mutates either.
	assert.True(t, a.Match("axxb"))
	assert.Equal(t, a.root, b.root)
}
