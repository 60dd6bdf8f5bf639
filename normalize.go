package glob

import (
	"bytes"
	"strings"
)

// parseLines parses newline-separated pattern content into set entries.
// It normalizes content (BOM, line endings) and processes each line.
// Returns compiled entries and warnings for lines that failed to compile.
func parseLines(content []byte) ([]setEntry, []ParseWarning) {
	content = normalizeContent(content)

	lines := strings.Split(string(content), "\n")
	var entries []setEntry
	var warnings []ParseWarning

	for i, line := range lines {
		lineNum := i + 1 // 1-indexed

		line = trimTrailingWhitespace(line)

		// Skip blank lines (no warning)
		if line == "" {
			continue
		}

		// Skip comments. \# at the start escapes the hash, keeping the
		// line as a pattern; the tokenizer resolves the escape itself.
		if strings.HasPrefix(line, "#") {
			continue
		}

		p, err := Parse(line)
		if err != nil {
			warnings = append(warnings, ParseWarning{
				Pattern: line,
				Line:    lineNum,
				Err:     err,
			})
			continue
		}

		entries = append(entries, setEntry{pat: p, line: lineNum})
	}

	return entries, warnings
}

// normalizeContent normalizes pattern list content for parsing.
// It handles platform-specific encoding variations.
//
// Normalization steps (applied in order):
//  1. Strip UTF-8 BOM if present (EF BB BF) - loops for idempotency
//  2. Normalize CRLF to LF (Windows line endings)
//  3. Normalize standalone CR to LF (old Mac format)
//
// This ensures consistent parsing regardless of the content's origin
// platform.
func normalizeContent(content []byte) []byte {
	if len(content) == 0 {
		return content
	}

	// Step 1: Strip UTF-8 BOM if present (EF BB BF)
	// Loop to handle edge case of multiple BOMs for idempotency
	for len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	// Step 2: Normalize CRLF to LF (Windows line endings)
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	// Step 3: Handle standalone CR (old Mac format)
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))

	return content
}

// trimTrailingWhitespace removes trailing spaces and tabs from a line,
// respecting backslash-escaped spaces.
//
// A backslash before a trailing space preserves that space for the
// tokenizer, which resolves the escape into a literal space character:
//   - "foo "    → "foo"    (trailing space stripped)
//   - "foo\ "   → "foo\ "  (escaped space preserved)
//   - "foo\\ "  → "foo\\"  (escaped backslash, unescaped trailing space stripped)
//
// Note: This does not trim newlines; those are handled during line
// splitting.
func trimTrailingWhitespace(line string) string {
	// Find end of non-whitespace content
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}

	if end == len(line) {
		return line // No trailing whitespace
	}

	// Count consecutive backslashes immediately before the whitespace
	bs := 0
	for i := end - 1; i >= 0 && line[i] == '\\'; i-- {
		bs++
	}

	// Odd number of backslashes means the last one escapes the first space
	if bs%2 == 1 && line[end] == ' ' {
		// Keep the backslash and the space it escapes
		return line[:end+1]
	}

	return line[:end]
}
