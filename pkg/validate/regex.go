package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// maxPatternLen bounds user-supplied patterns. RE2 already guarantees
// linear-time matching, so the cap only guards against pathological compile
// cost on enormous inputs.
const maxPatternLen = 1 << 14

// RegexOptions is the structured form of the stringly-typed flag argument
// accepted at the external boundary. Decoding happens once, at the edge of
// the validator, before any pattern handling.
type RegexOptions struct {
	IgnoreCase bool // i
	Multiline  bool // m
	DotAll     bool // s
	Verbose    bool // x
	ASCII      bool // a
}

// ParseRegexFlags scans flags for the letters i, m, s, x, and a, matching
// them case-insensitively and silently ignoring anything else. It returns the
// decoded options together with the ordered descriptors used to annotate a
// successful match message.
func ParseRegexFlags(flags string) (RegexOptions, []string) {
	lower := strings.ToLower(flags)

	var (
		opts RegexOptions
		desc []string
	)
	if strings.ContainsRune(lower, 'i') {
		opts.IgnoreCase = true
		desc = append(desc, "case-insensitive")
	}
	if strings.ContainsRune(lower, 'm') {
		opts.Multiline = true
		desc = append(desc, "multiline")
	}
	if strings.ContainsRune(lower, 's') {
		opts.DotAll = true
		desc = append(desc, "dotall")
	}
	if strings.ContainsRune(lower, 'x') {
		opts.Verbose = true
		desc = append(desc, "verbose")
	}
	if strings.ContainsRune(lower, 'a') {
		opts.ASCII = true
		desc = append(desc, "ASCII-only")
	}
	return opts, desc
}

// Regex validates text against a caller-supplied pattern with optional flags.
// The search is unanchored: the first match anywhere in text succeeds, and
// its group-0 substring is reported via Result.Match. Pattern and Input are
// echoed on every outcome.
//
// Compile failures are reported as "Invalid regex pattern: ..." results;
// the pattern-size budget is reported through the generic "Error: ..." path.
// Nothing propagates as an error or panic.
func Regex(text, pattern, flags string) Result {
	opts, descriptors := ParseRegexFlags(flags)

	res := Result{Input: text, Pattern: pattern}

	if len(pattern) > maxPatternLen {
		res.Message = fmt.Sprintf("Error: pattern exceeds %d bytes", maxPatternLen)
		return res
	}

	expr := pattern
	if opts.Verbose {
		expr = stripVerbose(expr)
	}
	// ASCII needs no engine adjustment: RE2's perl character classes are
	// ASCII-only unless the pattern opts into unicode classes explicitly.
	if prefix := opts.syntaxPrefix(); prefix != "" {
		expr = prefix + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		res.Message = "Invalid regex pattern: " + err.Error()
		return res
	}

	loc := re.FindStringIndex(text)
	if loc == nil {
		res.Message = "Pattern did not match"
		return res
	}

	match := text[loc[0]:loc[1]]
	res.Valid = true
	res.Match = &match
	res.Message = "Pattern matched"
	if len(descriptors) > 0 {
		res.Message += " (" + strings.Join(descriptors, ", ") + ")"
	}
	return res
}

// syntaxPrefix renders the options that map directly onto RE2 inline flags.
func (o RegexOptions) syntaxPrefix() string {
	var b strings.Builder
	if o.IgnoreCase {
		b.WriteByte('i')
	}
	if o.Multiline {
		b.WriteByte('m')
	}
	if o.DotAll {
		b.WriteByte('s')
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}

// stripVerbose implements free-spacing mode, which RE2 syntax lacks:
// unescaped whitespace is dropped and "#" starts a comment running to end of
// line, except inside character classes where both keep their literal
// meaning.
func stripVerbose(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			b.WriteByte(c)
			i++
			b.WriteByte(pattern[i])
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == '#':
			for i+1 < len(pattern) && pattern[i+1] != '\n' {
				i++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			// dropped
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
