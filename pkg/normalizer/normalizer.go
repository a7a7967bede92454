// Package normalizer rewrites human-typed formula text into the canonical
// algebraic syntax accepted by the parser.
//
// Formulas are transcribed from regulatory documents and arrive in a loosely
// standardized, partly LaTeX-flavored notation: an optional "name =" prefix,
// \frac{A}{B} fractions, \cdot and \times products, \sqrt{A} roots, and
// braced subscripts such as FC_{j,y}. Normalize rewrites all of these into
// plain operator syntax and flat identifiers.
//
// Normalization is a best-effort cosmetic rewrite, not validation: any text
// that does not match a known pattern passes through untouched, and the
// parser remains the sole authority on what is valid.
package normalizer

import (
	"regexp"
	"strings"
)

// subscriptPattern matches a braced subscript directly following an
// identifier character, e.g. the "_{CO2,j}" in "EF_{CO2,j}".
var subscriptPattern = regexp.MustCompile(`([A-Za-z0-9_])_\{([^{}]*)\}`)

// Normalize rewrites formula text into canonical expression text.
//
// It is a pure, total function: it never fails, and unrecognized constructs
// are left as-is for the parser to reject.
//
// Rewrite steps, in order:
//  1. "name = expr" keeps only the text after the "=". On malformed input
//     containing several "=" the cut repeats until none remain, keeping
//     Normalize idempotent.
//  2. \times and \cdot become "*".
//  3. \frac{A}{B} becomes "(A)/(B)".
//  4. \sqrt{A} becomes "sqrt(A)".
//  5. A braced subscript after an identifier collapses into a flat
//     identifier: "FC_{j,y}" becomes "FC_j,y" (braces removed, nothing else).
func Normalize(text string) string {
	// Step 1: treat "name = expr" as "expr". Equality has no other meaning
	// in this notation, so the cut repeats until no "=" remains; that keeps
	// Normalize idempotent even on malformed multi-"=" input.
	for {
		i := strings.IndexByte(text, '=')
		if i < 0 {
			break
		}
		text = text[i+1:]
	}

	// Step 2: product notation.
	text = strings.ReplaceAll(text, `\times`, "*")
	text = strings.ReplaceAll(text, `\cdot`, "*")

	// Steps 3 and 4: braced-argument commands.
	text = rewriteFrac(text)
	text = rewriteCommand(text, `\sqrt`, func(body string) string {
		return "sqrt(" + body + ")"
	})

	// Step 5: collapse braced subscripts. Repeats until stable so that
	// nested subscripts like "x_{i_{k}}" flatten fully.
	for {
		collapsed := subscriptPattern.ReplaceAllString(text, "${1}_${2}")
		if collapsed == text {
			break
		}
		text = collapsed
	}

	return strings.TrimSpace(text)
}

// rewriteFrac replaces every \frac{A}{B} with (A)/(B). Occurrences with
// missing or unbalanced brace groups are left untouched.
func rewriteFrac(text string) string {
	const cmd = `\frac`

	var b strings.Builder
	for {
		i := strings.Index(text, cmd)
		if i < 0 {
			break
		}

		num, afterNum, ok := scanGroup(text, i+len(cmd))
		if !ok {
			b.WriteString(text[:i+len(cmd)])
			text = text[i+len(cmd):]
			continue
		}
		den, afterDen, ok := scanGroup(text, afterNum)
		if !ok {
			b.WriteString(text[:afterNum])
			text = text[afterNum:]
			continue
		}

		b.WriteString(text[:i])
		b.WriteString("(" + rewriteFrac(num) + ")/(" + rewriteFrac(den) + ")")
		text = text[afterDen:]
	}
	b.WriteString(text)
	return b.String()
}

// rewriteCommand replaces every cmd{A} with replace(A). Occurrences with
// missing or unbalanced brace groups are left untouched.
func rewriteCommand(text, cmd string, replace func(body string) string) string {
	var b strings.Builder
	for {
		i := strings.Index(text, cmd)
		if i < 0 {
			break
		}

		body, after, ok := scanGroup(text, i+len(cmd))
		if !ok {
			b.WriteString(text[:i+len(cmd)])
			text = text[i+len(cmd):]
			continue
		}

		b.WriteString(text[:i])
		b.WriteString(replace(rewriteCommand(body, cmd, replace)))
		text = text[after:]
	}
	b.WriteString(text)
	return b.String()
}

// scanGroup reads a balanced {...} group starting at text[i].
// It returns the group body and the index just past the closing brace.
// ok is false when text[i] is not '{' or the group never closes.
func scanGroup(text string, i int) (body string, end int, ok bool) {
	if i >= len(text) || text[i] != '{' {
		return "", i, false
	}

	depth := 0
	for j := i; j < len(text); j++ {
		switch text[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[i+1 : j], j + 1, true
			}
		}
	}
	return "", i, false
}
