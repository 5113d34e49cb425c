// Package bridge converts method names between the header declaration form
// (colon-delimited selectors, e.g. "drawRect:inView:") and the underscore
// convention the scripting bridge exposes (e.g. "drawRect_inView_"). All
// operations are pure and stateless; the only failure mode is an arity
// mismatch when a caller supplies an expected keyword count.
package bridge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corey/protodex/internal/ports"
)

// ArityUnchecked disables arity validation in ToSelector.
const ArityUnchecked = -1

// ArityError reports a keyword-count mismatch. Expected is the arity encoded
// in the name or skeleton; Actual is the count the caller supplied.
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d, actual %d", e.Expected, e.Actual)
}

var (
	// markerRe strips the leading instance/class marker and its parenthesized
	// return type, when present.
	markerRe = regexp.MustCompile(`^\s*[-+]\s*(\([^)]*\))?\s*`)

	// attributeRe strips availability annotations appended to declarations.
	attributeRe = regexp.MustCompile(`__attribute__\s*\(\(.*\)\)|\b(?:NS|API|CF)_[A-Z][A-Z0-9_]*(?:\([^)]*\))?`)

	// typeAndPointerRe strips a parenthesized parameter type plus any pointer
	// stars that follow it, leaving the argument and keyword identifiers.
	typeAndPointerRe = regexp.MustCompile(`\([^)]*\)\s*\**`)

	// trailingIdentRe captures the keyword label at the end of a segment.
	trailingIdentRe = regexp.MustCompile(`(\w+)$`)
)

// stripPreamble reduces a declaration to its bare selector body: marker and
// return type gone, attributes gone, terminator gone.
func stripPreamble(signature string) string {
	s := strings.TrimSpace(signature)
	s = markerRe.ReplaceAllString(s, "")
	s = attributeRe.ReplaceAllString(s, "")
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	return strings.TrimSpace(s)
}

// keywords extracts the ordered keyword labels from a selector body with or
// without parameter types. "a:(T *)x b:(U)y" and "a:b:" both yield [a b].
func keywords(body string) []string {
	segments := strings.Split(body, ":")
	// The final segment holds only the last argument name (or nothing);
	// keyword labels live in every segment but the last.
	var labels []string
	for _, seg := range segments[:len(segments)-1] {
		seg = typeAndPointerRe.ReplaceAllString(seg, "")
		m := trailingIdentRe.FindString(strings.TrimSpace(seg))
		if m != "" {
			labels = append(labels, m)
		}
	}
	return labels
}

// ToTarget converts a method declaration (or bare selector) to its bridged
// underscore name. Zero-arity selectors pass through unchanged.
func ToTarget(signature string) string {
	body := stripPreamble(signature)
	if !strings.Contains(body, ":") {
		return body
	}
	return strings.Join(keywords(body), "_") + "_"
}

// ToSelector converts a bridged underscore name back to selector form.
// expectedArity of ArityUnchecked skips validation; otherwise a mismatch
// against the arity encoded in the name yields *ArityError.
func ToSelector(name string, expectedArity int) (string, error) {
	var selector string
	var arity int

	switch {
	case !strings.HasSuffix(name, "_"):
		selector, arity = name, 0
	case !strings.Contains(strings.TrimSuffix(name, "_"), "_"):
		selector, arity = strings.TrimSuffix(name, "_")+":", 1
	default:
		parts := strings.Split(strings.TrimSuffix(name, "_"), "_")
		selector, arity = strings.Join(parts, ":")+":", len(parts)
	}

	if expectedArity != ArityUnchecked && expectedArity != arity {
		return "", &ArityError{Expected: arity, Actual: expectedArity}
	}
	return selector, nil
}

// SelectorSkeleton reduces a full declaration to its typeless selector shape,
// e.g. "- (void)a:(T)x b:(U)y;" → "a:b:". Used as a header-native key.
func SelectorSkeleton(fullSignature string) string {
	body := stripPreamble(fullSignature)
	if !strings.Contains(body, ":") {
		return body
	}
	return strings.Join(keywords(body), ":") + ":"
}

// Param is one (type, label) pair for FormatSignature.
type Param struct {
	Type  string
	Label string
}

// FormatSignature reconstructs a full declaration from a typeless skeleton and
// parameter types. The skeleton's keyword count must equal len(params).
func FormatSignature(skeleton string, params []Param, returnType string, kind ports.MethodKind) (string, error) {
	marker := "-"
	if kind == ports.ClassMethod {
		marker = "+"
	}

	if !strings.Contains(skeleton, ":") {
		if len(params) != 0 {
			return "", &ArityError{Expected: 0, Actual: len(params)}
		}
		return fmt.Sprintf("%s (%s)%s;", marker, returnType, skeleton), nil
	}

	kws := strings.Split(strings.TrimSuffix(skeleton, ":"), ":")
	if len(kws) != len(params) {
		return "", &ArityError{Expected: len(kws), Actual: len(params)}
	}

	segs := make([]string, len(kws))
	for i, kw := range kws {
		segs[i] = fmt.Sprintf("%s:(%s)%s", kw, params[i].Type, params[i].Label)
	}
	return fmt.Sprintf("%s (%s)%s;", marker, returnType, strings.Join(segs, " ")), nil
}
