// File: pkg/bundle/patterns.go
package bundle

import (
	"regexp"
	"strings"
)

// Matcher is a compiled exclusion predicate over '/'-separated paths.
type Matcher struct {
	re *regexp.Regexp
}

// Matches reports whether the path is matched (and therefore excluded).
func (m Matcher) Matches(path string) bool {
	return m.re.MatchString(path)
}

// explicitRegexForm recognizes patterns fully wrapped as /body/flags.
var explicitRegexForm = regexp.MustCompile(`^/(.+)/([a-zA-Z]*)$`)

// CompilePattern compiles a user exclusion string into a Matcher. Two
// grammars are accepted:
//
//   - Explicit regex, written /body/flags. Flags default to case-insensitive.
//     An invalid body or flag set degrades to a literal substring matcher;
//     compilation never fails.
//   - Glob shorthand otherwise: '*' matches any sequence, '?' any single
//     character. A trailing '/' gives directory semantics (containment
//     anywhere in the path); a leading '.' gives extension semantics
//     (anchored at end of string); anything else is a case-insensitive
//     containment test.
func CompilePattern(pattern string) Matcher {
	if sub := explicitRegexForm.FindStringSubmatch(pattern); sub != nil {
		body, flags := sub[1], sub[2]
		if flags == "" {
			flags = "i"
		}
		if re, err := regexp.Compile("(?" + flags + ")" + body); err == nil {
			return Matcher{re: re}
		}
		return literalMatcher(pattern)
	}

	body := regexp.QuoteMeta(pattern)
	body = strings.ReplaceAll(body, `\*`, ".*")
	body = strings.ReplaceAll(body, `\?`, ".")
	if strings.HasPrefix(pattern, ".") && !strings.HasSuffix(pattern, "/") {
		body += "$"
	}

	re, err := regexp.Compile("(?i)" + body)
	if err != nil {
		return literalMatcher(pattern)
	}
	return Matcher{re: re}
}

// literalMatcher builds a metacharacter-escaped, case-insensitive substring
// matcher from the raw pattern.
func literalMatcher(pattern string) Matcher {
	return Matcher{re: regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))}
}

// CompilePatterns compiles every pattern in order.
func CompilePatterns(patterns []string) []Matcher {
	matchers := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			matchers = append(matchers, CompilePattern(p))
		}
	}
	return matchers
}

// MatchesAny ORs the matcher set: any match excludes the path.
func MatchesAny(path string, matchers []Matcher) bool {
	for _, m := range matchers {
		if m.Matches(path) {
			return true
		}
	}
	return false
}
