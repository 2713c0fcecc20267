package filter

import (
	"fmt"
	"regexp"
	"strings"
)

type shorthandRule struct {
	pattern *regexp.Regexp
	rewrite func(m []string) string
}

// comparison turns the optional operator of `key:>N` into an expr operator.
func comparison(op string) string {
	if op == "" || op == "=" {
		return "=="
	}
	return op
}

var shorthandRules = []shorthandRule{
	{regexp.MustCompile(`genre(!?):"([^"]+)"`), func(m []string) string {
		if m[1] == "!" {
			return fmt.Sprintf(`not hasGenre(%q)`, m[2])
		}
		return fmt.Sprintf(`hasGenre(%q)`, m[2])
	}},
	{regexp.MustCompile(`country(!?):"([^"]+)"`), func(m []string) string {
		if m[1] == "!" {
			return fmt.Sprintf(`not hasCountry(%q)`, m[2])
		}
		return fmt.Sprintf(`hasCountry(%q)`, m[2])
	}},
	{regexp.MustCompile(`lang:"([^"]+)"`), func(m []string) string {
		return fmt.Sprintf(`OriginalLanguage == %q`, m[1])
	}},
	{regexp.MustCompile(`type:(movie|tv|person)\b`), func(m []string) string {
		return fmt.Sprintf(`MediaType == %q`, m[1])
	}},
	{regexp.MustCompile(`year:(>=|<=|>|<|=)?(\d+)`), func(m []string) string {
		return fmt.Sprintf(`Year %s %s`, comparison(m[1]), m[2])
	}},
	{regexp.MustCompile(`rating:(>=|<=|>|<|=)?(\d+(?:\.\d+)?)`), func(m []string) string {
		return fmt.Sprintf(`VoteAverage %s %s`, comparison(m[1]), m[2])
	}},
	{regexp.MustCompile(`votes:(>=|<=|>|<|=)?(\d+)`), func(m []string) string {
		return fmt.Sprintf(`VoteCount %s %s`, comparison(m[1]), m[2])
	}},
	{regexp.MustCompile(`released_before:"([^"]+)"`), func(m []string) string {
		return fmt.Sprintf(`releasedBefore(parseDate(%q))`, m[1])
	}},
	{regexp.MustCompile(`released_after:"([^"]+)"`), func(m []string) string {
		return fmt.Sprintf(`releasedAfter(parseDate(%q))`, m[1])
	}},
}

var shorthandKeys = []string{
	"genre:", "genre!:", "country:", "country!:", "lang:", "type:",
	"year:", "rating:", "votes:", "released_before:", "released_after:",
}

// IsShorthand reports whether the filter uses `key:value` shorthand.
func IsShorthand(filter string) bool {
	for _, key := range shorthandKeys {
		if strings.Contains(filter, key) {
			return true
		}
	}
	return false
}

var booleanOperators = strings.NewReplacer(" AND ", " and ", " OR ", " or ", "NOT ", "not ")

// ConvertShorthand rewrites `key:value` terms and upper-case boolean
// operators into expr syntax. Anything it does not recognise is left as is.
func ConvertShorthand(filter string) string {
	out := replaceOutsideQuotes(filter, booleanOperators)

	for _, rule := range shorthandRules {
		out = rule.pattern.ReplaceAllStringFunc(out, func(match string) string {
			return rule.rewrite(rule.pattern.FindStringSubmatch(match))
		})
	}
	return out
}

// replaceOutsideQuotes applies r to the parts of s that are not inside a
// double-quoted string literal.
func replaceOutsideQuotes(s string, r *strings.Replacer) string {
	var sb strings.Builder
	sb.Grow(len(s))

	start, quoted := 0, false
	flush := func(end int) {
		if quoted {
			sb.WriteString(s[start:end])
		} else {
			sb.WriteString(r.Replace(s[start:end]))
		}
		start = end
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			if quoted {
				flush(i + 1)
			} else {
				flush(i)
			}
			quoted = !quoted
		}
	}
	if start < len(s) {
		flush(len(s))
	}
	return sb.String()
}
