package router

import (
	"fmt"
	"regexp"
	"strings"
)

var paramName = regexp.MustCompile(`^\w+$`)

// Pattern is a compiled route path. Segments of the form :name capture exactly
// one path segment; a final * segment matches whatever remains, including nothing.
type Pattern struct {
	raw    string
	re     *regexp.Regexp
	params []string
}

// Compile turns a route path into an anchored matcher.
func Compile(pattern string) (*Pattern, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must begin with /", ErrInvalidPattern, pattern)
	}

	segments := strings.Split(pattern[1:], "/")
	parts := make([]string, len(segments))
	var params []string
	seen := make(map[string]struct{})

	for i, seg := range segments {
		switch {
		case seg == "*":
			if i != len(segments)-1 {
				return nil, fmt.Errorf("%w: %q", ErrWildcardPosition, pattern)
			}
			parts[i] = ".*"
		case strings.HasPrefix(seg, ":"):
			name := seg[1:]
			if name == "" {
				return nil, fmt.Errorf("%w: %q", ErrEmptyParam, pattern)
			}
			if !paramName.MatchString(name) {
				return nil, fmt.Errorf("%w: %q: parameter %q", ErrInvalidPattern, pattern, name)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, pattern)
			}
			seen[name] = struct{}{}
			params = append(params, name)
			parts[i] = "([^/]+)"
		default:
			parts[i] = regexp.QuoteMeta(seg)
		}
	}

	re, err := regexp.Compile("^/" + strings.Join(parts, "/") + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}
	return &Pattern{raw: pattern, re: re, params: params}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether path fully matches and maps parameter names to the
// captured segments in declaration order.
func (p *Pattern) Match(path string) (map[string]string, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := make(map[string]string, len(p.params))
	for i, name := range p.params {
		params[name] = m[i+1]
	}
	return params, true
}

// Params returns the parameter names in declaration order.
func (p *Pattern) Params() []string {
	return append([]string(nil), p.params...)
}

func (p *Pattern) String() string {
	return p.raw
}
