package router

import (
	"fmt"
	"net/url"
	"strings"
)

// Query parses the current query string into a flat mapping, first value per key.
func (r *Router) Query() map[string]string {
	_, raw, _ := strings.Cut(r.history.Location(), "?")
	return ParseQuery(raw)
}

// UpdateQuery rewrites the query string of the current location, keeping the path.
// Nil and empty-string values are omitted. It writes history only; the current
// page is not re-rendered.
func (r *Router) UpdateQuery(params map[string]any, replace bool) {
	if r.destroyed {
		return
	}
	path, _, _ := strings.Cut(r.history.Location(), "?")
	target := path
	if qs := EncodeQuery(params); qs != "" {
		target += "?" + qs
	}
	if replace {
		r.history.Replace(target)
		return
	}
	r.history.Push(target)
}

// ParseQuery decodes raw leniently: malformed pairs are skipped.
func ParseQuery(raw string) map[string]string {
	out := make(map[string]string)
	values, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// EncodeQuery serializes params sorted by key, skipping nil and empty values.
func EncodeQuery(params map[string]any) string {
	values := url.Values{}
	for k, v := range params {
		s, ok := queryValue(v)
		if !ok {
			continue
		}
		values.Set(k, s)
	}
	return values.Encode()
}

func queryValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case *string:
		if t == nil || *t == "" {
			return "", false
		}
		return *t, true
	case fmt.Stringer:
		s := t.String()
		return s, s != ""
	default:
		return fmt.Sprint(t), true
	}
}
