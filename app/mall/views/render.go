package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Render renders c to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

// Safe is a trusted fragment that Markup writes verbatim.
type Safe string

// Markup formats a fragment. String, error and fmt.Stringer arguments are
// escaped for text and quoted attribute values. Safe arguments are not.
func Markup(format string, args ...any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		escaped := make([]any, len(args))
		for i, arg := range args {
			escaped[i] = escape(arg)
		}
		_, err := fmt.Fprintf(w, format, escaped...)
		return err
	})
}

func escape(arg any) any {
	switch v := arg.(type) {
	case Safe:
		return string(v)
	case string:
		return templ.EscapeString(v)
	case error:
		return templ.EscapeString(v.Error())
	case fmt.Stringer:
		return templ.EscapeString(v.String())
	}
	return arg
}

// Join renders components one after another.
func Join(parts ...templ.Component) templ.Component {
	return templ.Join(parts...)
}

// Each renders fn for every element of items.
func Each[T any](items []T, fn func(int, T) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, it := range items {
			if err := fn(i, it).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// If renders c when cond holds and nothing otherwise.
func If(cond bool, c templ.Component) templ.Component {
	if !cond {
		return templ.NopComponent
	}
	return c
}

// Repeat renders c n times.
func Repeat(n int, c templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for range n {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
