// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"golang.org/x/exp/slices"

	"monoui.org/view"
)

// Group is a sequence of views flattened in place by Build.
type Group []view.View

// Build flattens child expressions into an ordered list of views.
// Each child is a view.View, a Group or []view.View, an []any of
// further children, a func() view.View, or nil, which is skipped.
// Nested sequences are flattened recursively in declaration order.
// Build panics on any other type.
func Build(children ...any) []view.View {
	out := slices.Grow([]view.View(nil), len(children))
	return build(out, children)
}

func build(out []view.View, children []any) []view.View {
	for _, c := range children {
		switch c := c.(type) {
		case nil:
		case view.View:
			out = append(out, c)
		case Group:
			out = appendViews(out, c)
		case []view.View:
			out = appendViews(out, c)
		case []any:
			out = build(out, c)
		case func() view.View:
			if v := c(); v != nil {
				out = append(out, v)
			}
		default:
			panic(fmt.Sprintf("layout: unsupported child %T", c))
		}
	}
	return out
}

func appendViews(out []view.View, vs []view.View) []view.View {
	for _, v := range vs {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// If returns child when cond holds, nil otherwise.
func If(cond bool, child any) any {
	if cond {
		return child
	}
	return nil
}

// Either returns a when cond holds, b otherwise.
func Either(cond bool, a, b any) any {
	if cond {
		return a
	}
	return b
}

// ForEach maps items to views in order. A nil view is skipped.
func ForEach[T any](items []T, f func(i int, item T) view.View) Group {
	g := make(Group, 0, len(items))
	for i, it := range items {
		if v := f(i, it); v != nil {
			g = append(g, v)
		}
	}
	return g
}
