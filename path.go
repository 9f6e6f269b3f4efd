// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import "strings"

// Sep joins the segments of hierarchical names.
//
const Sep = "$"

// A NamedPath is a stack of name segments.
//
type NamedPath []string

// Push appends a segment.
//
func (p *NamedPath) Push(name string) { *p = append(*p, name) }

// Pop removes the last segment. It is a no-op on an empty path.
//
func (p *NamedPath) Pop() {
	if n := len(*p); n > 0 {
		*p = (*p)[:n-1]
	}
}

// Reset removes all segments.
//
func (p *NamedPath) Reset() { *p = (*p)[:0] }

// Last returns the last segment, or an empty string.
//
func (p NamedPath) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns the path without its last segment, flattened with Sep.
//
func (p NamedPath) Parent() string {
	if len(p) == 0 {
		return ""
	}
	return p[:len(p)-1].String()
}

// Flat returns the segments joined by sep.
//
func (p NamedPath) Flat(sep string) string { return strings.Join(p, sep) }

// String returns the segments joined by Sep.
//
func (p NamedPath) String() string { return p.Flat(Sep) }

// Qualify returns name prefixed with the flattened path, or name alone if the
// path is empty.
//
func (p NamedPath) Qualify(name string) string {
	return Join(p.String(), name)
}

// Join returns prefix + Sep + name, or name alone if prefix is empty.
//
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + Sep + name
}
