// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

import (
	"strings"
	"unicode/utf8"
)

// renderLines converts the tree rooted at root into box-drawn display lines.
// The function is pure: it never mutates the tree, and an identical tree
// rendered with an identical config produces byte-identical output.
//
// The root node itself is invisible. Its children print their label lines
// verbatim with no edge glyphs, so separate top-level entries read as a flat
// sequence. Deeper nodes are drawn with an edge row of the form
//
//	prefix ├──╼ text
//
// where the connector is Symbols.BranchLast for the last sibling, the
// horizontal fill stretches the row to IndentWidth columns, and prefix holds
// one IndentWidth-wide column per ancestor below the top level: the vertical
// glyph while that ancestor has later siblings, spaces otherwise.
func renderLines(root *node, cfg Config) []string {
	r := renderer{cfg: cfg}
	r.glyphRowMid = edgeRow(cfg.Symbols.BranchMid, cfg)
	r.glyphRowLast = edgeRow(cfg.Symbols.BranchLast, cfg)
	for _, child := range root.children {
		r.top(child)
	}
	return r.out
}

// renderString is renderLines joined by newlines, with no trailing newline.
// An empty tree renders as the empty string.
func renderString(root *node, cfg Config) string {
	return strings.Join(renderLines(root, cfg), "\n")
}

type renderer struct {
	cfg          Config
	glyphRowMid  string
	glyphRowLast string
	out          []string
}

// edgeRow builds the glyph row placed before a node's first label line:
// connector, horizontal fill, leaf prefix. The fill brings the row up to
// IndentWidth columns when the width allows; narrower widths degrade to bare
// connector and prefix.
func edgeRow(connector string, cfg Config) string {
	fill := cfg.IndentWidth - 2
	if fill < 0 {
		fill = 0
	}
	return connector + strings.Repeat(cfg.Symbols.Horizontal, fill) + cfg.Symbols.LeafPrefix
}

// top renders a child of the root: label lines verbatim, then children with
// an empty prefix. Top-level nodes contribute no column to their descendants,
// so a branch's children start at the left margin.
func (r *renderer) top(n *node) {
	if len(n.lines) == 0 {
		r.out = append(r.out, "")
	}
	r.out = append(r.out, n.lines...)
	for i, c := range n.children {
		r.node(c, "", i == len(n.children)-1)
	}
}

func (r *renderer) node(n *node, prefix string, isLast bool) {
	row := r.glyphRowMid
	if isLast {
		row = r.glyphRowLast
	}
	switch {
	case len(n.lines) == 0:
		r.out = append(r.out, prefix+row)
	default:
		r.out = append(r.out, prefix+row+" "+n.lines[0])
		if len(n.lines) > 1 {
			// Continuation lines of a multi-line label keep the parent edge
			// alive and start their text at the first line's text column.
			cont := prefix + r.continuation(isLast, utf8.RuneCountInString(row)+1)
			for _, line := range n.lines[1:] {
				r.out = append(r.out, cont+line)
			}
		}
	}
	childPrefix := prefix + r.column(!isLast)
	for i, c := range n.children {
		r.node(c, childPrefix, i == len(n.children)-1)
	}
}

// continuation returns the pad placed under the edge row for the second and
// later lines of a multi-line label: the vertical glyph (or a space after the
// last sibling) padded out to width columns.
func (r *renderer) continuation(isLast bool, width int) string {
	v := r.cfg.Symbols.Vertical
	if isLast {
		v = " "
	}
	return padTo(v, width)
}

// column returns one ancestor column of the child prefix: IndentWidth
// columns, starting with the vertical glyph while the ancestor still has
// later siblings.
func (r *renderer) column(continues bool) string {
	if r.cfg.IndentWidth <= 0 {
		return ""
	}
	v := " "
	if continues {
		v = r.cfg.Symbols.Vertical
	}
	return padTo(v, r.cfg.IndentWidth)
}

func padTo(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
