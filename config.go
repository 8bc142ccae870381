// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

// Symbols defines the glyph set used to draw tree edges. All fields are
// rendered literally; alignment assumes each glyph occupies one display
// column per rune.
type Symbols struct {
	// BranchMid connects a node that has later siblings, e.g. "├".
	BranchMid string
	// BranchLast connects the last node among its siblings, e.g. "└".
	BranchLast string
	// LeafPrefix marks the start of a node's text, e.g. "╼".
	LeafPrefix string
	// Vertical continues a parent's edge through the rows of its later
	// descendants and under the first line of a multi-line label, e.g. "│".
	Vertical string
	// Horizontal fills the gap between the connector and the leaf prefix
	// when IndentWidth exceeds the width of the glyphs alone, e.g. "─".
	Horizontal string
}

// SquareSymbols returns the default glyph set, using square corners.
func SquareSymbols() Symbols {
	return Symbols{
		BranchMid:  "├",
		BranchLast: "└",
		LeafPrefix: "╼",
		Vertical:   "│",
		Horizontal: "─",
	}
}

// RoundedSymbols returns a glyph set using rounded corners for the last
// sibling.
func RoundedSymbols() Symbols {
	return Symbols{
		BranchMid:  "├",
		BranchLast: "╰",
		LeafPrefix: "╼",
		Vertical:   "│",
		Horizontal: "─",
	}
}

// Config controls how a tree is rendered. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// IndentWidth is the display width of one nesting level, and must be
	// non-negative. Widths below two still render the connector and leaf
	// prefix glyphs; zero collapses the per-level columns entirely.
	IndentWidth int
	// Symbols is the glyph set used for tree edges.
	Symbols Symbols
}

// DefaultConfig returns the configuration used by builders that have not been
// reconfigured: two-column indentation with square corners.
func DefaultConfig() Config {
	return Config{
		IndentWidth: 2,
		Symbols:     SquareSymbols(),
	}
}
