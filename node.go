// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

import "github.com/cockroachdb/crlib/crstrings"

// node is a single entry in a debug tree: a label of display lines plus an
// ordered list of children. A node with no children renders as a leaf and a
// node with children renders as a branch; the distinction is structural, and
// nothing records how the node was created. Children are appended in
// insertion order and owned exclusively by their parent.
type node struct {
	// lines holds the node's label, split on newlines at insertion time. The
	// root node and nodes materialized by Enter carry no label at all, which
	// renders differently from a single empty line (no trailing space after
	// the edge glyphs).
	lines    []string
	children []*node
}

// newNode returns a labeled node. Multi-line text becomes one display line
// per input line.
func newNode(text string) *node {
	return &node{lines: crstrings.Lines(text)}
}
