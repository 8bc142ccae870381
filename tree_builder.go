// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/martypapa/debug-tree/internal/invariants"
)

// TreeBuilder accumulates a tree of debug output and renders it with
// box-drawing glyphs. The zero value is not usable; call NewTreeBuilder, or
// use Default or Tree for the process-wide shared builders.
//
// A builder holds the tree together with an insertion point: a stack of open
// branches rooted at an invisible root node. AddLeaf appends under the
// deepest open branch; AddBranch opens a new one. All methods are safe for
// concurrent use, and each method is atomic with respect to the others.
type TreeBuilder struct {
	mu struct {
		sync.Mutex
		// root is the invisible tree root; it contributes no output of its
		// own. mu.stack is the path of open branches, always beginning at
		// root. The last entry is the current insertion point.
		root  *node
		stack []*node
		// config is the base rendering configuration; override, when
		// non-nil, takes precedence.
		config   Config
		override *Config
		enabled  bool
		// generation increments on Clear, invalidating Branch handles
		// created before the clear.
		generation uint64
	}
}

// NewTreeBuilder returns an empty, enabled builder with the default
// rendering configuration.
func NewTreeBuilder() *TreeBuilder {
	b := &TreeBuilder{}
	b.mu.root = &node{}
	b.mu.stack = []*node{b.mu.root}
	b.mu.config = DefaultConfig()
	b.mu.enabled = true
	return b
}

// AddLeaf adds a leaf to the tree at the current insertion point. Multi-line
// text becomes one node with multiple display lines, not multiple nodes.
func (b *TreeBuilder) AddLeaf(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mu.enabled {
		return
	}
	top := b.topLocked()
	top.children = append(top.children, newNode(text))
	b.checkLocked()
}

// AddLeaff adds a leaf with fmt.Sprintf-style formatting.
func (b *TreeBuilder) AddLeaff(format string, args ...any) {
	b.AddLeaf(fmt.Sprintf(format, args...))
}

// AddBranch adds a branch to the tree at the current insertion point and
// makes it the new insertion point: subsequent AddLeaf and AddBranch calls
// nest under it until the returned handle is closed.
//
// The usual pattern closes the branch when the calling scope ends, so the
// tree mirrors the call structure without explicit bookkeeping:
//
//	defer tree.AddBranch("parse").Close()
//
// Closing restores the insertion point that was current when the branch was
// opened. The restore is depth-based rather than handle-based: closing an
// outer handle while an inner branch is still open closes the inner branch
// too, and closing the inner handle afterwards is a harmless no-op.
func (b *TreeBuilder) AddBranch(text string) *Branch {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mu.enabled {
		return &Branch{}
	}
	top := b.topLocked()
	n := newNode(text)
	top.children = append(top.children, n)
	wantLen := len(b.mu.stack)
	b.mu.stack = append(b.mu.stack, n)
	b.checkLocked()
	return &Branch{b: b, wantLen: wantLen, generation: b.mu.generation}
}

// AddBranchf adds a branch with fmt.Sprintf-style formatting.
func (b *TreeBuilder) AddBranchf(format string, args ...any) *Branch {
	return b.AddBranch(fmt.Sprintf(format, args...))
}

// Enter steps the insertion point into the most recently added child of the
// current insertion point, turning that child into an open branch. If the
// insertion point has no children, an unlabeled node is materialized to step
// into. Exit undoes one Enter.
//
// Enter and Exit are the manual alternative to AddBranch handles, for call
// sites where the open and close do not share a scope.
func (b *TreeBuilder) Enter() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mu.enabled {
		return
	}
	b.enterLocked()
}

func (b *TreeBuilder) enterLocked() {
	top := b.topLocked()
	if len(top.children) == 0 {
		top.children = append(top.children, &node{})
	}
	b.mu.stack = append(b.mu.stack, top.children[len(top.children)-1])
	b.checkLocked()
}

// Exit steps the insertion point back up to the parent branch. Exiting at the
// top level is a safe no-op.
func (b *TreeBuilder) Exit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mu.enabled {
		return
	}
	if len(b.mu.stack) > 1 {
		b.mu.stack = b.mu.stack[:len(b.mu.stack)-1]
	}
	b.checkLocked()
}

// EnterScoped is Enter with a handle: closing the handle restores the
// insertion point depth from before the call, like closing an AddBranch
// handle.
func (b *TreeBuilder) EnterScoped() *Branch {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mu.enabled {
		return &Branch{}
	}
	wantLen := len(b.mu.stack)
	b.enterLocked()
	return &Branch{b: b, wantLen: wantLen, generation: b.mu.generation}
}

// Depth returns the number of branches the insertion point is nested under.
// A builder with no open branches reports zero.
func (b *TreeBuilder) Depth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.mu.stack) - 1
}

// String renders the tree with the active configuration. The tree is not
// modified, and rendering is legal at any depth: open branches show whatever
// has been inserted under them so far. An empty tree renders as "".
func (b *TreeBuilder) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.renderLocked()
}

// FlushString renders the tree and then clears it, as a single atomic
// operation with respect to other goroutines using this builder.
func (b *TreeBuilder) FlushString() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.renderLocked()
	b.clearLocked()
	return s
}

// Print renders the tree to standard output, followed by a newline.
func (b *TreeBuilder) Print() {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Println(b.renderLocked())
}

// FlushPrint prints the tree and clears it.
func (b *TreeBuilder) FlushPrint() {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Println(b.renderLocked())
	b.clearLocked()
}

// Clear resets the tree to a single empty root and discards all open
// branches. Outstanding Branch handles become stale: closing them later is a
// safe no-op. The configuration and enabled state are retained.
func (b *TreeBuilder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearLocked()
}

func (b *TreeBuilder) clearLocked() {
	b.mu.root = &node{}
	b.mu.stack = append(b.mu.stack[:0], b.mu.root)
	b.mu.generation++
	b.checkLocked()
}

// Write renders the tree and writes the result to w in a single call,
// flushing if w is flushable. The sink's failure, if any, is returned wrapped
// as a single error; nothing is retried and no partial-write recovery is
// attempted. The tree is not cleared.
func (b *TreeBuilder) Write(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeLocked(w)
}

func (b *TreeBuilder) writeLocked(w io.Writer) error {
	if _, err := io.WriteString(w, b.renderLocked()); err != nil {
		return errors.Wrap(err, "debugtree: write")
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return errors.Wrap(err, "debugtree: flush")
		}
	}
	return nil
}

// WriteFile renders the tree and writes the result to the file at path,
// creating it or truncating any previous contents. The tree is not cleared.
func (b *TreeBuilder) WriteFile(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeFileLocked(path)
}

// FlushWriteFile is WriteFile followed by Clear. The clear happens even if
// the write fails; the failure is still returned.
func (b *TreeBuilder) FlushWriteFile(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	err := b.writeFileLocked(path)
	b.clearLocked()
	return err
}

func (b *TreeBuilder) writeFileLocked(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "debugtree: creating %q", path)
	}
	_, err = io.WriteString(f, b.renderLocked())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrapf(err, "debugtree: writing %q", path)
}

// SetConfig replaces the builder's base rendering configuration. It affects
// only future renders; strings already produced are immutable.
func (b *TreeBuilder) SetConfig(cfg Config) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mu.config = cfg
}

// SetConfigOverride sets a per-builder override that takes precedence over
// the base configuration for future renders.
func (b *TreeBuilder) SetConfigOverride(cfg Config) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mu.override = &cfg
}

// SetIndentation adjusts the indent width of the active configuration,
// leaving the glyph set unchanged.
func (b *TreeBuilder) SetIndentation(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cfg := b.activeConfigLocked()
	cfg.IndentWidth = width
	b.mu.override = &cfg
}

// ActiveConfig returns the configuration renders currently use: the
// override if one is set, otherwise the base configuration.
func (b *TreeBuilder) ActiveConfig() Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activeConfigLocked()
}

// SetEnabled switches recording on or off. While disabled, AddLeaf and
// AddBranch record nothing and do not move the insertion point; handles
// returned while disabled are inert. The accumulated tree is retained.
func (b *TreeBuilder) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mu.enabled = enabled
}

// Enabled reports whether the builder is currently recording.
func (b *TreeBuilder) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mu.enabled
}

func (b *TreeBuilder) topLocked() *node {
	return b.mu.stack[len(b.mu.stack)-1]
}

func (b *TreeBuilder) activeConfigLocked() Config {
	if b.mu.override != nil {
		return *b.mu.override
	}
	return b.mu.config
}

func (b *TreeBuilder) renderLocked() string {
	return renderString(b.mu.root, b.activeConfigLocked())
}

// checkLocked verifies, in invariant builds, that the open-branch stack is
// still the path of an anchored tree: the root at the bottom and every entry
// a child of the one below it.
func (b *TreeBuilder) checkLocked() {
	if !invariants.Enabled {
		return
	}
	if len(b.mu.stack) == 0 || b.mu.stack[0] != b.mu.root {
		panic(errors.AssertionFailedf("open-branch stack is not anchored at the root"))
	}
	for i := 1; i < len(b.mu.stack); i++ {
		parent, entry := b.mu.stack[i-1], b.mu.stack[i]
		child := false
		for _, c := range parent.children {
			if c == entry {
				child = true
				break
			}
		}
		if !child {
			panic(errors.AssertionFailedf("open-branch stack entry %d is not a child of entry %d", i, i-1))
		}
	}
}
