// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

// Branch is a handle to an open branch, returned by AddBranch and
// EnterScoped. Closing it restores the insertion point that was current when
// the branch was opened.
//
// Close is idempotent and order-tolerant: closing twice, closing after an
// enclosing branch has already been closed, and closing after Clear are all
// safe no-ops. A handle from a disabled builder is inert. Handles are not
// safe for concurrent use with each other, but a handle may be closed from a
// different goroutine than the one that opened it.
type Branch struct {
	b *TreeBuilder
	// wantLen is the length the open-branch stack had before this branch was
	// pushed; Close truncates back to it.
	wantLen int
	// generation is the builder generation at open time. Clear bumps the
	// builder's generation, so a stale handle can tell that its branch no
	// longer exists.
	generation uint64
	released   bool
}

// Close closes the branch: the insertion point returns to the branch's
// parent, and any branches opened under this one are closed along with it.
func (br *Branch) Close() {
	if br == nil || br.released || br.b == nil {
		return
	}
	br.released = true
	b := br.b
	b.mu.Lock()
	defer b.mu.Unlock()
	if br.generation != b.mu.generation {
		// The tree this branch belonged to has been cleared.
		return
	}
	if br.wantLen < len(b.mu.stack) {
		b.mu.stack = b.mu.stack[:br.wantLen]
	}
	b.checkLocked()
}
