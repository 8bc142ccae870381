// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/martypapa/debug-tree/internal/invariants"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestTreeRegistry(t *testing.T) {
	a := Tree("registry-a")
	require.Same(t, a, Tree("registry-a"))
	require.NotSame(t, a, Tree("registry-b"))

	// The default tree is its own builder, not a named entry.
	require.NotSame(t, Default(), Tree("default"))
	require.Same(t, Default(), Default())
}

func TestRegistryIndependence(t *testing.T) {
	a := Tree("independent-a")
	b := Tree("independent-b")
	a.Clear()
	b.Clear()

	a.AddLeaf("only in a")
	br := b.AddBranch("only in b")
	b.AddLeaf("b child")
	br.Close()

	require.Equal(t, "only in a", a.String())
	require.Equal(t, expect(
		"only in b",
		"└╼ b child",
	), b.String())
}

func TestDefaultTreeFuncs(t *testing.T) {
	Clear()
	AddLeaf("one")
	br := AddBranchf("two %s", "wide")
	AddLeaff("two.%d", 1)
	br.Close()
	require.Equal(t, expect(
		"one",
		"two wide",
		"└╼ two.1",
	), String())

	require.Equal(t, expect(
		"one",
		"two wide",
		"└╼ two.1",
	), FlushString())
	require.Equal(t, "", String())
}

// Concurrent leaf inserts must serialize cleanly: every insert produces
// exactly one line, nothing is torn, and each goroutine's inserts stay in
// its program order.
func TestConcurrentAddLeaf(t *testing.T) {
	const workers = 8
	n := 500
	if invariants.RaceEnabled {
		n = 100
	}

	b := Tree("concurrent-leaves")
	b.Clear()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < n; i++ {
				b.AddLeaff("worker %d item %d", w, i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	lines := crstrings.Lines(b.String())
	require.Len(t, lines, workers*n)
	next := make([]int, workers)
	for _, line := range lines {
		var w, i int
		_, err := fmt.Sscanf(line, "worker %d item %d", &w, &i)
		require.NoError(t, err, "torn line %q", line)
		require.Equal(t, next[w], i, "worker %d items out of order", w)
		next[w]++
	}
	for w := 0; w < workers; w++ {
		require.Equal(t, n, next[w])
	}
}

// Concurrent branches may nest under each other depending on interleaving,
// but every insert still renders exactly once and all insertion points come
// back to the top level once every handle is closed.
func TestConcurrentBranches(t *testing.T) {
	const workers = 8
	n := 200
	if invariants.RaceEnabled {
		n = 50
	}

	b := Tree("concurrent-branches")
	b.Clear()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < n; i++ {
				br := b.AddBranchf("w%d.%d", w, i)
				b.AddLeaff("w%d.%d leaf", w, i)
				br.Close()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, 0, b.Depth())
	lines := crstrings.Lines(b.String())
	require.Len(t, lines, 2*workers*n)
	for _, line := range lines {
		require.True(t, strings.Contains(line, "w"), "torn line %q", line)
	}
}
