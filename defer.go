// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

import (
	"fmt"
	"os"
	"sync"
)

// DeferPrint arranges for the tree to be printed and cleared when the
// returned function is called, which is intended to happen at scope exit:
//
//	defer tree.DeferPrint()()
//
// The deferred output runs even when the scope unwinds from a panic, so a
// tree describing the path into a crash still gets printed. The returned
// function is safe to call more than once; only the first call acts.
func (b *TreeBuilder) DeferPrint() func() {
	return deferred(func() { b.FlushPrint() })
}

// DeferPeekPrint is DeferPrint without the clear: the tree is printed at
// scope exit and retained.
func (b *TreeBuilder) DeferPeekPrint() func() {
	return deferred(func() { b.Print() })
}

// DeferWrite arranges for the tree to be written to the file at path and
// cleared when the returned function is called:
//
//	defer tree.DeferWrite("snapshot.txt")()
//
// A deferred context has no caller to return an error to, so a failed write
// is reported to standard error instead. The clear happens regardless.
func (b *TreeBuilder) DeferWrite(path string) func() {
	return deferred(func() {
		if err := b.FlushWriteFile(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
}

// DeferPeekWrite is DeferWrite without the clear.
func (b *TreeBuilder) DeferPeekWrite(path string) func() {
	return deferred(func() {
		if err := b.WriteFile(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
}

func deferred(fn func()) func() {
	var once sync.Once
	return func() { once.Do(fn) }
}
