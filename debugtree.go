// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package debugtree builds trees of debug output incrementally during
// execution and renders them as box-drawing diagrams.
//
// Code under investigation records what it is doing with AddLeaf and
// AddBranch; branches nest, so the resulting diagram mirrors the dynamic
// call structure. A branch is typically opened and closed with a single
// deferred statement:
//
//	func parseExpr(t *debugtree.TreeBuilder, s string) {
//		defer t.AddBranchf("expr %q", s).Close()
//		t.AddLeaf("tokenize")
//		...
//	}
//
// Rendering the builder produces output like:
//
//	expr "2+3"
//	├╼ tokenize
//	└╼ parse
//	  ├╼ lhs 2
//	  └╼ rhs 3
//
// Trees can be rendered at any time with String or Print, written to files,
// or printed automatically at scope exit (surviving panics) with DeferPrint:
//
//	defer t.DeferPrint()()
//
// Builders are safe for concurrent use. Besides explicit TreeBuilder values,
// the package keeps a process-wide default tree, used by the package-level
// functions below, and a registry of named shared trees (see Tree) that lets
// independent packages contribute to one diagram without plumbing a builder
// through their APIs.
package debugtree

import "io"

// AddLeaf adds a leaf to the default tree.
func AddLeaf(text string) {
	Default().AddLeaf(text)
}

// AddLeaff adds a formatted leaf to the default tree.
func AddLeaff(format string, args ...any) {
	Default().AddLeaff(format, args...)
}

// AddBranch adds a branch to the default tree and moves its insertion point
// into the branch until the returned handle is closed.
func AddBranch(text string) *Branch {
	return Default().AddBranch(text)
}

// AddBranchf adds a formatted branch to the default tree.
func AddBranchf(format string, args ...any) *Branch {
	return Default().AddBranchf(format, args...)
}

// String renders the default tree.
func String() string {
	return Default().String()
}

// FlushString renders the default tree and clears it.
func FlushString() string {
	return Default().FlushString()
}

// Print renders the default tree to standard output.
func Print() {
	Default().Print()
}

// FlushPrint prints the default tree and clears it.
func FlushPrint() {
	Default().FlushPrint()
}

// Clear resets the default tree.
func Clear() {
	Default().Clear()
}

// Write renders the default tree to w.
func Write(w io.Writer) error {
	return Default().Write(w)
}

// WriteFile renders the default tree to the file at path.
func WriteFile(path string) error {
	return Default().WriteFile(path)
}

// FlushWriteFile renders the default tree to the file at path, then clears
// the tree.
func FlushWriteFile(path string) error {
	return Default().FlushWriteFile(path)
}

// SetEnabled switches recording on the default tree on or off.
func SetEnabled(enabled bool) {
	Default().SetEnabled(enabled)
}

// DeferPrint prints and clears the default tree when the returned function
// is called; see TreeBuilder.DeferPrint.
func DeferPrint() func() {
	return Default().DeferPrint()
}

// DeferPeekPrint prints the default tree, without clearing, when the
// returned function is called.
func DeferPeekPrint() func() {
	return Default().DeferPeekPrint()
}

// DeferWrite writes the default tree to the file at path, then clears it,
// when the returned function is called.
func DeferWrite(path string) func() {
	return Default().DeferWrite(path)
}

// DeferPeekWrite writes the default tree to the file at path, without
// clearing, when the returned function is called.
func DeferPeekWrite(path string) func() {
	return Default().DeferPeekWrite(path)
}
