// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree

import "sync"

// registry holds the process-wide shared builders. Builders are created
// lazily and live for the life of the process; there is deliberately no way
// to unregister one, so a name handed out once stays valid forever.
var registry struct {
	sync.Mutex
	trees map[string]*TreeBuilder
	def   *TreeBuilder
}

// Tree returns the shared builder registered under name, creating it on
// first use. Every caller passing the same name gets the same builder, so
// independent packages can contribute to one tree without plumbing a
// *TreeBuilder through their APIs.
func Tree(name string) *TreeBuilder {
	registry.Lock()
	defer registry.Unlock()
	if registry.trees == nil {
		registry.trees = make(map[string]*TreeBuilder)
	}
	b := registry.trees[name]
	if b == nil {
		b = NewTreeBuilder()
		registry.trees[name] = b
	}
	return b
}

// Default returns the process-wide default builder, the one the package-level
// AddLeaf, AddBranch, and friends operate on. It is distinct from every named
// builder.
func Default() *TreeBuilder {
	registry.Lock()
	defer registry.Unlock()
	if registry.def == nil {
		registry.def = NewTreeBuilder()
	}
	return registry.def
}
