// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package debugtree_test

import (
	"fmt"

	debugtree "github.com/martypapa/debug-tree"
)

func Example() {
	debugtree.Clear()
	debugtree.AddLeaf("start")
	br := debugtree.AddBranch("load config")
	debugtree.AddLeaff("read %s", "app.yaml")
	br.Close()
	debugtree.FlushPrint()
	// Output:
	// start
	// load config
	// └╼ read app.yaml
}

func ExampleTreeBuilder() {
	t := debugtree.NewTreeBuilder()
	br := t.AddBranch("fetch")
	t.AddLeaf("GET /index")
	t.AddLeaf("200 OK")
	br.Close()
	t.AddLeaf("done")
	t.Print()
	// Output:
	// fetch
	// ├╼ GET /index
	// └╼ 200 OK
	// done
}

func ExampleTreeBuilder_DeferPrint() {
	t := debugtree.NewTreeBuilder()
	func() {
		defer t.DeferPrint()()
		defer t.AddBranch("outer").Close()
		t.AddLeaf("work")
	}()
	fmt.Println(t.String() == "")
	// Output:
	// outer
	// └╼ work
	// true
}

func ExampleTree() {
	parser := debugtree.Tree("parser")
	br := parser.AddBranch("stmt")
	parser.AddLeaf("SELECT")
	br.Close()
	parser.Print()
	// Output:
	// stmt
	// └╼ SELECT
}

func ExampleRoundedSymbols() {
	t := debugtree.NewTreeBuilder()
	cfg := debugtree.DefaultConfig()
	cfg.Symbols = debugtree.RoundedSymbols()
	cfg.IndentWidth = 4
	t.SetConfig(cfg)
	br := t.AddBranch("root")
	t.AddLeaf("mid")
	t.AddLeaf("last")
	br.Close()
	t.Print()
	// Output:
	// root
	// ├──╼ mid
	// ╰──╼ last
}
