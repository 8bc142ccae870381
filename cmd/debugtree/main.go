// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command debugtree renders indentation-structured outlines as box-drawing
// tree diagrams.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var treeFlags struct {
	indentWidth int
	tabWidth    int
	rounded     bool
}

var rootCmd = &cobra.Command{
	Use:   "debugtree [command] (flags)",
	Short: "render and inspect tree-structured text",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		renderCmd,
		statsCmd,
	)

	for _, cmd := range []*cobra.Command{renderCmd, statsCmd} {
		cmd.Flags().IntVar(
			&treeFlags.indentWidth, "indent-width", 2,
			"width in characters of one nesting level in the rendered tree")
		cmd.Flags().IntVar(
			&treeFlags.tabWidth, "tab-width", 4,
			"number of columns a leading tab advances to in the input")
		cmd.Flags().BoolVar(
			&treeFlags.rounded, "rounded", false,
			"use rounded corner glyphs")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
