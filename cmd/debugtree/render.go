// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	debugtree "github.com/martypapa/debug-tree"
	"github.com/spf13/cobra"
)

var renderConfig struct {
	out string
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "render an indentation-structured outline as a tree diagram",
	Long: `
Reads an outline from the given file, or from stdin, and renders it with
box-drawing glyphs. Each line of input becomes a node; a line indented
further than the line above it nests beneath it. Leading tabs and spaces
may be mixed; tabs advance to the next multiple of --tab-width columns.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderConfig.out,
		"out", "o", "", "write the diagram to this file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	b, _, err := buildFromArgs(args)
	if err != nil {
		return err
	}
	if renderConfig.out != "" {
		return b.WriteFile(renderConfig.out)
	}
	b.Print()
	return nil
}

// buildFromArgs reads the outline named by args (or stdin) into a fresh
// builder configured from the top-level flags.
func buildFromArgs(args []string) (*debugtree.TreeBuilder, outlineStats, error) {
	if treeFlags.tabWidth < 1 {
		return nil, outlineStats{}, errors.Newf("tab-width must be at least 1 (got %d)", treeFlags.tabWidth)
	}
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, outlineStats{}, err
		}
		defer f.Close()
		in = f
	}
	b := debugtree.NewTreeBuilder()
	b.SetConfig(flagConfig())
	stats, err := parseOutline(b, in, treeFlags.tabWidth)
	if err != nil {
		return nil, stats, err
	}
	return b, stats, nil
}

func flagConfig() debugtree.Config {
	cfg := debugtree.DefaultConfig()
	cfg.IndentWidth = treeFlags.indentWidth
	if treeFlags.rounded {
		cfg.Symbols = debugtree.RoundedSymbols()
	}
	return cfg
}

// outlineStats tallies the shape of a parsed outline. Branches and leaves
// count input lines only; a node materialized to parent an over-indented
// first line is in the tree but not in the tallies.
type outlineStats struct {
	Nodes    int
	Branches int
	Leaves   int
	MaxDepth int
}

// parseOutline feeds the lines of src into b, nesting each line under the
// nearest shallower line above it. Blank lines are skipped. The indentation
// columns in use form a stack, so siblings must line up exactly: a line that
// is shallower than its predecessor but matches no enclosing level is an
// error.
func parseOutline(
	b *debugtree.TreeBuilder, src io.Reader, tabWidth int,
) (outlineStats, error) {
	var stats outlineStats
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	columns := []int{0}
	for n := 1; sc.Scan(); n++ {
		col, text := splitIndent(sc.Text(), tabWidth)
		if text == "" {
			continue
		}
		if col > columns[len(columns)-1] {
			b.Enter()
			if stats.Nodes > 0 {
				// The previous line just acquired its first child.
				stats.Branches++
			}
			columns = append(columns, col)
		} else {
			for col < columns[len(columns)-1] {
				b.Exit()
				columns = columns[:len(columns)-1]
			}
			if col != columns[len(columns)-1] {
				return stats, errors.Newf(
					"line %d: indented to column %d, which matches no enclosing level", n, col)
			}
		}
		b.AddLeaf(text)
		stats.Nodes++
		if d := len(columns) - 1; d > stats.MaxDepth {
			stats.MaxDepth = d
		}
	}
	stats.Leaves = stats.Nodes - stats.Branches
	return stats, sc.Err()
}

// splitIndent splits a line into its indentation width in columns and the
// text that follows.
func splitIndent(line string, tabWidth int) (col int, text string) {
	for i, r := range line {
		switch r {
		case ' ':
			col++
		case '\t':
			col += tabWidth - col%tabWidth
		default:
			return col, line[i:]
		}
	}
	return col, ""
}
