// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "summarize the shape and rendered size of an outline",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	b, stats, err := buildFromArgs(args)
	if err != nil {
		return err
	}
	lines, width := 0, 0
	if s := b.String(); s != "" {
		for _, line := range crstrings.Lines(s) {
			lines++
			if n := utf8.RuneCountInString(line); n > width {
				width = n
			}
		}
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"Nodes", "Branches", "Leaves", "Max Depth", "Lines", "Width"})
	tbl.Append([]string{
		fmt.Sprint(stats.Nodes),
		fmt.Sprint(stats.Branches),
		fmt.Sprint(stats.Leaves),
		fmt.Sprint(stats.MaxDepth),
		fmt.Sprint(lines),
		fmt.Sprint(width),
	})
	tbl.Render()
	return nil
}
