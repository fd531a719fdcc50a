package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/lixenwraith/blockfall/engine"
)

// printSummary writes the end-of-session report
func printSummary(w io.Writer, res engine.Result, seed uint64) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgHiBlack)

	if res.GameOver {
		color.New(color.FgRed, color.Bold).Fprintln(w, "GAME OVER")
	} else {
		title.Fprintln(w, "SESSION ENDED")
	}

	row := func(name, value string) {
		label.Fprintf(w, "  %-8s", name)
		fmt.Fprintln(w, value)
	}
	row("score", humanize.Comma(int64(res.Score)))
	row("level", fmt.Sprint(res.Level))
	row("lines", humanize.Comma(int64(res.Lines)))
	row("pieces", humanize.Comma(int64(res.PiecesLocked)))
	row("seed", fmt.Sprint(seed))

	if len(res.PieceCounts) == 0 {
		return
	}

	names := make([]string, 0, len(res.PieceCounts))
	for name := range res.PieceCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	title.Fprintln(w, "SPAWNED")
	for _, name := range names {
		row(name, fmt.Sprint(res.PieceCounts[name]))
	}
}
