// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/preciouskorir/voting-system/models"
)

// WriteTally prints one Markdown-style table per category, candidates in the
// order given, with vote counts and their share of the category total.
func WriteTally(writer io.Writer, results []models.CategoryResults) {
	if len(results) == 0 {
		fmt.Fprintln(writer, "No candidates found.")
		return
	}

	for i, group := range results {
		if i > 0 {
			fmt.Fprintln(writer)
		}
		scope := "county"
		if group.Nationwide {
			scope = "nationwide"
		}
		fmt.Fprintf(writer, "## %s (%s, %s votes)\n\n", group.Category, scope, humanize.Comma(group.TotalVotes))

		table := tablewriter.NewWriter(writer)
		table.SetHeader([]string{"Candidate", "County", "Votes", "Share"})

		// Configure for Markdown table formatting
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		table.SetAutoWrapText(false)

		for _, c := range group.Candidates {
			county := "-"
			if c.County != nil {
				county = *c.County
			}
			table.Append([]string{
				c.Name,
				county,
				humanize.Comma(c.Votes),
				share(c.Votes, group.TotalVotes),
			})
		}

		table.Render()
	}
}

func share(votes, total int64) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(votes)*100/float64(total))
}
