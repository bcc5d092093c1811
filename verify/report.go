package verify

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteReport writes the issues as a table, or a single line if there are
// none.
func WriteReport(w io.Writer, issues []Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "lint: no issues found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Lint (%d issues)", len(issues)))
	t.AppendHeader(table.Row{"Type", "Block", "Op", "Message"})

	for _, issue := range issues {
		op := "-"
		if issue.Op >= 0 {
			op = fmt.Sprint(issue.Op)
		}
		t.AppendRow(table.Row{issue.Type, fmt.Sprintf("bb%d", issue.Block), op, issue.Message})
	}

	t.Render()
}

// HasFatal reports whether any issue makes every run fail.
func HasFatal(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Fatal() {
			return true
		}
	}
	return false
}
