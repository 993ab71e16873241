package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderConfigsTable renders the resolved kubeconfig paths with their size
// and modification time. Stat failures show as "-"; a file can disappear
// between resolution and rendering.
func renderConfigsTable(paths []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"PATH", "SIZE", "MODIFIED"})

	for _, path := range paths {
		size := "-"
		modified := "-"
		if info, err := os.Stat(path); err == nil {
			size = fmt.Sprintf("%d B", info.Size())
			modified = info.ModTime().Format("2006-01-02 15:04")
		}
		tw.AppendRow(table.Row{path, size, modified})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
