package cli

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// pathStyle highlights path cells; lipgloss drops the colors when the output
// is not a terminal.
func pathStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "10"})
}

// pathRenderOption adapts pathStyle to gridgraph's single-cell decorator.
func pathRenderOption() gridgraph.RenderOption {
	style := pathStyle()
	return gridgraph.WithPathStyle(func(cell string) string {
		return style.Render(cell)
	})
}

func renderSummaryTable(outcomes []outcome) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Map", "Start", "Goal", "Cost", "Expanded", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	solved := 0
	for _, o := range outcomes {
		if o.err != nil {
			table.Append([]string{o.file, "-", "-", "-", "-", o.status()})
			continue
		}
		cost := "-"
		if o.res.Found {
			cost = fmt.Sprintf("%d", o.res.Cost)
			solved++
		}
		table.Append([]string{
			o.m.Name,
			fmt.Sprintf("%d,%d", o.m.Start.Row, o.m.Start.Col),
			fmt.Sprintf("%d,%d", o.m.Goal.Row, o.m.Goal.Col),
			cost,
			fmt.Sprintf("%d", o.res.Expanded),
			o.status(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Maps %d", len(outcomes)),
		"", "", "",
		"Solved",
		fmt.Sprintf("%d", solved),
	})

	table.Render()

	return tableBuffer.String()
}
