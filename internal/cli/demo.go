package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// DemoGrid is the built-in 7×7 serpentine maze.
var DemoGrid = []string{
	"S......",
	".###.#.",
	".....#.",
	".#####.",
	".#.....",
	".#####.",
	"......E",
}

func newDemoCmd(a *app) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve and print the built-in demonstration maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := gridgraph.Parse(DemoGrid, gridgraph.DefaultSymbols())
			if err != nil {
				return err
			}
			m.Name = "demo"

			res, err := astar.SearchMap(m, astar.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "A* Pathfinding Algorithm")
			var opts []gridgraph.RenderOption
			if color {
				opts = append(opts, pathRenderOption())
			}
			if err := m.Render(out, res.Path, opts...); err != nil {
				return err
			}
			if !res.Found {
				fmt.Fprintln(out, "no path")
				return nil
			}
			fmt.Fprintf(out, "cost %d, expanded %d\n", res.Cost, res.Expanded)
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, colorFlagName, false, "highlight path cells")

	return cmd
}
