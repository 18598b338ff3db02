package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

const solveLongDescription = `Solve one or more map files and print each route followed by a summary.

Maps are solved concurrently (see --parallel); output is printed in argument
order. A map whose goal cannot be reached is reported as "no path" and is
not a failure. Unreadable or invalid maps make the command exit non-zero.`

// errVerifyMismatch marks an A* cost that disagrees with the BFS baseline.
var errVerifyMismatch = errors.New("verification failed")

// solveSettings is the resolved configuration for one solve run.
type solveSettings struct {
	parallel      int
	verify        bool
	color         bool
	maxExpansions int
	quiet         bool
}

// outcome is the per-map result collected by the worker pool.
type outcome struct {
	file string
	m    *gridgraph.Map
	res  astar.Result
	err  error
}

func (o outcome) status() string {
	switch {
	case o.err != nil:
		return "error"
	case o.res.Found:
		return "ok"
	default:
		return "no path"
	}
}

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Find shortest paths in map files",
		Long:  solveLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := solveSettings{
				parallel:      a.v.GetInt(solveParallelKey),
				verify:        a.v.GetBool(solveVerifyKey),
				color:         a.v.GetBool(solveColorKey),
				maxExpansions: a.v.GetInt(solveMaxExpansionsKey),
				quiet:         a.v.GetBool(solveQuietKey),
			}
			return runSolve(cmd.OutOrStdout(), cmd.ErrOrStderr(), a, args, s)
		},
	}

	configureSolveFlags(cmd, a)

	return cmd
}

func configureSolveFlags(cmd *cobra.Command, a *app) {
	flags := cmd.Flags()

	flags.IntP(parallelFlagName, "p", a.v.GetInt(solveParallelKey), "number of maps solved at once")
	bindFlagToConfig(a.v, flags.Lookup(parallelFlagName), solveParallelKey)

	flags.Bool(verifyFlagName, false, "cross-check every path cost against a breadth-first search")
	bindFlagToConfig(a.v, flags.Lookup(verifyFlagName), solveVerifyKey)

	flags.Bool(colorFlagName, false, "highlight path cells")
	bindFlagToConfig(a.v, flags.Lookup(colorFlagName), solveColorKey)

	flags.Int(maxExpansionsFlagName, 0, "abort a search after closing this many cells (0 = no limit)")
	bindFlagToConfig(a.v, flags.Lookup(maxExpansionsFlagName), solveMaxExpansionsKey)

	flags.BoolP(quietFlagName, "q", false, "print only the summary table")
	bindFlagToConfig(a.v, flags.Lookup(quietFlagName), solveQuietKey)
}

// runSolve loads and solves every file with at most s.parallel workers,
// then prints renders and the summary in input order.
func runSolve(stdout, stderr io.Writer, a *app, files []string, s solveSettings) error {
	outcomes := make([]outcome, len(files))
	opts := []astar.Option{astar.WithLogger(a.logger)}
	if s.maxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(s.maxExpansions))
	}

	var group errgroup.Group
	if s.parallel > 0 {
		group.SetLimit(s.parallel)
	}
	for i, file := range files {
		group.Go(func() error {
			outcomes[i] = solveFile(a, file, opts, s.verify)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	var style []gridgraph.RenderOption
	if s.color {
		style = append(style, pathRenderOption())
	}

	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", o.file, o.err)
			continue
		}
		if s.quiet {
			continue
		}
		fmt.Fprintf(stdout, "== %s ==\n", o.m.Name)
		if err := o.m.Render(stdout, o.res.Path, style...); err != nil {
			return err
		}
		if !o.res.Found {
			fmt.Fprintln(stdout, "no path")
		}
		fmt.Fprintln(stdout)
	}

	fmt.Fprint(stdout, renderSummaryTable(outcomes))

	if failed > 0 {
		return fmt.Errorf("%d of %d maps failed", failed, len(files))
	}
	return nil
}

func solveFile(a *app, file string, opts []astar.Option, verify bool) outcome {
	o := outcome{file: file}
	log := a.logger.With("file", file)

	m, err := gridgraph.LoadMapFile(file)
	if err != nil {
		log.Warn("load map failed", "err", err)
		o.err = err
		return o
	}
	o.m = m

	res, err := astar.SearchMap(m, opts...)
	if err != nil {
		log.Warn("search failed", "err", err)
		o.err = err
		return o
	}
	o.res = res

	if verify {
		want := m.Grid.Distances(m.Start)[m.Grid.Index(m.Goal)]
		got := res.Cost
		if !res.Found {
			got = -1
		}
		if want != got {
			o.err = fmt.Errorf("%w: astar cost %d, bfs distance %d", errVerifyMismatch, got, want)
			log.Error("verification failed", "astar", got, "bfs", want)
			return o
		}
		log.Debug("verification passed", "cost", got)
	}

	log.Info("map solved", "found", res.Found, "cost", res.Cost, "expanded", res.Expanded)
	return o
}
