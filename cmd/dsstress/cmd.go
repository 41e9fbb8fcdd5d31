package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/bywbilly/DS2014/internal/monitoring"
	"github.com/bywbilly/DS2014/internal/stress"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// errFailed is returned when at least one scenario reported a violation.
var errFailed = errors.New("stress run failed")

type runFlags struct {
	seed        uint64
	elements    int
	rounds      int
	removeOneIn int
	scenarios   []string
	dev         bool
	metrics     bool
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	defaults := stress.NewConfig()
	fs.Uint64Var(&f.seed, "seed", defaults.Seed, "seed of the random source")
	fs.IntVar(&f.elements, "elements", defaults.Elements, "elements inserted per round")
	fs.IntVar(&f.rounds, "rounds", defaults.Rounds, "rounds per scenario")
	fs.IntVar(&f.removeOneIn, "remove-one-in", defaults.RemoveOneIn, "iterators remove the current element with probability 1/N")
	fs.StringSliceVar(&f.scenarios, "scenario", nil, "scenarios to run (default all)")
	fs.BoolVar(&f.dev, "dev", false, "human readable debug logging")
	fs.BoolVar(&f.metrics, "metrics", false, "print collected metrics after the summary")
}

func (f *runFlags) config() (stress.Config, error) {
	opts := []stress.Option{
		stress.WithSeed(f.seed),
		stress.WithElements(f.elements),
		stress.WithRounds(f.rounds),
		stress.WithRemoveOneIn(f.removeOneIn),
	}
	if len(f.scenarios) > 0 {
		selected := make([]stress.Scenario, 0, len(f.scenarios))
		for _, name := range f.scenarios {
			s, err := stress.ParseScenario(name)
			if err != nil {
				return stress.Config{}, err
			}
			selected = append(selected, s)
		}
		opts = append(opts, stress.WithScenarios(selected...))
	}
	return stress.NewConfig(opts...), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dsstress",
		Short:         "stress test the container library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the available scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range stress.Scenarios() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [--seed=N] [--elements=N] [--rounds=N] [--scenario=name,...]",
		Short: "run stress scenarios",
		Long: `
Run seeded random workloads against every container and cross-check each
step against a reference model. The same seed always produces the same
operations, so a failure can be replayed with the reported seed.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config()
			if err != nil {
				return err
			}

			base, err := monitoring.NewZap(f.dev)
			if err != nil {
				return errors.Wrap(err, "failed to build logger")
			}
			defer func() { _ = base.Sync() }()

			stats := monitoring.NewStats(prometheus.NewRegistry())
			report, err := stress.Run(cmd.Context(), cfg, monitoring.NewLogger("dsstress", base), stats)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printReport(out, cfg, report)
			if f.metrics {
				if err := printMetrics(out, stats); err != nil {
					return err
				}
			}
			if report.Failed() {
				return errFailed
			}
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func printReport(w io.Writer, cfg stress.Config, report stress.Report) {
	fmt.Fprintf(w, "seed %d, %d elements, %d rounds\n", cfg.Seed, cfg.Elements, cfg.Rounds)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tROUNDS\tOPS\tDURATION\tRESULT")
	for _, res := range report.Results {
		result := "ok"
		if res.Err != nil {
			result = "FAIL: " + res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", res.Scenario, res.Rounds, res.Operations, res.Duration, result)
	}
	_ = tw.Flush()
}

func printMetrics(w io.Writer, stats *monitoring.PromStats) error {
	snap, err := stats.Snapshot()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s %g\n", k, snap[k])
	}
	return nil
}
