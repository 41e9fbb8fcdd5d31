// Package stress drives the containers of this module with seeded random
// workloads and cross-checks them against reference models after every step.
package stress

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/bywbilly/DS2014/internal/monitoring"
	"github.com/cockroachdb/errors"
)

// Result is the outcome of one scenario.
type Result struct {
	Scenario   Scenario
	Rounds     int
	Operations int
	Duration   time.Duration
	Err        error
}

// Report holds the results of a run in scenario order.
type Report struct {
	Results []Result
}

// Failed reports whether any scenario failed.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// Operations returns the total number of container operations performed.
func (r Report) Operations() int {
	n := 0
	for _, res := range r.Results {
		n += res.Operations
	}
	return n
}

// round carries the state shared by the steps of one scenario round.
type round struct {
	rng       *rand.Rand
	cfg       Config
	container string
	ops       map[string]int
	size      int
}

func (r *round) count(op string) {
	r.ops[op]++
}

func (r *round) remove() bool {
	return r.rng.IntN(r.cfg.RemoveOneIn) == 0
}

func (r *round) value() int {
	return r.rng.IntN(65537)
}

type scenarioFunc func(r *round) error

var scenarios = map[Scenario]struct {
	container string
	run       scenarioFunc
}{
	PriorityQueue: {"priority", runPriorityQueue},
	Heapify:       {"priority", runHeapify},
	Deque:         {"deque", runDeque},
	ArrayList:     {"arraylist", runArrayList},
	LinkedList:    {"linkedlist", runLinkedList},
	HashMap:       {"hashmap", runHashMap},
}

// Run executes every configured scenario. A violated check is recorded on the
// scenario's Result and the run moves on; Run itself fails only on an invalid
// configuration or when ctx is done.
func Run(ctx context.Context, cfg Config, logger monitoring.Logger, stats monitoring.Stats) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, errors.Wrap(err, "invalid stress config")
	}

	var report Report
	for i, s := range cfg.Scenarios {
		sc, ok := scenarios[s]
		if !ok {
			return report, errors.Newf("unknown scenario %q", s)
		}

		res := Result{Scenario: s}
		start := time.Now()
		for n := 0; n < cfg.Rounds; n++ {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			r := &round{
				// Scenarios draw from separate streams so selecting a subset
				// does not change what each one sees.
				rng:       rand.New(rand.NewPCG(cfg.Seed, uint64(i)<<32|uint64(n))),
				cfg:       cfg,
				container: sc.container,
				ops:       make(map[string]int),
			}

			roundStart := time.Now()
			err := sc.run(r)
			stats.RecordRound(ctx, string(s), time.Since(roundStart))
			stats.SetElements(ctx, sc.container, r.size)
			for op, c := range r.ops {
				stats.RecordOperations(ctx, sc.container, op, c)
				res.Operations += c
			}
			res.Rounds++

			if err != nil {
				res.Err = errors.Wrapf(err, "%s round %d", s, n)
				stats.RecordCheckFailure(ctx, string(s))
				logger.Log(ctx, monitoring.ERROR, "check_failed", "Consistency check failed", map[string]interface{}{
					"scenario": string(s),
					"round":    n,
					"seed":     cfg.Seed,
					"error":    err.Error(),
				})
				break
			}
		}
		res.Duration = time.Since(start)

		if res.Err == nil {
			logger.Log(ctx, monitoring.INFO, "scenario_passed", "Scenario passed", map[string]interface{}{
				"scenario":   string(s),
				"rounds":     res.Rounds,
				"operations": res.Operations,
				"duration":   res.Duration.String(),
			})
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}
