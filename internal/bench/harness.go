// Package bench drives the exact and heuristic solvers over a batch of
// instances, timing every run and scoring each heuristic against the exact
// result. Instances are independent; nothing is shared across them.
package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/npbench/npbench/internal/gen"
	"github.com/npbench/npbench/internal/graph"
	"github.com/npbench/npbench/internal/sat"
	"github.com/npbench/npbench/internal/setcover"
	"github.com/npbench/npbench/pkg/npbench"
)

// Config controls one benchmark run.
type Config struct {
	// ExactTimeout bounds each exact solver invocation.
	ExactTimeout time.Duration
	// HeuristicTimeout bounds the greedy set cover run, the only
	// heuristic that carries its own deadline.
	HeuristicTimeout time.Duration
	// Trials is the randomized MAX-3SAT trial budget.
	Trials int
	// MaxSteps is the local-search step budget.
	MaxSteps int
	// Seed feeds the randomized heuristics; the same seed reproduces the
	// same run.
	Seed int64
	// Logger receives per-instance progress; defaults to the standard
	// logger when nil.
	Logger *logrus.Logger
}

func (c Config) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

func (c Config) exactTimeout() time.Duration {
	if c.ExactTimeout <= 0 {
		return time.Minute
	}
	return c.ExactTimeout
}

func (c Config) heuristicTimeout() time.Duration {
	if c.HeuristicTimeout <= 0 {
		return 30 * time.Second
	}
	return c.HeuristicTimeout
}

func (c Config) trials() int {
	if c.Trials <= 0 {
		return 1000
	}
	return c.Trials
}

func (c Config) maxSteps() int {
	if c.MaxSteps <= 0 {
		return 10000
	}
	return c.MaxSteps
}

// InstanceResult collects the metrics of every algorithm run on one
// instance.
type InstanceResult struct {
	Name       string               `json:"name"`
	Algorithms []npbench.RunMetrics `json:"algorithms"`
}

// Results maps each problem to its per-instance results.
type Results struct {
	SAT         []InstanceResult `json:"three_sat"`
	VertexCover []InstanceResult `json:"vertex_cover"`
	Clique      []InstanceResult `json:"max_clique"`
	Coloring    []InstanceResult `json:"graph_coloring"`
	SetCover    []InstanceResult `json:"set_cover"`
}

// timed runs fn and returns its result alongside the elapsed wall time.
func timed[T any](fn func() T) (T, time.Duration) {
	start := time.Now()
	out := fn()
	return out, time.Since(start)
}

func metrics(name string, status npbench.Status, elapsed time.Duration, value int, accuracy *float64) npbench.RunMetrics {
	return npbench.RunMetrics{
		Algorithm: name,
		Status:    status,
		Elapsed:   elapsed,
		Seconds:   elapsed.Seconds(),
		Value:     value,
		Accuracy:  accuracy,
	}
}

// RunAll benchmarks every problem in the suite.
func RunAll(ctx context.Context, cfg Config, suite gen.Suite) Results {
	return Results{
		SAT:         RunSAT(ctx, cfg, suite.SAT),
		VertexCover: RunVertexCover(ctx, cfg, suite.Graphs),
		Clique:      RunClique(ctx, cfg, suite.Graphs),
		Coloring:    RunColoring(ctx, cfg, suite.Graphs),
		SetCover:    RunSetCover(ctx, cfg, suite.SetCover),
	}
}

// RunSAT benchmarks bruteforce SAT, randomized MAX-3SAT and local-search
// MAX-3SAT on each instance. The heuristics are scored against the satisfied
// clause count proven by the exact solver; when the exact solver timed out
// the accuracy is absent. Completed UNSAT verdicts are cross-checked against
// the CDCL oracle.
func RunSAT(ctx context.Context, cfg Config, instances []gen.SATInstance) []InstanceResult {
	log := cfg.logger()
	var oracle sat.Oracle
	results := make([]InstanceResult, 0, len(instances))

	for _, inst := range instances {
		f := inst.Formula
		log.WithFields(logrus.Fields{
			"instance": inst.Name,
			"vars":     f.NumVars,
			"clauses":  len(f.Clauses),
		}).Info("benchmarking 3-sat instance")

		exactCtx, cancel := context.WithTimeout(ctx, cfg.exactTimeout())
		type exactOut struct {
			assignment sat.Assignment
			status     npbench.Status
		}
		exact, exactElapsed := timed(func() exactOut {
			a, st := sat.Bruteforce(exactCtx, f)
			return exactOut{a, st}
		})
		cancel()

		// Exact value: every clause when SAT, zero when UNSAT,
		// unknown on timeout.
		optimal := 0
		switch exact.status {
		case npbench.StatusSat:
			optimal = len(f.Clauses)
		case npbench.StatusUnsat:
			if oracle.Satisfiable(f) {
				log.WithField("instance", inst.Name).
					Warn("bruteforce UNSAT disagrees with CDCL oracle")
			}
		}

		exactAcc := npbench.KnownAccuracy(npbench.Maximize, optimal, optimal, exact.status)
		algorithms := []npbench.RunMetrics{
			metrics("bruteforce", exact.status, exactElapsed, optimal, exactAcc),
		}

		rng := rand.New(rand.NewSource(cfg.Seed))
		type heuristicOut struct {
			count int
		}
		randOut, randElapsed := timed(func() heuristicOut {
			_, count := sat.RandomizedMaxSAT(f, cfg.trials(), rng)
			return heuristicOut{count}
		})
		algorithms = append(algorithms, metrics(
			"randomized", npbench.StatusComplete, randElapsed, randOut.count,
			npbench.KnownAccuracy(npbench.Maximize, randOut.count, optimal, exact.status),
		))

		rng = rand.New(rand.NewSource(cfg.Seed))
		localOut, localElapsed := timed(func() heuristicOut {
			_, count := sat.LocalSearchMaxSAT(f, cfg.maxSteps(), rng)
			return heuristicOut{count}
		})
		algorithms = append(algorithms, metrics(
			"local_search", npbench.StatusComplete, localElapsed, localOut.count,
			npbench.KnownAccuracy(npbench.Maximize, localOut.count, optimal, exact.status),
		))

		results = append(results, InstanceResult{Name: inst.Name, Algorithms: algorithms})
	}
	return results
}

// RunVertexCover benchmarks bruteforce, maximal matching and LP rounding.
func RunVertexCover(ctx context.Context, cfg Config, instances []gen.GraphInstance) []InstanceResult {
	log := cfg.logger()
	results := make([]InstanceResult, 0, len(instances))

	for _, inst := range instances {
		g := inst.Graph()
		log.WithFields(logrus.Fields{
			"instance": inst.Name,
			"vertices": g.NumVertices(),
			"edges":    g.NumEdges(),
		}).Info("benchmarking vertex cover instance")

		exactCtx, cancel := context.WithTimeout(ctx, cfg.exactTimeout())
		type coverOut struct {
			cover  []int
			status npbench.Status
		}
		exact, exactElapsed := timed(func() coverOut {
			c, st := graph.BruteforceVertexCover(exactCtx, g)
			return coverOut{c, st}
		})
		cancel()
		optimal := len(exact.cover)

		algorithms := []npbench.RunMetrics{
			metrics("bruteforce", exact.status, exactElapsed, optimal,
				npbench.KnownAccuracy(npbench.Minimize, optimal, optimal, exact.status)),
		}

		matching, matchingElapsed := timed(func() []int { return graph.MatchingVertexCover(g) })
		algorithms = append(algorithms, metrics(
			"maximal_matching", npbench.StatusComplete, matchingElapsed, len(matching),
			npbench.KnownAccuracy(npbench.Minimize, len(matching), optimal, exact.status),
		))

		rounded, roundedElapsed := timed(func() []int { return graph.LPRoundingVertexCover(g) })
		algorithms = append(algorithms, metrics(
			"lp_rounding", npbench.StatusComplete, roundedElapsed, len(rounded),
			npbench.KnownAccuracy(npbench.Minimize, len(rounded), optimal, exact.status),
		))

		results = append(results, InstanceResult{Name: inst.Name, Algorithms: algorithms})
	}
	return results
}

// RunClique benchmarks bruteforce and greedy maximum clique.
func RunClique(ctx context.Context, cfg Config, instances []gen.GraphInstance) []InstanceResult {
	log := cfg.logger()
	results := make([]InstanceResult, 0, len(instances))

	for _, inst := range instances {
		g := inst.Graph()
		log.WithFields(logrus.Fields{
			"instance": inst.Name,
			"vertices": g.NumVertices(),
		}).Info("benchmarking max clique instance")

		exactCtx, cancel := context.WithTimeout(ctx, cfg.exactTimeout())
		type cliqueOut struct {
			clique []int
			status npbench.Status
		}
		exact, exactElapsed := timed(func() cliqueOut {
			c, st := graph.BruteforceClique(exactCtx, g)
			return cliqueOut{c, st}
		})
		cancel()
		optimal := len(exact.clique)

		algorithms := []npbench.RunMetrics{
			metrics("bruteforce", exact.status, exactElapsed, optimal,
				npbench.KnownAccuracy(npbench.Maximize, optimal, optimal, exact.status)),
		}

		greedy, greedyElapsed := timed(func() []int { return graph.GreedyClique(g) })
		algorithms = append(algorithms, metrics(
			"greedy", npbench.StatusComplete, greedyElapsed, len(greedy),
			npbench.KnownAccuracy(npbench.Maximize, len(greedy), optimal, exact.status),
		))

		results = append(results, InstanceResult{Name: inst.Name, Algorithms: algorithms})
	}
	return results
}

// RunColoring benchmarks branch-and-bound, DSatur and greedy coloring.
func RunColoring(ctx context.Context, cfg Config, instances []gen.GraphInstance) []InstanceResult {
	log := cfg.logger()
	results := make([]InstanceResult, 0, len(instances))

	for _, inst := range instances {
		g := inst.Graph()
		log.WithFields(logrus.Fields{
			"instance": inst.Name,
			"vertices": g.NumVertices(),
		}).Info("benchmarking graph coloring instance")

		exactCtx, cancel := context.WithTimeout(ctx, cfg.exactTimeout())
		exact, exactElapsed := timed(func() graph.ColoringResult {
			return graph.BruteforceColoring(exactCtx, g)
		})
		cancel()
		optimal := exact.NumColors

		algorithms := []npbench.RunMetrics{
			metrics("backtracking", exact.Status, exactElapsed, optimal,
				npbench.KnownAccuracy(npbench.Minimize, optimal, optimal, exact.Status)),
		}

		dsatur, dsaturElapsed := timed(func() []int { return graph.DSaturColoring(g) })
		dsaturColors := graph.CountColors(dsatur)
		algorithms = append(algorithms, metrics(
			"dsatur", npbench.StatusComplete, dsaturElapsed, dsaturColors,
			npbench.KnownAccuracy(npbench.Minimize, dsaturColors, optimal, exact.Status),
		))

		greedy, greedyElapsed := timed(func() []int { return graph.GreedyColoring(g, graph.OrderNatural) })
		greedyColors := graph.CountColors(greedy)
		algorithms = append(algorithms, metrics(
			"greedy", npbench.StatusComplete, greedyElapsed, greedyColors,
			npbench.KnownAccuracy(npbench.Minimize, greedyColors, optimal, exact.Status),
		))

		results = append(results, InstanceResult{Name: inst.Name, Algorithms: algorithms})
	}
	return results
}

// RunSetCover benchmarks bruteforce and greedy set cover. Accuracy is absent
// when the exact run timed out or the instance is infeasible.
func RunSetCover(ctx context.Context, cfg Config, instances []gen.SetCoverInstance) []InstanceResult {
	log := cfg.logger()
	results := make([]InstanceResult, 0, len(instances))

	for _, inst := range instances {
		log.WithFields(logrus.Fields{
			"instance": inst.Name,
			"universe": len(inst.Instance.Universe),
			"sets":     len(inst.Instance.Sets),
		}).Info("benchmarking set cover instance")

		exactCtx, cancel := context.WithTimeout(ctx, cfg.exactTimeout())
		exact, exactElapsed := timed(func() setcover.Result {
			return setcover.Bruteforce(exactCtx, inst.Instance)
		})
		cancel()
		optimal := len(exact.Selected)

		algorithms := []npbench.RunMetrics{
			metrics("bruteforce", exact.Status, exactElapsed, optimal,
				npbench.KnownAccuracy(npbench.Minimize, optimal, optimal, exact.Status)),
		}

		greedyCtx, cancel := context.WithTimeout(ctx, cfg.heuristicTimeout())
		greedy, greedyElapsed := timed(func() setcover.Result {
			return setcover.Greedy(greedyCtx, inst.Instance)
		})
		cancel()
		algorithms = append(algorithms, metrics(
			"greedy", greedy.Status, greedyElapsed, len(greedy.Selected),
			npbench.KnownAccuracy(npbench.Minimize, len(greedy.Selected), optimal, exact.Status),
		))

		results = append(results, InstanceResult{Name: inst.Name, Algorithms: algorithms})
	}
	return results
}
