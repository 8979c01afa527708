package phase

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/npbench/npbench/internal/gen"
)

// Config parameterizes one experiment sweep.
type Config struct {
	// NumVars is the n of the random 3-CNF formulas.
	NumVars int
	// SamplesPerAlpha is the number of random formulas solved at each
	// ratio.
	SamplesPerAlpha int
	// Alphas is the list of clause-to-variable ratios to sweep;
	// DefaultAlphas when empty.
	Alphas []float64
	// Seed makes the sweep reproducible.
	Seed int64
	// Backend defaults to GophersatBackend.
	Backend Backend
	// Logger defaults to the standard logger.
	Logger *logrus.Logger
}

// Results is the serialized outcome of one sweep; the slices are parallel,
// indexed by ratio.
type Results struct {
	NumVars         int       `json:"n_variables"`
	SamplesPerAlpha int       `json:"samples_per_alpha"`
	Backend         string    `json:"backend"`
	Alphas          []float64 `json:"alpha_values"`
	PSat            []float64 `json:"satisfiability_probability"`
	MeanConflicts   []float64 `json:"average_conflicts"`
}

// DefaultAlphas returns the standard sweep: coarse steps away from the
// transition, fine 0.1 steps through the critical region around alpha 4.27.
func DefaultAlphas() []float64 {
	var alphas []float64
	for a := 1.0; a < 3.0; a += 0.5 {
		alphas = append(alphas, round2(a))
	}
	for a := 3.0; a < 6.0; a += 0.1 {
		alphas = append(alphas, round2(a))
	}
	for a := 6.0; a <= 8.0; a += 0.5 {
		alphas = append(alphas, round2(a))
	}
	return alphas
}

func round2(a float64) float64 {
	return math.Round(a*100) / 100
}

// Run executes the sweep. It stops early with ctx's error when cancelled
// between samples.
func Run(ctx context.Context, cfg Config) (Results, error) {
	backend := cfg.Backend
	if backend == nil {
		backend = GophersatBackend{}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	alphas := cfg.Alphas
	if len(alphas) == 0 {
		alphas = DefaultAlphas()
	}
	if cfg.NumVars <= 0 || cfg.SamplesPerAlpha <= 0 {
		return Results{}, fmt.Errorf("phase experiment needs positive NumVars and SamplesPerAlpha")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	results := Results{
		NumVars:         cfg.NumVars,
		SamplesPerAlpha: cfg.SamplesPerAlpha,
		Backend:         backend.Name(),
	}

	for _, alpha := range alphas {
		numClauses := int(alpha * float64(cfg.NumVars))
		satisfiable := 0
		conflicts := make([]float64, 0, cfg.SamplesPerAlpha)

		for i := 0; i < cfg.SamplesPerAlpha; i++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			f := gen.Formula(cfg.NumVars, numClauses, rng)
			sat, nbConflicts, err := backend.Solve(f.IntClauses(), cfg.NumVars)
			if err != nil {
				return results, fmt.Errorf("alpha %.2f sample %d: %w", alpha, i, err)
			}
			if sat {
				satisfiable++
			}
			conflicts = append(conflicts, float64(nbConflicts))
		}

		pSat := float64(satisfiable) / float64(cfg.SamplesPerAlpha)
		meanConflicts := stat.Mean(conflicts, nil)
		results.Alphas = append(results.Alphas, alpha)
		results.PSat = append(results.PSat, pSat)
		results.MeanConflicts = append(results.MeanConflicts, meanConflicts)

		log.WithFields(logrus.Fields{
			"alpha":          alpha,
			"clauses":        numClauses,
			"p_sat":          pSat,
			"mean_conflicts": meanConflicts,
		}).Info("phase transition sample point")
	}

	return results, nil
}
