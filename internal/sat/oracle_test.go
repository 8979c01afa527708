package sat

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npbench/npbench/pkg/npbench"
)

func TestOracleAgreesWithBruteforce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var oracle Oracle

	for trial := 0; trial < 25; trial++ {
		f := randomFormula(8, 36, rng)
		_, status := Bruteforce(context.Background(), f)
		switch status {
		case npbench.StatusSat:
			assert.True(t, oracle.Satisfiable(f))
		case npbench.StatusUnsat:
			assert.False(t, oracle.Satisfiable(f))
		default:
			t.Fatalf("unexpected status %v", status)
		}
	}
}

func TestOracleSatisfiableScenario(t *testing.T) {
	var oracle Oracle
	assert.True(t, oracle.Satisfiable(fourClauses))
}

// randomFormula mirrors the dataset generator's shape without importing it
// (the generator package depends on this one).
func randomFormula(numVars, numClauses int, rng *rand.Rand) *Formula {
	f := &Formula{NumVars: numVars}
	for i := 0; i < numClauses; i++ {
		vars := rng.Perm(numVars)[:3]
		var c Clause
		for j, v := range vars {
			lit := v + 1
			if rng.Intn(2) == 0 {
				lit = -lit
			}
			c[j] = lit
		}
		f.Clauses = append(f.Clauses, c)
	}
	return f
}
