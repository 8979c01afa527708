package npbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	type tc struct {
		Name      string
		Sense     Sense
		Heuristic int
		Optimal   int
		Expected  float64
	}

	for _, tt := range []tc{
		{
			Name:      "maximize partial",
			Sense:     Maximize,
			Heuristic: 7,
			Optimal:   8,
			Expected:  87.5,
		},
		{
			Name:      "maximize exact",
			Sense:     Maximize,
			Heuristic: 8,
			Optimal:   8,
			Expected:  100,
		},
		{
			Name:      "maximize zero optimum",
			Sense:     Maximize,
			Heuristic: 0,
			Optimal:   0,
			Expected:  100,
		},
		{
			Name:      "minimize larger heuristic",
			Sense:     Minimize,
			Heuristic: 4,
			Optimal:   2,
			Expected:  50,
		},
		{
			Name:      "minimize exact",
			Sense:     Minimize,
			Heuristic: 3,
			Optimal:   3,
			Expected:  100,
		},
		{
			Name:      "minimize zero heuristic",
			Sense:     Minimize,
			Heuristic: 0,
			Optimal:   0,
			Expected:  100,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.InDelta(t, tt.Expected, Accuracy(tt.Sense, tt.Heuristic, tt.Optimal), 1e-9)
		})
	}
}

func TestKnownAccuracy(t *testing.T) {
	type tc struct {
		Name     string
		Status   Status
		Expected *float64
	}

	half := 50.0
	for _, tt := range []tc{
		{Name: "optimal known", Status: StatusOptimal, Expected: &half},
		{Name: "sat known", Status: StatusSat, Expected: &half},
		{Name: "unsat known", Status: StatusUnsat, Expected: &half},
		{Name: "timeout unknown", Status: StatusTimeout},
		{Name: "infeasible unknown", Status: StatusInfeasible},
		{Name: "partial unknown", Status: StatusPartial},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			got := KnownAccuracy(Maximize, 1, 2, tt.Status)
			if tt.Expected == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.InDelta(t, *tt.Expected, *got, 1e-9)
			}
		})
	}
}
