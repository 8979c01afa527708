// Package lp solves small linear programs of the inequality form used by the
// LP-rounding vertex cover approximation:
//
//	minimize c·x  subject to  A·x >= b,  0 <= x_i <= 1
//
// It converts the program to the standard form expected by gonum's simplex
// implementation by introducing one surplus variable per inequality and one
// slack variable per upper bound.
package lp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Inequality is a single constraint sum_i Coeffs[i]*x[Indices[i]] >= Rhs.
type Inequality struct {
	Indices []int
	Coeffs  []float64
	Rhs     float64
}

// Minimize returns the optimal variable values for the program above, or an
// error when the program is infeasible, unbounded, or the solver failed to
// converge. Callers treat any error as a signal to fall back, never as
// fatal.
func Minimize(c []float64, ineqs []Inequality) ([]float64, error) {
	n := len(c)
	if n == 0 {
		return nil, nil
	}
	k := len(ineqs)

	// Standard-form variable layout: x_0..x_{n-1}, then k surplus
	// variables for the inequalities, then n slacks for the x <= 1
	// bounds. Rows: k inequality rows, then n bound rows.
	cols := n + k + n
	rows := k + n

	obj := make([]float64, cols)
	copy(obj, c)

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)

	for i, ineq := range ineqs {
		if len(ineq.Indices) != len(ineq.Coeffs) {
			return nil, fmt.Errorf("inequality %d: %d indices but %d coefficients", i, len(ineq.Indices), len(ineq.Coeffs))
		}
		for j, idx := range ineq.Indices {
			a.Set(i, idx, ineq.Coeffs[j])
		}
		a.Set(i, n+i, -1) // surplus: A·x - s = b
		b[i] = ineq.Rhs
	}
	for j := 0; j < n; j++ {
		a.Set(k+j, j, 1)
		a.Set(k+j, n+k+j, 1) // slack: x + t = 1
		b[k+j] = 1
	}

	_, x, err := lp.Simplex(obj, a, b, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("simplex: %w", err)
	}
	return x[:n], nil
}
