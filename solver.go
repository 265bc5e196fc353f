package xirr

import (
	"errors"
	"fmt"
	"math"
)

// The solver mirrors a secant-method root-find over the NPV curve, retried
// over a fixed list of starting rates. The list ordering matters: when a
// series has several sign changes the NPV curve can have several valid roots,
// and the first seed to converge inside the sanity bounds wins. Changing the
// order changes which (equally valid) root is reported.
var xirrSeeds = []float64{0.1, 0.01, 0.5, -0.5, 0.2, -0.2, 1.0, -0.9}

const (
	// noiseFloor is the absolute amount under which a cash flow is treated
	// as rounding noise and removed before solving.
	noiseFloor = 0.01

	maxIterations = 1000
	stepTolerance = 1e-6

	// Accepted result bounds: between -99% and +10000% annualized.
	minAcceptedRate = -0.99
	maxAcceptedRate = 100.0
)

// XIRR solves for the annualized internal rate of return of an irregular
// cash-flow series. It returns ok=false when the rate is undefined: fewer
// than two meaningful flows, all flows on the same side of zero, or no seed
// converging to a rate within [-99%, +10000%].
//
// Undefined is a normal outcome, not an error.
func XIRR(s CashFlows) (Rate, bool) {
	if len(s) < 2 {
		return 0, false
	}

	net := make(CashFlows, 0, len(s))
	for _, cf := range s {
		if cf.Amount.Abs().GreaterThan(M(noiseFloor, cf.Amount.Currency())) {
			net = append(net, cf)
		}
	}
	if len(net) < 2 {
		return 0, false
	}

	// Without at least one inflow and one outflow the NPV never crosses zero.
	var hasInflow, hasOutflow bool
	for _, cf := range net {
		if cf.Amount.IsPositive() {
			hasInflow = true
		} else {
			hasOutflow = true
		}
	}
	if !hasInflow || !hasOutflow {
		return 0, false
	}

	npv := func(rate float64) float64 { return NPV(rate, net) }
	for _, seed := range xirrSeeds {
		rate, err := solveSecant(npv, seed)
		if err != nil {
			continue
		}
		if rate >= minAcceptedRate && rate <= maxAcceptedRate {
			return Rate(rate), true
		}
	}
	return 0, false
}

// errDiverged reports a seed whose root-find could not converge. It is always
// contained in XIRR's retry loop, never surfaced to callers.
var errDiverged = errors.New("root-find diverged")

// solveSecant finds a root of f near the guess with the secant method. The
// second starting point is derived from the guess by a small relative bump.
// Any non-finite evaluation (such as NPV at rates below -1) abandons the
// search with an error so the caller can try the next seed.
func solveSecant(f func(float64) float64, guess float64) (float64, error) {
	const eps = 1e-4

	p0 := guess
	p1 := guess * (1 + eps)
	if p1 >= 0 {
		p1 += eps
	} else {
		p1 -= eps
	}

	q0, q1 := f(p0), f(p1)
	if !isFinite(q0) || !isFinite(q1) {
		return 0, fmt.Errorf("%w: non-finite evaluation near %g", errDiverged, guess)
	}
	if math.Abs(q1) < math.Abs(q0) {
		p0, p1, q0, q1 = p1, p0, q1, q0
	}

	for i := 0; i < maxIterations; i++ {
		if q1 == q0 {
			if p1 != p0 {
				return 0, fmt.Errorf("%w: flat secant at %g", errDiverged, p1)
			}
			return (p0 + p1) / 2, nil
		}
		p := p1 - q1*(p1-p0)/(q1-q0)
		if !isFinite(p) {
			return 0, fmt.Errorf("%w: non-finite step from %g", errDiverged, p1)
		}
		if math.Abs(p-p1) < stepTolerance {
			return p, nil
		}
		p0, q0 = p1, q1
		p1 = p
		q1 = f(p1)
		if !isFinite(q1) {
			return 0, fmt.Errorf("%w: non-finite evaluation at %g", errDiverged, p1)
		}
	}
	return 0, fmt.Errorf("%w: no convergence after %d iterations", errDiverged, maxIterations)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
