// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly implements a single-variable polynomial with Horner
// evaluation, an analytic derivative, and a Newton's-method inverse.
package poly

import (
	"math"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// IterMax is the iteration cap shared by every solver in this module.
const IterMax = 100

// Polynomial represents y = Σ aᵢ xⁱ, with Coeffs ordered low-to-high
// degree (Coeffs[0] is the constant term).
type Polynomial struct {
	Coeffs []float64 // a0, a1, a2, ...

	derivative *Polynomial // cached derivative, lazily built
	hasDeriv   bool
}

// New returns a Polynomial with the given coefficients in index order.
func New(coeffs []float64) *Polynomial {
	return &Polynomial{Coeffs: coeffs}
}

// OrderMax returns the highest index carrying a non-zero coefficient, or
// -1 if every coefficient is zero (or there are none).
func (p *Polynomial) OrderMax() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}
	return -1
}

// IsEnabled reports whether at least one coefficient is non-zero.
func (p *Polynomial) IsEnabled() bool {
	return p.OrderMax() >= 0
}

// Y evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Y(x float64) float64 {
	n := len(p.Coeffs)
	if n == 0 {
		return 0
	}
	y := p.Coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return y
}

// Derivative returns (and caches) the derivative polynomial.
func (p *Polynomial) Derivative() *Polynomial {
	if p.hasDeriv {
		return p.derivative
	}
	n := len(p.Coeffs)
	var d []float64
	if n > 1 {
		d = make([]float64, n-1)
		for i := 1; i < n; i++ {
			d[i-1] = p.Coeffs[i] * float64(i)
		}
	}
	p.derivative = New(d)
	p.hasDeriv = true
	return p.derivative
}

// Slope evaluates the derivative polynomial at x.
func (p *Polynomial) Slope(x float64) float64 {
	return p.Derivative().Y(x)
}

// X solves for the x value that produces yTarget, using Newton's method
// seeded at xGuess. precisionDecimal controls the convergence tolerance:
// iteration stops once |y(x) - yTarget| < 10^(-precisionDecimal). Returns
// an error if the iteration cap (IterMax) is reached without converging.
func (p *Polynomial) X(yTarget float64, precisionDecimal int, xGuess float64) (float64, error) {
	tol := math.Pow(10, -float64(precisionDecimal))
	x := xGuess
	for iter := 0; iter < IterMax; iter++ {
		yAtX := p.Y(x)
		diff := yAtX - yTarget
		if math.Abs(diff) < tol {
			return x, nil
		}
		slope := p.Slope(x)
		if slope == 0 {
			return 0, chk.Err("poly: X: zero slope at x=%g while solving for y=%g", x, yTarget)
		}
		x = x - diff/slope
	}
	return 0, chk.Err("poly: X: did not converge to y=%g within %d iterations (precision=%d)", yTarget, IterMax, precisionDecimal)
}

// Prms returns an introspection list of the polynomial's coefficients in
// the same shape used by gofem's material models (e.g.
// msolid.OnedLinElast.GetPrms), letting a caller enumerate coefficients
// generically.
func (p *Polynomial) Prms() fun.Prms {
	prms := make(fun.Prms, len(p.Coeffs))
	for i, c := range p.Coeffs {
		prms[i] = &fun.Prm{N: coeffName(i), V: c}
	}
	return prms
}

func coeffName(i int) string {
	return "a" + strconv.Itoa(i)
}
