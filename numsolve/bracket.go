// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numsolve implements the secant root-finder with a
// three-point bracket update that every iterative sag-tension solver
// shares.
package numsolve

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// IterMax is the iteration cap shared by every bracketed solve in
// this module.
const IterMax = 100

// point is an (x, residual(x)) sample.
type point struct {
	x, y float64
}

// Bracket finds x such that f(x) == target, within tolerance, by
// repeatedly fitting a secant line between a left/right bracket and
// updating the bracket with the new estimate (an estimate outside the
// bracket becomes its new end and the far endpoint is dropped; one
// inside replaces the endpoint on the same side of the target) --
// the same loop shape used by the catenary solver, the cable
// reloader, and the line-cable loader's stretch resolution.
//
// xLeft and xRight seed the initial bracket; they need not actually
// bracket the root (the secant extrapolates when the target lies
// outside [f(xLeft), f(xRight)]). verbose, if true, traces each
// iteration via io.Pf.
func Bracket(f func(x float64) float64, xLeft, xRight, target, tolerance float64, verbose bool) (float64, error) {
	left := point{x: xLeft, y: f(xLeft)}
	right := point{x: xRight, y: f(xRight)}
	current := left

	for iter := 0; iter < IterMax; iter++ {
		if math.Abs(left.x-right.x) < tolerance {
			return current.x, nil
		}

		if left.y > target && target > right.y {
			current.x = (left.x + right.x) / 2
		} else {
			slope := (right.y - left.y) / (right.x - left.x)
			if slope == 0 {
				return 0, chk.Err("numsolve: zero slope at x=%g", left.x)
			}
			current.x = left.x + (target-left.y)/slope
		}
		// the secant extrapolation can shoot past zero when the slope is
		// shallow; when the bracket is non-negative (H, load, H/w) the
		// quantity is physically positive, so clamp the candidate the way
		// inp/sim.go clamps a computed tolerance with utl.Max/utl.Min.
		// A bracket reaching below zero (strain) is not clamped.
		if utl.Min(left.x, right.x) >= 0 {
			current.x = utl.Max(current.x, utl.Min(left.x, right.x)*1e-6)
		}
		current.y = f(current.x)
		if current.y == target {
			return current.x, nil
		}

		if verbose {
			io.Pf("numsolve: iter=%d x=%g y=%g\n", iter, current.x, current.y)
		}

		switch {
		case current.x < left.x:
			right = left
			left = current
		case current.x < right.x:
			if current.y < target {
				right = current
			} else if target < current.y {
				left = current
			}
		default:
			left = right
			right = current
		}
	}

	return 0, chk.Err("numsolve: did not converge within %d iterations", IterMax)
}
