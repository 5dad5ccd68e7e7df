// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catenary

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/geom"
)

// Test_catenary01 checks a level 1000 ft span at H=1000, w=0.5
// against hand-computed curve quantities.
func Test_catenary01(tst *testing.T) {

	chk.PrintTitle("catenary01: level span")

	var c Catenary2d
	c.SetSpacingEndpoints(geom.Vector2d{X: 1000, Y: 0})
	c.SetTensionHorizontal(1000)
	c.SetWeightUnit(0.5)

	chk.Float64(tst, "constant", 1e-9, c.Constant(), 2000)
	chk.Float64(tst, "length", 1e-2, c.Length(), 1010.45)
	chk.Float64(tst, "length_slack", 1e-2, c.LengthSlack(), 10.45)
	chk.Float64(tst, "tension(0)", 1e-2, c.Tension(0), 1031.41)
	chk.Float64(tst, "tension(0.5)", 1e-2, c.Tension(0.5), 1000.00)
	chk.Float64(tst, "tension_average(0)", 1e-2, c.TensionAverage(0), 1010.54)
	chk.Float64(tst, "tension_average(1000)", 1e-2, c.TensionAverage(1000), 1010.56)
	chk.Float64(tst, "tension_max", 1e-2, c.TensionMax(), 1031.41)
}

// Test_catenary02 checks an inclined span (500 ft rise) at H=1000,
// w=0.5.
func Test_catenary02(tst *testing.T) {

	chk.PrintTitle("catenary02: inclined span")

	var c Catenary2d
	c.SetSpacingEndpoints(geom.Vector2d{X: 1000, Y: 500})
	c.SetTensionHorizontal(1000)
	c.SetWeightUnit(0.5)

	chk.Float64(tst, "length", 2e-1, c.Length(), 1127.39)
	chk.Float64(tst, "length_slack", 2e-1, c.LengthSlack(), 9.36)
	chk.Float64(tst, "tension_max", 2e-1, c.TensionMax(), 1275.78)
}

func Test_catenary03(tst *testing.T) {

	chk.PrintTitle("catenary03: validate rejects bad configuration")

	var c Catenary2d
	c.SetSpacingEndpoints(geom.Vector2d{X: -1, Y: 0})
	c.SetTensionHorizontal(-1)
	c.SetWeightUnit(-1)
	if c.Validate(false, nil) {
		tst.Errorf("expected invalid catenary to fail validation")
	}
}

func Test_catenary05(tst *testing.T) {

	chk.PrintTitle("catenary05: polyline samples endpoints")

	var c Catenary2d
	c.SetSpacingEndpoints(geom.Vector2d{X: 1000, Y: 500})
	c.SetTensionHorizontal(1000)
	c.SetWeightUnit(0.5)

	pts := c.Polyline(10)
	if len(pts) != 11 {
		tst.Errorf("expected 11 points, got %d", len(pts))
	}
	first := c.Coordinate(0, false)
	last := c.Coordinate(1, false)
	chk.Float64(tst, "polyline[0].X", 1e-9, pts[0].X, first.X)
	chk.Float64(tst, "polyline[n].X", 1e-9, pts[len(pts)-1].X, last.X)
}

func Test_catenary06(tst *testing.T) {

	chk.PrintTitle("catenary06: shifted origin re-bases to the left endpoint")

	var c Catenary2d
	c.SetSpacingEndpoints(geom.Vector2d{X: 1000, Y: 500})
	c.SetTensionHorizontal(1000)
	c.SetWeightUnit(0.5)

	left := c.Coordinate(0, true)
	chk.Float64(tst, "shifted left.X", 1e-9, left.X, 0)
	chk.Float64(tst, "shifted left.Y", 1e-9, left.Y, 0)

	right := c.Coordinate(1, true)
	chk.Float64(tst, "shifted right.X", 1e-6, right.X, 1000)
	chk.Float64(tst, "shifted right.Y", 1e-6, right.Y, 500)

	chordMid := c.CoordinateChord(0.5, true)
	curveMid := c.Coordinate(0.5, true)
	if chordMid.Y < curveMid.Y {
		tst.Errorf("chord should lie above the curve between endpoints")
	}
}

func Test_catenary04(tst *testing.T) {

	chk.PrintTitle("catenary04: universal invariants")

	var c Catenary2d
	c.SetSpacingEndpoints(geom.Vector2d{X: 1000, Y: 500})
	c.SetTensionHorizontal(1000)
	c.SetWeightUnit(0.5)

	chord := c.SpacingEndpoints().Magnitude()
	if c.Length() < chord {
		tst.Errorf("length %g should be >= chord %g", c.Length(), chord)
	}
	if c.Sag() < 0 {
		tst.Errorf("sag should be non-negative, got %g", c.Sag())
	}
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if c.Tension(p) < c.TensionHorizontal()-1e-6 {
			tst.Errorf("tension(%g)=%g should be >= horizontal tension %g", p, c.Tension(p), c.TensionHorizontal())
		}
	}
}
