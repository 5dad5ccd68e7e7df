// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catenary

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/geom"
)

// Test_catenary3d01 fits a solver to each target type on a level span
// with vertical-only loading; every target is chosen so the fitted
// horizontal tension is 4000.
func Test_catenary3d01(tst *testing.T) {

	chk.PrintTitle("catenary3d01: solver targets")

	spacing := geom.Vector3d{X: 1200, Y: 0, Z: 0}
	weight := geom.Vector3d{X: 0, Y: 0, Z: 1}

	s := Solver{SpacingEndpoints: spacing, WeightUnit: weight, PositionTarget: -1,
		TypeTarget: TargetConstant, ValueTarget: 4000}
	c, err := s.Catenary()
	if err != nil {
		tst.Errorf("constant target failed: %v", err)
	}
	chk.Float64(tst, "H from constant target", 1e-6, c.TensionHorizontal(), 4000)

	s = Solver{SpacingEndpoints: spacing, WeightUnit: weight, PositionTarget: -1,
		TypeTarget: TargetLength, ValueTarget: 1204.505065}
	c, err = s.Catenary()
	if err != nil {
		tst.Errorf("length target failed: %v", err)
	}
	chk.Float64(tst, "H from length target", 1e-1, c.TensionHorizontal(), 4000)

	s = Solver{SpacingEndpoints: spacing, WeightUnit: weight, PositionTarget: -1,
		TypeTarget: TargetSag, ValueTarget: 45.08438}
	c, err = s.Catenary()
	if err != nil {
		tst.Errorf("sag target failed: %v", err)
	}
	chk.Float64(tst, "H from sag target", 1e-1, c.TensionHorizontal(), 4000)

	s = Solver{SpacingEndpoints: spacing, WeightUnit: weight, PositionTarget: 0,
		TypeTarget: TargetTension, ValueTarget: 4045.084438}
	c, err = s.Catenary()
	if err != nil {
		tst.Errorf("tension target failed: %v", err)
	}
	chk.Float64(tst, "H from tension target", 1e-1, c.TensionHorizontal(), 4000)
}

func Test_catenary3d02(tst *testing.T) {

	chk.PrintTitle("catenary3d02: swing angle with transverse wind")

	var c Catenary3d
	c.SpacingEndpoints = geom.Vector3d{X: 1000, Y: 0, Z: 0}
	c.WeightUnit = geom.Vector3d{X: 0, Y: 1, Z: 1}
	c.SetTensionHorizontal(1000)

	chk.Float64(tst, "swing angle", 1e-6, c.SwingAngle(), 45)
}

func Test_catenary3d03(tst *testing.T) {

	chk.PrintTitle("catenary3d03: polyline samples endpoints")

	var c Catenary3d
	c.SpacingEndpoints = geom.Vector3d{X: 1000, Y: 0, Z: 0}
	c.WeightUnit = geom.Vector3d{X: 0, Y: 1, Z: 1}
	c.SetTensionHorizontal(1000)

	pts := c.Polyline(10)
	if len(pts) != 11 {
		tst.Errorf("expected 11 points, got %d", len(pts))
	}
	first := c.Coordinate(0, false)
	chk.Float64(tst, "polyline[0].X", 1e-9, pts[0].X, first.X)
}
