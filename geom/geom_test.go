// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_geom01(tst *testing.T) {

	chk.PrintTitle("geom01: Vector2d magnitude and scale")

	v := Vector2d{X: 3, Y: 4}
	chk.Float64(tst, "magnitude", 1e-15, v.Magnitude(), 5)

	s := v.Scale(2)
	chk.Float64(tst, "scale.x", 1e-15, s.X, 6)
	chk.Float64(tst, "scale.y", 1e-15, s.Y, 8)
}

func Test_geom02(tst *testing.T) {

	chk.PrintTitle("geom02: Vector3d plane rotation")

	v := Vector3d{X: 1, Y: 0, Z: 0}
	r := v.Rotate(PlaneXY, 90)
	chk.Float64(tst, "rotated.x", 1e-12, r.X, 0)
	chk.Float64(tst, "rotated.y", 1e-12, r.Y, 1)
	chk.Float64(tst, "rotated.z (unchanged)", 1e-15, r.Z, 0)
}

func Test_geom03(tst *testing.T) {

	chk.PrintTitle("geom03: Vector3d angle in zy-plane")

	v := Vector3d{X: 0, Y: 1, Z: 1}
	angle := v.Angle(PlaneZY)
	chk.Float64(tst, "angle", 1e-9, angle, 45)
}

func Test_geom05(tst *testing.T) {

	chk.PrintTitle("geom05: Vector2d rotation")

	v := Vector2d{X: 1, Y: 0}
	r := v.Rotate(90)
	chk.Float64(tst, "rotated.x", 1e-12, r.X, 0)
	chk.Float64(tst, "rotated.y", 1e-12, r.Y, 1)
}

func Test_geom04(tst *testing.T) {

	chk.PrintTitle("geom04: spacing helpers")

	a := Point3d{X: 1, Y: 2, Z: 3}
	b := Point3d{X: 4, Y: 2, Z: 8}
	s := Spacing3d(a, b)
	chk.Float64(tst, "spacing.x", 1e-15, s.X, 3)
	chk.Float64(tst, "spacing.y", 1e-15, s.Y, 0)
	chk.Float64(tst, "spacing.z", 1e-15, s.Z, 5)
}
