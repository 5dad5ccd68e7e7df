// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the small 2D/3D point and vector primitives
// used by the catenary and sag-tension models: scale, magnitude, angle
// and plane rotation.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const (
	radiansToDegrees = 180.0 / 3.14159265358979
	degreesToRadians = 3.14159265358979 / 180.0
)

// AxisDirection tags the two ends of a span (back-on-line /
// ahead-on-line in transmission-line terminology).
type AxisDirection int

const (
	Negative AxisDirection = iota // back-on-line (BOL)
	Positive                      // ahead-on-line (AOL)
)

// Plane2d selects which pair of axes forms the horizontal/vertical plane
// of a rotation.
type Plane2d int

const (
	PlaneXY Plane2d = iota
	PlaneXZ
	PlaneYX
	PlaneYZ
	PlaneZX
	PlaneZY
)

// Point2d is a point in the x-y plane.
type Point2d struct {
	X float64
	Y float64
}

// Vector2d is a 2-component vector with scale, magnitude, angle and
// rotation operations.
type Vector2d struct {
	X float64
	Y float64
}

// Point3d is a point in 3D space.
type Point3d struct {
	X float64
	Y float64
	Z float64
}

// Vector3d is a 3-component vector with scale, magnitude, angle and
// plane-rotation operations.
type Vector3d struct {
	X float64
	Y float64
	Z float64
}

// Magnitude returns the Euclidean length of v.
func (v Vector2d) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Scale multiplies both components of v by factor and returns the result.
func (v Vector2d) Scale(factor float64) Vector2d {
	return Vector2d{X: v.X * factor, Y: v.Y * factor}
}

// Rotate rotates v counterclockwise by angleDegrees and returns the
// result.
func (v Vector2d) Rotate(angleDegrees float64) Vector2d {
	θ := angleDegrees * degreesToRadians
	cosθ, sinθ := math.Cos(θ), math.Sin(θ)
	return Vector2d{X: v.X*cosθ - v.Y*sinθ, Y: v.X*sinθ + v.Y*cosθ}
}

// Angle returns the angle, in degrees, that v makes with the x-axis. If
// fromOrigin is false the angle is wrapped into [0,360); otherwise it is
// returned as atan2 in (-180,180].
func (v Vector2d) Angle(fromOrigin bool) float64 {
	a := math.Atan2(v.Y, v.X) * radiansToDegrees
	if !fromOrigin && a < 0 {
		a += 360
	}
	return a
}

// Magnitude returns the Euclidean length of v.
func (v Vector3d) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale multiplies every component of v by factor and returns the result.
func (v Vector3d) Scale(factor float64) Vector3d {
	return Vector3d{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Angle returns the angle, in degrees, that the projection of v onto the
// given plane makes with the plane's first axis.
func (v Vector3d) Angle(plane Plane2d) float64 {
	a, b := v.componentsOf(plane)
	ang := math.Atan2(b, a) * radiansToDegrees
	if ang < 0 {
		ang += 360
	}
	return ang
}

// Rotate rotates v within the given plane by angleDegrees (measured from
// the plane's first axis toward its second) and returns the result. The
// component orthogonal to the plane is unchanged.
func (v Vector3d) Rotate(plane Plane2d, angleDegrees float64) Vector3d {
	θ := angleDegrees * degreesToRadians
	cosθ, sinθ := math.Cos(θ), math.Sin(θ)
	a, b := v.componentsOf(plane)
	aRot := a*cosθ - b*sinθ
	bRot := a*sinθ + b*cosθ
	return v.withComponentsOf(plane, aRot, bRot)
}

// componentsOf returns v's two in-plane components, ordered
// (horizontal, vertical) per the plane selector.
func (v Vector3d) componentsOf(plane Plane2d) (a, b float64) {
	switch plane {
	case PlaneXY:
		return v.X, v.Y
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYX:
		return v.Y, v.X
	case PlaneYZ:
		return v.Y, v.Z
	case PlaneZX:
		return v.Z, v.X
	case PlaneZY:
		return v.Z, v.Y
	default:
		chk.Panic("geom: invalid plane selector %v", plane)
		return 0, 0
	}
}

// withComponentsOf returns a copy of v with its two in-plane components
// (as ordered by componentsOf) replaced by a, b.
func (v Vector3d) withComponentsOf(plane Plane2d, a, b float64) Vector3d {
	out := v
	switch plane {
	case PlaneXY:
		out.X, out.Y = a, b
	case PlaneXZ:
		out.X, out.Z = a, b
	case PlaneYX:
		out.Y, out.X = a, b
	case PlaneYZ:
		out.Y, out.Z = a, b
	case PlaneZX:
		out.Z, out.X = a, b
	case PlaneZY:
		out.Z, out.Y = a, b
	default:
		chk.Panic("geom: invalid plane selector %v", plane)
	}
	return out
}

// Spacing2d returns the 2D spacing vector between two points (to - from).
func Spacing2d(from, to Point2d) Vector2d {
	return Vector2d{X: to.X - from.X, Y: to.Y - from.Y}
}

// Spacing3d returns the 3D spacing vector between two points (to - from).
func Spacing3d(from, to Point3d) Vector3d {
	return Vector3d{X: to.X - from.X, Y: to.Y - from.Y, Z: to.Z - from.Z}
}
