// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catenary

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/sagtension/geom"
)

// Catenary3d treats the 3D sag problem as a Catenary2d living in a
// plane tilted by the wind-swing angle: SpacingEndpoints.Y is assumed
// zero (the span's two endpoints are level in the transverse
// direction before swing) and WeightUnit.X is assumed zero.
type Catenary3d struct {
	SpacingEndpoints geom.Vector3d
	WeightUnit       geom.Vector3d

	c2d Catenary2d
}

// SetTensionHorizontal sets H on the internal 2D catenary.
func (c *Catenary3d) SetTensionHorizontal(h float64) {
	c.ensureUpdated()
	c.c2d.SetTensionHorizontal(h)
}

// TensionHorizontal returns H.
func (c *Catenary3d) TensionHorizontal() float64 {
	c.ensureUpdated()
	return c.c2d.TensionHorizontal()
}

// ensureUpdated re-projects the 3D span onto the swung 2D plane. Since
// SpacingEndpoints and WeightUnit are plain public fields (unlike the
// private, setter-guarded Catenary2d), this always recomputes rather
// than trusting a dirty flag -- the caller may have mutated either
// field directly since the last query.
func (c *Catenary3d) ensureUpdated() {
	h := c.c2d.TensionHorizontal()
	b := c.SpacingEndpoints.Z
	chord := c.SpacingEndpoints.Magnitude()
	v := math.Abs(c.WeightUnit.Z)
	w := c.WeightUnit.Magnitude()

	dy2d := b * (v / w)
	dx2d := math.Sqrt(chord*chord - dy2d*dy2d)

	c.c2d.SetSpacingEndpoints(geom.Vector2d{X: dx2d, Y: dy2d})
	c.c2d.SetWeightUnit(w)
	c.c2d.SetTensionHorizontal(h)
}

// SwingAngle returns the angle, in degrees, between the loading plane
// and vertical: atan(w_y / w_z).
func (c *Catenary3d) SwingAngle() float64 {
	c.ensureUpdated()
	return math.Atan(c.WeightUnit.Y/c.WeightUnit.Z) * radiansToDegrees
}

// Constant returns H/w.
func (c *Catenary3d) Constant() float64 {
	c.ensureUpdated()
	return c.c2d.Constant()
}

// Length returns the curve length.
func (c *Catenary3d) Length() float64 {
	c.ensureUpdated()
	return c.c2d.Length()
}

// LengthSlack returns the curve length in excess of the chord.
func (c *Catenary3d) LengthSlack() float64 {
	c.ensureUpdated()
	return c.c2d.LengthSlack()
}

// Sag returns the curve-to-chord vertical distance at the sag point.
func (c *Catenary3d) Sag() float64 {
	c.ensureUpdated()
	return c.c2d.Sag()
}

// SagAt returns the curve-to-chord vertical distance at positionFraction.
func (c *Catenary3d) SagAt(positionFraction float64) float64 {
	c.ensureUpdated()
	curve := c.c2d.Coordinate(positionFraction, false)
	chord := c.c2d.CoordinateChord(positionFraction, false)
	return chord.Y - curve.Y
}

// PositionFractionOrigin returns the position fraction of the curve's
// low point.
func (c *Catenary3d) PositionFractionOrigin() float64 {
	c.ensureUpdated()
	return c.c2d.PositionFractionOrigin()
}

// PositionFractionSagPoint returns the position fraction where the
// curve's tangent is parallel to the chord.
func (c *Catenary3d) PositionFractionSagPoint() float64 {
	c.ensureUpdated()
	return c.c2d.PositionFractionSagPoint()
}

// Tension returns the scalar tension magnitude at positionFraction.
func (c *Catenary3d) Tension(positionFraction float64) float64 {
	c.ensureUpdated()
	return c.c2d.Tension(positionFraction)
}

// TensionMax returns the larger of the two endpoint tensions.
func (c *Catenary3d) TensionMax() float64 {
	c.ensureUpdated()
	return c.c2d.TensionMax()
}

// TensionAverage returns the average tension; see Catenary2d.TensionAverage.
func (c *Catenary3d) TensionAverage(numPoints int) float64 {
	c.ensureUpdated()
	return c.c2d.TensionAverage(numPoints)
}

// Coordinate returns the 3D curve point at positionFraction: x lies
// along the span axis, (y,z) are obtained by rotating the 2D
// chord-to-curve offset into the loading plane.
func (c *Catenary3d) Coordinate(positionFraction float64, isShiftedOrigin bool) geom.Point3d {
	c.ensureUpdated()
	chord2d := c.c2d.CoordinateChord(positionFraction, isShiftedOrigin)
	curve2d := c.c2d.Coordinate(positionFraction, isShiftedOrigin)

	offset := geom.Vector3d{X: 0, Y: 0, Z: curve2d.Y - chord2d.Y}
	offset = offset.Rotate(geom.PlaneZY, c.WeightUnit.Angle(geom.PlaneZY))

	return geom.Point3d{
		X: chord2d.X,
		Y: offset.Y,
		Z: chord2d.Y + offset.Z,
	}
}

// CoordinateChord returns the 3D point on the straight chord at the
// same span position as Coordinate(positionFraction).
func (c *Catenary3d) CoordinateChord(positionFraction float64, isShiftedOrigin bool) geom.Point3d {
	c.ensureUpdated()
	chord2d := c.c2d.CoordinateChord(positionFraction, isShiftedOrigin)
	return geom.Point3d{X: chord2d.X, Y: 0, Z: chord2d.Y}
}

// TangentVector returns the 3D unit tangent at positionFraction,
// rotated for any difference between the 3D and 2D endpoint angles
// and then swung into the loading plane.
func (c *Catenary3d) TangentVector(positionFraction float64, dir geom.AxisDirection) geom.Vector3d {
	c.ensureUpdated()
	t2d := c.c2d.TangentVector(positionFraction, dir)
	tangent := geom.Vector3d{X: t2d.X, Y: 0, Z: t2d.Y}

	if c.SpacingEndpoints.Z != 0 && c.WeightUnit.Y != 0 {
		spacing2d := c.c2d.SpacingEndpoints()
		angle2d := spacing2d.Angle(true)
		angle3d := c.SpacingEndpoints.Angle(geom.PlaneXZ)
		tangent = tangent.Rotate(geom.PlaneXZ, angle3d-angle2d)
	}

	if c.WeightUnit.Y != 0 {
		swing := math.Atan(c.WeightUnit.Y/c.WeightUnit.Z) * radiansToDegrees
		if c.WeightUnit.Y < 0 {
			tangent = tangent.Rotate(geom.PlaneYZ, swing)
		} else {
			tangent = tangent.Rotate(geom.PlaneYZ, -swing)
		}
	}

	return tangent
}

// TensionVector returns the tension at positionFraction resolved
// along the 3D unit tangent.
func (c *Catenary3d) TensionVector(positionFraction float64, dir geom.AxisDirection) geom.Vector3d {
	c.ensureUpdated()
	tangent := c.TangentVector(positionFraction, dir)
	return tangent.Scale(c.Tension(positionFraction))
}

// TangentAngleTransverse returns the absolute-value transverse (zy
// plane) projection of the 3D tangent vector at positionFraction.
func (c *Catenary3d) TangentAngleTransverse(positionFraction float64, dir geom.AxisDirection) float64 {
	c.ensureUpdated()
	t := c.TangentVector(positionFraction, dir)
	t.Y, t.Z = math.Abs(t.Y), math.Abs(t.Z)
	return t.Angle(geom.PlaneZY)
}

// TangentAngleVertical returns the absolute-value vertical (xz plane)
// projection of the 3D tangent vector at positionFraction.
func (c *Catenary3d) TangentAngleVertical(positionFraction float64, dir geom.AxisDirection) float64 {
	c.ensureUpdated()
	t := c.TangentVector(positionFraction, dir)
	t.X = math.Abs(t.X)
	return t.Angle(geom.PlaneXZ)
}

// Polyline samples n+1 evenly spaced 3D points along the curve.
func (c *Catenary3d) Polyline(n int) []geom.Point3d {
	c.ensureUpdated()
	fractions := utl.Alloc(1, n+1)[0]
	points := make([]geom.Point3d, n+1)
	for i := range fractions {
		fractions[i] = float64(i) / float64(n)
		points[i] = c.Coordinate(fractions[i], false)
	}
	return points
}

// Validate checks the 3D catenary's configuration: the single
// vertical-plane constraints (zero transverse spacing, zero
// along-span weight), then the 2D catenary's own check (horizontal
// tension, unit weight, endpoint spacing), whose messages are not
// reported.
func (c *Catenary3d) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if c.SpacingEndpoints.X <= 0 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid horizontal endpoint spacing")
	} else if includeWarnings && c.SpacingEndpoints.X > 5000 {
		appendMsg(messages, "CATENARY - WARNING - horizontal endpoint spacing exceeds 5,000 ft")
	}
	if c.SpacingEndpoints.Y != 0 {
		valid = false
		appendMsg(messages, "CATENARY - Transverse endpoint spacing must equal zero")
	}
	if math.Abs(c.SpacingEndpoints.Z) >= 2000 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid vertical endpoint spacing")
	}
	if c.WeightUnit.X != 0 {
		valid = false
		appendMsg(messages, "CATENARY - Horizontal unit weight must equal zero")
	}
	if c.WeightUnit.Y < 0 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid transverse unit weight")
	} else if includeWarnings && c.WeightUnit.Y > 15 {
		appendMsg(messages, "CATENARY - WARNING - transverse unit weight exceeds 15 lb/ft")
	}
	if c.WeightUnit.Z <= 0 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid vertical unit weight")
	} else if includeWarnings && c.WeightUnit.Z > 25 {
		appendMsg(messages, "CATENARY - WARNING - vertical unit weight exceeds 25 lb/ft")
	}
	c.ensureUpdated()
	return valid && c.c2d.Validate(includeWarnings, nil)
}
