// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catenary implements the 2D and 3D catenary curve models and
// the solver that fits one to a target quantity.
package catenary

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/sagtension/geom"
)

const (
	radiansToDegrees = 180.0 / math.Pi
	iterMax          = 100
)

// Catenary2d models the hyperbolic-cosine curve of a uniformly loaded
// cable hanging between two endpoints. The origin of its internal
// coordinate system is the curve's low point; x increases toward the
// right endpoint and positive y is upward.
//
// Configuration (tension, unit weight, endpoint spacing) is set
// through the Set* methods, which invalidate the cached endpoint
// coordinates. Every query recomputes them on demand.
type Catenary2d struct {
	tensionHorizontal float64
	weightUnit        float64
	spacingEndpoints  geom.Vector2d

	updated    bool
	pointLeft  geom.Point2d
	pointRight geom.Point2d
}

// SetTensionHorizontal sets H and invalidates cached endpoints.
func (c *Catenary2d) SetTensionHorizontal(h float64) {
	c.tensionHorizontal = h
	c.updated = false
}

// SetWeightUnit sets w and invalidates cached endpoints.
func (c *Catenary2d) SetWeightUnit(w float64) {
	c.weightUnit = w
	c.updated = false
}

// SetSpacingEndpoints sets the (Δx, Δy) endpoint spacing and
// invalidates cached endpoints.
func (c *Catenary2d) SetSpacingEndpoints(v geom.Vector2d) {
	c.spacingEndpoints = v
	c.updated = false
}

// TensionHorizontal returns H.
func (c *Catenary2d) TensionHorizontal() float64 { return c.tensionHorizontal }

// WeightUnit returns w.
func (c *Catenary2d) WeightUnit() float64 { return c.weightUnit }

// SpacingEndpoints returns the stored (Δx, Δy) spacing. Earlier
// revisions of this routine called themselves recursively instead of
// returning the stored vector; this is the corrected behavior.
func (c *Catenary2d) SpacingEndpoints() geom.Vector2d { return c.spacingEndpoints }

// Constant returns the catenary constant H/w.
func (c *Catenary2d) Constant() float64 {
	return c.tensionHorizontal / c.weightUnit
}

// ensureUpdated recomputes the endpoint coordinates if the
// configuration has changed since the last query.
func (c *Catenary2d) ensureUpdated() {
	if c.updated {
		return
	}
	hw := c.Constant()
	a := c.spacingEndpoints.X
	b := c.spacingEndpoints.Y
	z := (a / 2) / hw

	s := math.Sinh(z)
	denom := hw * s / (a / 2)
	arg := (b / a) / denom
	asinhArg := math.Asinh(arg)

	c.pointLeft.X = hw * (asinhArg - z)
	c.pointRight.X = hw * (asinhArg + z)
	c.pointLeft.Y = c.coordinateY(c.pointLeft.X)
	c.pointRight.Y = c.coordinateY(c.pointRight.X)
	c.updated = true
}

func (c *Catenary2d) coordinateY(x float64) float64 {
	hw := c.Constant()
	return hw * (math.Cosh(x/hw) - 1)
}

// LengthFromOrigin returns the curve length between the low point and
// x, always non-negative.
func (c *Catenary2d) LengthFromOrigin(x float64) float64 {
	hw := c.Constant()
	return math.Abs(hw * math.Sinh(x/hw))
}

// Length returns the total curve length between the two endpoints.
func (c *Catenary2d) Length() float64 {
	c.ensureUpdated()
	lLeft := c.LengthFromOrigin(c.pointLeft.X)
	lRight := c.LengthFromOrigin(c.pointRight.X)
	if c.pointLeft.X <= 0 && c.pointRight.X >= 0 {
		// low point lies within the span: lengths on each side sum.
		return lLeft + lRight
	}
	// both endpoints on the same side of the low point.
	return math.Abs(lRight - lLeft)
}

// LengthSlack returns the curve length in excess of the straight-line
// chord distance.
func (c *Catenary2d) LengthSlack() float64 {
	return c.Length() - c.spacingEndpoints.Magnitude()
}

// xAtLength returns the x coordinate at a signed length-from-origin
// and direction: positive direction gives x>0, negative gives x<0.
func (c *Catenary2d) xAtLength(length float64, dir geom.AxisDirection) float64 {
	hw := c.Constant()
	x := hw * math.Asinh(length/hw)
	if dir == geom.Negative {
		return -x
	}
	return x
}

// Coordinate converts a fraction of curve length (measured from the
// left endpoint) into a curve point. isShiftedOrigin re-bases the
// returned point to the left endpoint instead of the curve's low
// point.
func (c *Catenary2d) Coordinate(positionFraction float64, isShiftedOrigin bool) geom.Point2d {
	c.ensureUpdated()

	lengthLeftToPosition := positionFraction * c.Length()
	lengthOriginToLeft := c.LengthFromOrigin(c.pointLeft.X)

	var lengthOriginToPosition float64
	var dir geom.AxisDirection

	switch {
	case c.pointLeft.X < 0 && c.pointRight.X < 0:
		// both endpoints left of the low point.
		lengthOriginToPosition = lengthOriginToLeft - lengthLeftToPosition
		dir = geom.Negative
	case c.pointLeft.X < 0 && c.pointRight.X > 0:
		switch {
		case lengthLeftToPosition < lengthOriginToLeft:
			lengthOriginToPosition = lengthOriginToLeft - lengthLeftToPosition
			dir = geom.Negative
		case lengthLeftToPosition == lengthOriginToLeft:
			lengthOriginToPosition = 0
			dir = geom.Positive
		default:
			lengthOriginToPosition = lengthLeftToPosition - lengthOriginToLeft
			dir = geom.Positive
		}
	default:
		// both endpoints right of the low point.
		lengthOriginToPosition = lengthOriginToLeft + lengthLeftToPosition
		dir = geom.Positive
	}

	x := c.xAtLength(lengthOriginToPosition, dir)
	point := geom.Point2d{X: x, Y: c.coordinateY(x)}
	if isShiftedOrigin {
		point.X -= c.pointLeft.X
		point.Y -= c.pointLeft.Y
	}
	return point
}

// CoordinateChord returns the point on the straight chord between
// endpoints at the same x coordinate as Coordinate(positionFraction),
// with the same optional re-basing to the left endpoint.
func (c *Catenary2d) CoordinateChord(positionFraction float64, isShiftedOrigin bool) geom.Point2d {
	c.ensureUpdated()
	curve := c.Coordinate(positionFraction, false)
	slope := c.spacingEndpoints.Y / c.spacingEndpoints.X
	chord := geom.Point2d{
		X: curve.X,
		Y: c.pointLeft.Y + (curve.X-c.pointLeft.X)*slope,
	}
	if isShiftedOrigin {
		chord.X -= c.pointLeft.X
		chord.Y -= c.pointLeft.Y
	}
	return chord
}

// positionFractionForTangentAngle bisects position fraction until the
// curve's tangent angle matches tangentAngle, within 0.001 degree or
// 0.0001 of fraction.
func (c *Catenary2d) positionFractionForTangentAngle(tangentAngle float64) float64 {
	lower, upper := 0.0, 1.0
	current := 0.0
	angleAtCurrent := math.Inf(-1)
	for iter := 0; iter < iterMax; iter++ {
		if math.Abs(tangentAngle-angleAtCurrent) < 0.001 && (upper-lower) < 0.0001 {
			break
		}
		current = (upper + lower) / 2
		angleAtCurrent = c.TangentAngle(current, geom.Positive)
		switch {
		case angleAtCurrent == tangentAngle:
			return current
		case angleAtCurrent < tangentAngle:
			lower = current
		default:
			upper = current
		}
	}
	return current
}

// PositionFractionOrigin returns the position fraction of the curve's
// low point (tangent angle zero).
func (c *Catenary2d) PositionFractionOrigin() float64 {
	c.ensureUpdated()
	return c.positionFractionForTangentAngle(0)
}

// PositionFractionSagPoint returns the position fraction where the
// curve's tangent is parallel to the chord.
func (c *Catenary2d) PositionFractionSagPoint() float64 {
	c.ensureUpdated()
	chordAngle := c.spacingEndpoints.Angle(true)
	return c.positionFractionForTangentAngle(chordAngle)
}

// Sag returns the vertical distance between the chord and the curve
// at the sag point (where the curve's tangent is parallel to the
// chord).
func (c *Catenary2d) Sag() float64 {
	c.ensureUpdated()
	p := c.PositionFractionSagPoint()
	curve := c.Coordinate(p, false)
	chord := c.CoordinateChord(p, false)
	return chord.Y - curve.Y
}

// TangentAngle returns the curve's tangent angle, in degrees, at
// positionFraction; dir negates the sign.
func (c *Catenary2d) TangentAngle(positionFraction float64, dir geom.AxisDirection) float64 {
	c.ensureUpdated()
	p := c.Coordinate(positionFraction, false)
	slope := math.Sinh(p.X / c.Constant())
	angle := math.Atan(slope) * radiansToDegrees
	if dir == geom.Negative {
		angle = -angle
	}
	return angle
}

// TangentVector returns the unit tangent vector at positionFraction.
func (c *Catenary2d) TangentVector(positionFraction float64, dir geom.AxisDirection) geom.Vector2d {
	c.ensureUpdated()
	angle := c.TangentAngle(positionFraction, dir) / radiansToDegrees
	if dir == geom.Negative {
		return geom.Vector2d{X: -math.Cos(angle), Y: math.Sin(angle)}
	}
	return geom.Vector2d{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Tension returns the scalar tension magnitude at positionFraction.
func (c *Catenary2d) Tension(positionFraction float64) float64 {
	c.ensureUpdated()
	p := c.Coordinate(positionFraction, false)
	return c.tensionHorizontal * math.Cosh(p.X/c.Constant())
}

// TensionVector returns the tension at positionFraction resolved
// along the curve's unit tangent.
func (c *Catenary2d) TensionVector(positionFraction float64, dir geom.AxisDirection) geom.Vector2d {
	c.ensureUpdated()
	tangent := c.TangentVector(positionFraction, dir)
	return tangent.Scale(c.Tension(positionFraction))
}

// TensionMax returns the larger of the two endpoint tensions.
func (c *Catenary2d) TensionMax() float64 {
	c.ensureUpdated()
	if c.spacingEndpoints.Y <= 0 {
		return c.Tension(0)
	}
	return c.Tension(1)
}

// TensionAverage returns the average tension along the curve: the
// closed-form Ehrenburg approximation when numPoints is 0, otherwise
// the arithmetic mean of numPoints+1 evenly spaced samples (i=0..n
// inclusive).
func (c *Catenary2d) TensionAverage(numPoints int) float64 {
	c.ensureUpdated()
	if numPoints == 0 {
		h := c.tensionHorizontal
		w := c.weightUnit
		l := c.Length()
		hw := c.Constant()

		term1 := (h * h) / (2 * w * l)
		term2 := math.Sinh(c.pointRight.X/hw) * math.Cosh(c.pointRight.X/hw)
		term3 := math.Sinh(c.pointLeft.X/hw) * math.Cosh(c.pointLeft.X/hw)
		term4 := (c.pointRight.X - c.pointLeft.X) / hw

		return term1 * (term2 - term3 + term4)
	}

	sum := 0.0
	n := float64(numPoints)
	for i := 0; i <= numPoints; i++ {
		sum += c.Tension(float64(i) / n)
	}
	return sum / (n + 1)
}

// Polyline samples n+1 evenly spaced points along the curve.
func (c *Catenary2d) Polyline(n int) []geom.Point2d {
	c.ensureUpdated()
	fractions := utl.Alloc(1, n+1)[0]
	points := make([]geom.Point2d, n+1)
	for i := range fractions {
		fractions[i] = float64(i) / float64(n)
		points[i] = c.Coordinate(fractions[i], false)
	}
	return points
}

// Validate checks the catenary's configuration, appending
// human-readable diagnostics to messages. Warnings
// (out-of-range but computable values) never turn a valid configuration
// invalid; only the hard error conditions do.
func (c *Catenary2d) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if c.tensionHorizontal <= 0 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid horizontal tension")
	} else if includeWarnings && c.tensionHorizontal > 100000 {
		appendMsg(messages, "CATENARY - WARNING - horizontal tension exceeds 100,000 lb")
	}
	if c.weightUnit <= 0 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid unit weight")
	} else if includeWarnings && c.weightUnit > 15 {
		appendMsg(messages, "CATENARY - WARNING - unit weight exceeds 15 lb/ft")
	}
	if c.spacingEndpoints.X <= 0 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid horizontal endpoint spacing")
	} else if includeWarnings && c.spacingEndpoints.X > 5000 {
		appendMsg(messages, "CATENARY - WARNING - horizontal endpoint spacing exceeds 5,000 ft")
	}
	if math.Abs(c.spacingEndpoints.Y) >= 2000 {
		valid = false
		appendMsg(messages, "CATENARY - Invalid vertical endpoint spacing")
	}
	return valid
}

// ConstantMinimum returns the smallest catenary constant H/w that can
// span a chord of the given straight-line distance (guarantees chord
// length <= curve length).
func ConstantMinimum(chordDistance float64) float64 {
	return chordDistance / 2
}

func appendMsg(messages *[]string, msg string) {
	if messages != nil {
		*messages = append(*messages, msg)
	}
}
