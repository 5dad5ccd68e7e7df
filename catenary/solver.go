// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catenary

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/geom"
	"github.com/cpmech/sagtension/numsolve"
)

// TargetType selects which catenary quantity a Solver fits.
type TargetType int

const (
	TargetNull TargetType = iota
	TargetConstant
	TargetLength
	TargetSag
	TargetTension
)

// Solver fits a Catenary3d's horizontal tension so that one of its
// derived quantities (catenary constant, curve length, sag, or
// support tension) matches a target value.
type Solver struct {
	SpacingEndpoints geom.Vector3d
	WeightUnit       geom.Vector3d

	PositionTarget float64 // -1 selects the default (max tension / sag point)
	TypeTarget     TargetType
	ValueTarget    float64
}

// Validate checks the solver's configuration, mirroring
// Catenary3d.Validate for the shared fields.
func (s Solver) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if s.PositionTarget != -1 && (s.PositionTarget < 0 || s.PositionTarget > 1) {
		valid = false
		appendMsg(messages, "CATENARY SOLVER - Invalid target position")
	}
	c := Catenary3d{SpacingEndpoints: s.SpacingEndpoints, WeightUnit: s.WeightUnit}
	// the catenary's own check requires a positive H; the minimum
	// constant stands in for the unsolved value.
	c.SetTensionHorizontal(s.constantMinimumH())
	if !c.Validate(includeWarnings, messages) {
		valid = false
	}
	if s.TypeTarget == TargetNull {
		valid = false
		appendMsg(messages, "CATENARY SOLVER - Invalid target type")
	}
	if s.ValueTarget <= 0 {
		valid = false
		appendMsg(messages, "CATENARY SOLVER - Invalid target value")
	}
	return valid
}

// Catenary solves for and returns the fitted catenary.
func (s Solver) Catenary() (Catenary3d, error) {
	c := Catenary3d{SpacingEndpoints: s.SpacingEndpoints, WeightUnit: s.WeightUnit}

	switch s.TypeTarget {
	case TargetConstant:
		c.SetTensionHorizontal(s.ValueTarget * s.WeightUnit.Magnitude())

	case TargetLength:
		h, err := s.solveFromLength(&c)
		if err != nil {
			return Catenary3d{}, err
		}
		c.SetTensionHorizontal(h)

	case TargetSag:
		h, err := s.solveFromSag(&c)
		if err != nil {
			return Catenary3d{}, err
		}
		c.SetTensionHorizontal(h)

	case TargetTension:
		h, err := s.solveFromTension(&c)
		if err != nil {
			return Catenary3d{}, err
		}
		c.SetTensionHorizontal(h)

	default:
		return Catenary3d{}, chk.Err("catenary: solver has no target type set")
	}

	if !c.Validate(false, nil) {
		return Catenary3d{}, chk.Err("catenary: solved catenary is invalid (H/w out of range)")
	}
	return c, nil
}

func (s Solver) constantMinimumH() float64 {
	return ConstantMinimum(s.SpacingEndpoints.Magnitude()) * s.WeightUnit.Magnitude()
}

func (s Solver) solveFromLength(c *Catenary3d) (float64, error) {
	hLeft := s.constantMinimumH()
	c.SetTensionHorizontal(hLeft)
	if s.ValueTarget <= s.SpacingEndpoints.Magnitude() {
		return 0, chk.Err("catenary: target length is not greater than the chord distance")
	}
	if c.Length() < s.ValueTarget {
		return 0, chk.Err("catenary: target length exceeds what any valid catenary can reach")
	}
	return numsolve.Bracket(func(h float64) float64 {
		c.SetTensionHorizontal(h)
		return c.Length()
	}, hLeft, hLeft*1.10, s.ValueTarget, 0.01, false)
}

func (s Solver) solveFromSag(c *Catenary3d) (float64, error) {
	hLeft := s.constantMinimumH()
	sagAt := func(h float64) float64 {
		c.SetTensionHorizontal(h)
		if s.PositionTarget == -1 {
			return c.Sag()
		}
		return c.SagAt(s.PositionTarget)
	}
	if sagAt(hLeft) < s.ValueTarget {
		return 0, chk.Err("catenary: target sag exceeds what any valid catenary can reach")
	}
	return numsolve.Bracket(sagAt, hLeft, hLeft*1.10, s.ValueTarget, 0.01, false)
}

func (s Solver) solveFromTension(c *Catenary3d) (float64, error) {
	hLeft := s.constantMinimumH()
	tensionAt := func(h float64) float64 {
		c.SetTensionHorizontal(h)
		if s.PositionTarget == -1 {
			return c.TensionMax()
		}
		return c.Tension(s.PositionTarget)
	}
	if s.ValueTarget < tensionAt(hLeft) {
		return 0, chk.Err("catenary: target support tension is below what any valid catenary can reach")
	}
	// horizontal tension cannot exceed support tension.
	return numsolve.Bracket(tensionAt, hLeft, s.ValueTarget, s.ValueTarget, 0.01, false)
}
