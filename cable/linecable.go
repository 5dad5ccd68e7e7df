// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cable

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/catenary"
	"github.com/cpmech/sagtension/geom"
	"github.com/cpmech/sagtension/uload"
)

// LineCable composes a cable, its governing constraint, the two
// stretch weather cases (creep and load), and the ruling-span
// attachment spacing used to form its catenary.
type LineCable struct {
	CableBase Cable

	Constraint Constraint

	WeathercaseStretchCreep *Weather
	WeathercaseStretchLoad  *Weather

	SpacingRulingSpan geom.Vector3d
}

// Validate checks the line cable's own composition. Constraint,
// weather cases and the base cable are each validated individually.
func (l LineCable) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if !l.CableBase.Validate(includeWarnings, messages) {
		valid = false
	}
	if !l.Constraint.Validate(includeWarnings, messages) {
		valid = false
	}
	if l.WeathercaseStretchCreep == nil {
		valid = false
		appendMsg(messages, "LINE CABLE - Invalid creep stretch weather case")
	} else if !l.WeathercaseStretchCreep.Validate(includeWarnings, messages) {
		valid = false
	}
	if l.WeathercaseStretchLoad == nil {
		valid = false
		appendMsg(messages, "LINE CABLE - Invalid load stretch weather case")
	} else if !l.WeathercaseStretchLoad.Validate(includeWarnings, messages) {
		valid = false
	}
	if l.SpacingRulingSpan.X <= 0 {
		valid = false
		appendMsg(messages, "LINE CABLE - Invalid ruling span spacing")
	}
	return valid
}

// UnitLoad returns the unit-length load vector the cable experiences
// under the given weather case.
func (l LineCable) UnitLoad(w Weather) (geom.Vector3d, error) {
	calc := uload.Calculator{
		DiameterCable:   l.CableBase.DiameterNominal,
		WeightUnitCable: l.CableBase.WeightUnit,
	}
	return calc.UnitCableLoad(uload.Weather{
		DensityIce:   w.DensityIce,
		ThicknessIce: w.ThicknessIce,
		PressureWind: w.PressureWind,
	})
}

// CatenaryRulingSpan fits a Catenary3d over the ruling-span spacing
// that satisfies the line cable's constraint under its weather case,
// using a CatenarySolver target derived from the constraint's limit
// type.
func (l LineCable) CatenaryRulingSpan() (catenary.Catenary3d, error) {
	if l.Constraint.CaseWeather == nil {
		return catenary.Catenary3d{}, chk.Err("cable: line cable constraint has no weather case")
	}

	weightUnit, err := l.UnitLoad(*l.Constraint.CaseWeather)
	if err != nil {
		return catenary.Catenary3d{}, err
	}

	// a horizontal-tension constraint pins H directly -- no fit needed.
	if l.Constraint.TypeLimit == LimitHorizontalTension {
		c := catenary.Catenary3d{SpacingEndpoints: l.SpacingRulingSpan, WeightUnit: weightUnit}
		c.SetTensionHorizontal(l.Constraint.Limit)
		return c, nil
	}

	var target catenary.TargetType
	switch l.Constraint.TypeLimit {
	case LimitCatenaryConstant:
		target = catenary.TargetConstant
	case LimitSupportTension:
		target = catenary.TargetTension
	default:
		return catenary.Catenary3d{}, chk.Err("cable: unknown constraint limit type")
	}

	solver := catenary.Solver{
		SpacingEndpoints: l.SpacingRulingSpan,
		WeightUnit:       weightUnit,
		PositionTarget:   -1,
		TypeTarget:       target,
		ValueTarget:      l.Constraint.Limit,
	}
	return solver.Catenary()
}
