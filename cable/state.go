// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cable

// State describes the thermal/material regime at which a cable is
// currently being evaluated: temperature and active polynomial type.
type State struct {
	Temperature    float64
	TypePolynomial PolynomialType
}

// StretchState extends State with the permanent stretch load that has
// historically been induced into the cable: once stretched to Load at
// Temperature under TypePolynomial, the cable's unloaded reference
// shifts.
type StretchState struct {
	State
	Load float64
}

// NewUnstretchedState returns the default stretch state of a cable
// that has never been loaded: zero stretch load, evaluated on the
// load-strain polynomial at the given temperature.
func NewUnstretchedState(temperature float64) StretchState {
	return StretchState{
		State: State{Temperature: temperature, TypePolynomial: LoadStrain},
	}
}

// IsStretched reports whether the state carries any permanent stretch.
func (s StretchState) IsStretched() bool {
	return s.Load > 0
}

// Weather is a single weather-load case: ice density, ice radial
// thickness, wind pressure and the cable's temperature under that
// case. Weather is input-only -- nothing in this module mutates it.
type Weather struct {
	DensityIce       float64
	ThicknessIce     float64
	PressureWind     float64
	TemperatureCable float64
}

// Validate checks the weather case's own fields.
func (w Weather) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if w.ThicknessIce < 0 {
		valid = false
		appendMsg(messages, "WEATHER LOAD CASE - Invalid ice thickness")
	}
	if w.DensityIce < 0 {
		valid = false
		appendMsg(messages, "WEATHER LOAD CASE - Invalid ice density")
	}
	if w.PressureWind < 0 {
		valid = false
		appendMsg(messages, "WEATHER LOAD CASE - Invalid wind pressure")
	}
	return valid
}

// ConditionType tags which condition a constraint was measured under.
type ConditionType int

const (
	ConditionInitial ConditionType = iota
	ConditionCreep
	ConditionLoad
)

// LimitType selects which quantity a constraint's numeric limit binds.
type LimitType int

const (
	LimitHorizontalTension LimitType = iota
	LimitCatenaryConstant
	LimitSupportTension
)

// Constraint pins a line cable's ruling-span catenary to a numeric
// limit (horizontal tension, catenary constant, or support tension)
// measured under a borrowed weather case and condition.
type Constraint struct {
	CaseWeather *Weather
	Condition   ConditionType
	Limit       float64
	TypeLimit   LimitType
}

// Validate checks the constraint's own fields; CaseWeather validation
// is the caller's responsibility since it is borrowed, not owned.
func (c Constraint) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if c.CaseWeather == nil {
		valid = false
		appendMsg(messages, "CABLE CONSTRAINT - Invalid weather case")
	}
	if c.Limit <= 0 {
		valid = false
		appendMsg(messages, "CABLE CONSTRAINT - Invalid limit")
	}
	return valid
}
