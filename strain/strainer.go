// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strain implements the length transition between a cable's
// start and finish (state, load).
package strain

import (
	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/elongation"
)

// State describes one end of a strain transition: whether the cable is
// evaluated on its stretched or unstretched curve, and its temperature.
type State struct {
	IsStretched bool
	Temperature float64
}

// Strainer transitions a cable's length from a start (state, load) to
// a finish (state, load) via thermal and load strain deltas.
type Strainer struct {
	LengthStart float64
	LoadStart   float64
	LoadFinish  float64

	modelStart  elongation.CableModel
	modelFinish elongation.CableModel

	stateStart  State
	stateFinish State
}

// SetCable applies the same physical cable to both the start and
// finish models.
func (s *Strainer) SetCable(c cable.Cable) {
	s.modelStart.SetCable(c)
	s.modelFinish.SetCable(c)
}

// SetCableStart applies a cable to the start model only, letting the
// start and finish models read different active polynomials off the
// same physical cable (e.g. a reload that compares an as-strung
// load-strain reference against a creep-stretched target).
func (s *Strainer) SetCableStart(c cable.Cable) { s.modelStart.SetCable(c) }

// SetCableFinish applies a cable to the finish model only; see
// SetCableStart.
func (s *Strainer) SetCableFinish(c cable.Cable) { s.modelFinish.SetCable(c) }

// SetLoadStretch applies the same historical stretch load to both
// models.
func (s *Strainer) SetLoadStretch(load float64) {
	s.modelStart.SetLoadStretch(load)
	s.modelFinish.SetLoadStretch(load)
}

// SetTemperatureStretch applies the same stretch temperature to both
// models.
func (s *Strainer) SetTemperatureStretch(t float64) {
	s.modelStart.SetTemperatureStretch(t)
	s.modelFinish.SetTemperatureStretch(t)
}

// SetStateStart sets the start state (stretched flag + temperature).
func (s *Strainer) SetStateStart(state State) {
	s.stateStart = state
	s.modelStart.SetTemperature(state.Temperature)
}

// SetStateFinish sets the finish state (stretched flag + temperature).
func (s *Strainer) SetStateFinish(state State) {
	s.stateFinish = state
	s.modelFinish.SetTemperature(state.Temperature)
}

// StrainTransitionLoad returns the strain delta attributable to the
// change in load between start and finish.
func (s *Strainer) StrainTransitionLoad() (float64, error) {
	strainStartUnloaded, err := s.modelStart.StrainTotal(0, false)
	if err != nil {
		return 0, err
	}
	strainStartLoaded, err := s.modelStart.StrainTotal(s.LoadStart, s.stateStart.IsStretched)
	if err != nil {
		return 0, err
	}
	strainFinishUnloaded, err := s.modelFinish.StrainTotal(0, false)
	if err != nil {
		return 0, err
	}
	strainFinishLoaded, err := s.modelFinish.StrainTotal(s.LoadFinish, s.stateFinish.IsStretched)
	if err != nil {
		return 0, err
	}
	return (strainFinishLoaded - strainFinishUnloaded) - (strainStartLoaded - strainStartUnloaded), nil
}

// StrainTransitionThermal returns the strain delta attributable to the
// change in unloaded-unstretched reference strain between start and
// finish temperatures.
func (s *Strainer) StrainTransitionThermal() (float64, error) {
	strainStart, err := s.modelStart.StrainTotal(0, false)
	if err != nil {
		return 0, err
	}
	strainFinish, err := s.modelFinish.StrainTotal(0, false)
	if err != nil {
		return 0, err
	}
	return strainFinish - strainStart, nil
}

// lengthAfterStrain applies strainTransition to lengthBefore. The rule
// is asymmetric by construction: applying ε then −ε returns exactly to
// lengthBefore, which a naive symmetric L·(1+ε) would not.
func lengthAfterStrain(lengthBefore, strainTransition float64) float64 {
	if strainTransition < 0 {
		return lengthBefore / (1 + -strainTransition)
	}
	return lengthBefore * (1 + strainTransition)
}

// LengthFinish returns the length at the finish (state, load), derived
// from LengthStart by applying the load-based strain transition and
// then the thermal-based strain transition.
func (s *Strainer) LengthFinish() (float64, error) {
	strainLoad, err := s.StrainTransitionLoad()
	if err != nil {
		return 0, err
	}
	lengthAfterLoad := lengthAfterStrain(s.LengthStart, strainLoad)

	strainThermal, err := s.StrainTransitionThermal()
	if err != nil {
		return 0, err
	}
	return lengthAfterStrain(lengthAfterLoad, strainThermal), nil
}

// LoadStartCore returns the core's share of LoadStart.
func (s *Strainer) LoadStartCore() (float64, error) {
	strain, err := s.modelStart.StrainTotal(s.LoadStart, s.stateStart.IsStretched)
	if err != nil {
		return 0, err
	}
	return s.modelStart.LoadCore(strain, s.stateStart.IsStretched)
}

// LoadStartShell returns the shell's share of LoadStart.
func (s *Strainer) LoadStartShell() (float64, error) {
	strain, err := s.modelStart.StrainTotal(s.LoadStart, s.stateStart.IsStretched)
	if err != nil {
		return 0, err
	}
	return s.modelStart.LoadShell(strain, s.stateStart.IsStretched)
}

// LoadFinishCore returns the core's share of LoadFinish.
func (s *Strainer) LoadFinishCore() (float64, error) {
	strain, err := s.modelFinish.StrainTotal(s.LoadFinish, s.stateFinish.IsStretched)
	if err != nil {
		return 0, err
	}
	return s.modelFinish.LoadCore(strain, s.stateFinish.IsStretched)
}

// LoadFinishShell returns the shell's share of LoadFinish.
func (s *Strainer) LoadFinishShell() (float64, error) {
	strain, err := s.modelFinish.StrainTotal(s.LoadFinish, s.stateFinish.IsStretched)
	if err != nil {
		return 0, err
	}
	return s.modelFinish.LoadShell(strain, s.stateFinish.IsStretched)
}

// Validate checks the strainer's own fields and the start model. The
// finish model's Validate is also run, but its result and messages are
// discarded, so a bad finish model does not make the strainer invalid.
func (s *Strainer) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if s.LengthStart <= 0 {
		valid = false
		appendMsg(messages, "CABLE STRAINER - Invalid length")
	}
	if s.LoadFinish < 0 {
		valid = false
		appendMsg(messages, "CABLE STRAINER - Invalid finish load")
	}
	if s.LoadStart < 0 {
		valid = false
		appendMsg(messages, "CABLE STRAINER - Invalid start load")
	}
	if !valid {
		return valid
	}
	if !s.modelStart.Validate(includeWarnings, messages) {
		valid = false
	}
	s.modelFinish.Validate(includeWarnings, nil)
	return valid
}

func appendMsg(messages *[]string, msg string) {
	if messages != nil {
		*messages = append(*messages, msg)
	}
}
