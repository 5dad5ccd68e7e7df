// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sagtension

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/geom"
	"github.com/cpmech/sagtension/strain"
)

// LineCableUnloader unloads a line cable to a specific condition and
// temperature, at the span's actual attachment spacing rather than its
// ruling-span approximation. It builds on
// LineCableLoaderBase for the constraint catenary and the creep/load
// stretch states, then unloads the constraint catenary -- resized to
// the attachment spacing -- via CableUnloader.
type LineCableUnloader struct {
	LineCableLoaderBase

	ConditionUnloaded   cable.ConditionType
	SpacingAttachments  geom.Vector3d
	TemperatureUnloaded float64

	updatedLength bool
	err           error

	lengthUnloaded float64
}

// SetConditionUnloaded sets the cable's condition when unloaded.
func (l *LineCableUnloader) SetConditionUnloaded(c cable.ConditionType) {
	l.ConditionUnloaded = c
	l.updatedLength = false
}

// SetSpacingAttachments sets the span's actual attachment spacing.
func (l *LineCableUnloader) SetSpacingAttachments(v geom.Vector3d) {
	l.SpacingAttachments = v
	l.updatedLength = false
}

// SetTemperatureUnloaded sets the temperature to unload the cable to.
func (l *LineCableUnloader) SetTemperatureUnloaded(t float64) {
	l.TemperatureUnloaded = t
	l.updatedLength = false
}

// LengthUnloaded returns the cable's length once unloaded to
// ConditionUnloaded at TemperatureUnloaded, at SpacingAttachments.
func (l *LineCableUnloader) LengthUnloaded() (float64, error) {
	if err := l.ensureUpdated(); err != nil {
		return 0, err
	}
	return l.lengthUnloaded, nil
}

func (l *LineCableUnloader) ensureUpdated() error {
	if err := l.LineCableLoaderBase.ensureUpdated(); err != nil {
		l.updatedLength = false
		l.err = err
		return err
	}
	if l.updatedLength {
		return l.err
	}
	if err := l.updateLengthUnloaded(); err != nil {
		l.err = err
		return err
	}
	l.updatedLength = true
	l.err = nil
	return nil
}

// stretchUnloaded returns the (load, temperature) the cable was
// historically stretched by, as seen from the unloaded condition: zero
// for the initial condition, otherwise the creep or load stretch state
// already solved by LineCableLoaderBase.
func (l *LineCableUnloader) stretchUnloaded() (cable.StretchState, error) {
	switch l.ConditionUnloaded {
	case cable.ConditionInitial:
		return cable.NewUnstretchedState(l.TemperatureUnloaded), nil
	case cable.ConditionCreep:
		return l.StretchStateCreep()
	case cable.ConditionLoad:
		return l.StretchStateLoad()
	default:
		return cable.StretchState{}, chk.Err("sagtension: unrecognized unloaded condition")
	}
}

// updateLengthUnloaded unloads the constraint catenary -- resized from
// the ruling span to the actual attachment spacing, with its tension
// and unit weight otherwise unchanged -- down to ConditionUnloaded at
// TemperatureUnloaded.
func (l *LineCableUnloader) updateLengthUnloaded() error {
	stretch, err := l.stretchUnloaded()
	if err != nil {
		return err
	}

	catenaryConstraint, err := l.CatenaryConstraint()
	if err != nil {
		return err
	}
	catenaryAttachments := catenaryConstraint
	catenaryAttachments.SpacingEndpoints = l.SpacingAttachments

	// the as-strung reference is itself on the stretched curve when the
	// constraint was measured after creep or a heavy-load event.
	reference := l.catenaryCableConstraint()
	reference.Catenary3d = catenaryAttachments
	reference.State.IsStretched = l.LineCable.Constraint.Condition != cable.ConditionInitial && stretch.IsStretched()

	var unloader CableUnloader
	unloader.SetCatenaryCable(reference)
	unloader.SetLoadStretch(stretch.Load)
	unloader.SetTemperatureStretch(stretch.Temperature)
	unloader.SetStateUnloaded(strain.State{IsStretched: stretch.IsStretched(), Temperature: l.TemperatureUnloaded})

	length, err := unloader.LengthUnloaded()
	if err != nil {
		return err
	}
	l.lengthUnloaded = length
	return nil
}

// Validate checks the base line cable loader and this unloader's own
// fields, including the attachment-spacing and unloaded-temperature
// bounds.
func (l *LineCableUnloader) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if !l.LineCableLoaderBase.Validate(includeWarnings, messages) {
		valid = false
	}
	if l.ConditionUnloaded != cable.ConditionInitial &&
		l.ConditionUnloaded != cable.ConditionCreep &&
		l.ConditionUnloaded != cable.ConditionLoad {
		valid = false
		appendMsg(messages, "LINE CABLE UNLOADER - Invalid unloaded condition")
	}
	if l.SpacingAttachments.X <= 0 {
		valid = false
		appendMsg(messages, "LINE CABLE UNLOADER - Invalid horizontal attachment spacing")
	}
	if l.SpacingAttachments.Y != 0 {
		valid = false
		appendMsg(messages, "LINE CABLE UNLOADER - Invalid transverse attachment spacing")
	}
	if 2000 < abs(l.SpacingAttachments.Z) {
		valid = false
		appendMsg(messages, "LINE CABLE UNLOADER - Invalid vertical attachment spacing")
	}
	if l.TemperatureUnloaded < -50 {
		valid = false
		appendMsg(messages, "LINE CABLE UNLOADER - Invalid unloaded temperature")
	}
	if !valid {
		return false
	}
	if err := l.ensureUpdated(); err != nil {
		appendMsg(messages, "LINE CABLE UNLOADER - "+err.Error())
		return false
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
