// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sagtension

import (
	"github.com/cpmech/sagtension/strain"
)

// CableUnloader strains a loaded catenary's cable down to a specified
// unloaded state. The catenary's varying tension is
// converted to a constant effective tension (its average) that
// produces the same elongation.
type CableUnloader struct {
	CatenaryCable      CatenaryCable
	StateUnloaded      strain.State
	LoadStretch        float64
	TemperatureStretch float64

	updated  bool
	err      error
	strainer strain.Strainer
}

// SetCatenaryCable sets the loaded catenary cable to unload.
func (u *CableUnloader) SetCatenaryCable(cc CatenaryCable) {
	u.CatenaryCable = cc
	u.updated = false
}

// SetStateUnloaded sets the target unloaded state.
func (u *CableUnloader) SetStateUnloaded(s strain.State) {
	u.StateUnloaded = s
	u.updated = false
}

// SetLoadStretch sets the historical stretch load shared by the start
// and finish elongation models.
func (u *CableUnloader) SetLoadStretch(load float64) {
	u.LoadStretch = load
	u.updated = false
}

// SetTemperatureStretch sets the temperature at which LoadStretch was
// historically induced.
func (u *CableUnloader) SetTemperatureStretch(t float64) {
	u.TemperatureStretch = t
	u.updated = false
}

func (u *CableUnloader) ensureUpdated() error {
	if u.updated {
		return u.err
	}
	u.updateStrainer()
	u.updated = true
	return u.err
}

func (u *CableUnloader) updateStrainer() {
	u.strainer = strain.Strainer{}
	u.strainer.SetCable(u.CatenaryCable.Cable)
	u.strainer.SetLoadStretch(u.LoadStretch)
	u.strainer.SetTemperatureStretch(u.TemperatureStretch)

	u.strainer.LengthStart = u.CatenaryCable.Length()
	u.strainer.LoadStart = u.CatenaryCable.TensionAverage(0)
	u.strainer.LoadFinish = 0

	u.strainer.SetStateStart(u.CatenaryCable.State)
	u.strainer.SetStateFinish(u.StateUnloaded)
}

// LengthUnloaded returns the cable's length once strained down to
// StateUnloaded at zero load.
func (u *CableUnloader) LengthUnloaded() (float64, error) {
	if err := u.ensureUpdated(); err != nil {
		return 0, err
	}
	return u.strainer.LengthFinish()
}

// Validate checks that the strainer this unloader builds is itself
// well-formed.
func (u *CableUnloader) Validate(includeWarnings bool, messages *[]string) bool {
	if err := u.ensureUpdated(); err != nil {
		appendMsg(messages, "CATENARY CABLE UNLOADER - "+err.Error())
		return false
	}
	return u.strainer.Validate(includeWarnings, messages)
}
