// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sagtension

import (
	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/catenary"
	"github.com/cpmech/sagtension/geom"
	"github.com/cpmech/sagtension/numsolve"
	"github.com/cpmech/sagtension/strain"
)

// CableReloader solves the horizontal tension of a reloaded catenary
// so that its curve length matches the length predicted by straining
// the cable from its unloaded reference length up to the reloaded
// weight case.
type CableReloader struct {
	CatenaryCable      CatenaryCable
	StateUnloaded      strain.State
	StateReloaded      strain.State
	WeightUnitReloaded geom.Vector3d
	LoadStretch        float64
	TemperatureStretch float64

	// CableReloaded overrides the cable used for the reloaded (finish)
	// side of the strain, letting the reference and target sides read
	// different active polynomials off the same physical cable -- the
	// line-cable loader needs this to compare a load-strain reference
	// against a creep-stretched target. Nil means "same as
	// CatenaryCable.Cable".
	CableReloaded *cable.Cable

	updatedLength   bool
	updatedReloaded bool
	err             error

	lengthUnloadedUnstretched float64
	catenaryCableReloaded     CatenaryCable
	strainer                  strain.Strainer
}

func (r *CableReloader) SetCatenaryCable(cc CatenaryCable) {
	r.CatenaryCable = cc
	r.updatedLength = false
	r.updatedReloaded = false
}

func (r *CableReloader) SetStateUnloaded(s strain.State) {
	r.StateUnloaded = s
	r.updatedLength = false
	r.updatedReloaded = false
}

func (r *CableReloader) SetStateReloaded(s strain.State) {
	r.StateReloaded = s
	r.updatedReloaded = false
}

func (r *CableReloader) SetWeightUnitReloaded(w geom.Vector3d) {
	r.WeightUnitReloaded = w
	r.updatedReloaded = false
}

func (r *CableReloader) ensureUpdated() error {
	if r.updatedLength && r.updatedReloaded {
		return r.err
	}
	if !r.updatedLength {
		if err := r.updateLengthUnloadedUnstretched(); err != nil {
			r.err = err
			return err
		}
		r.updatedLength = true
	}
	if !r.updatedReloaded {
		if err := r.solveReloadedTension(); err != nil {
			r.err = err
			return err
		}
		r.updatedReloaded = true
	}
	r.err = nil
	return nil
}

// updateLengthUnloadedUnstretched finds the cable's unloaded reference
// length by unloading the loaded catenary cable.
func (r *CableReloader) updateLengthUnloadedUnstretched() error {
	var unloader CableUnloader
	unloader.SetCatenaryCable(r.CatenaryCable)
	unloader.SetStateUnloaded(r.StateUnloaded)
	unloader.SetLoadStretch(r.LoadStretch)
	unloader.SetTemperatureStretch(r.TemperatureStretch)

	length, err := unloader.LengthUnloaded()
	if err != nil {
		return err
	}
	r.lengthUnloadedUnstretched = length
	return nil
}

func (r *CableReloader) initializeReloadedCatenaryCable() {
	r.catenaryCableReloaded = r.CatenaryCable
	if r.CableReloaded != nil {
		r.catenaryCableReloaded.Cable = *r.CableReloaded
	}
	r.catenaryCableReloaded.State = r.StateReloaded
	r.catenaryCableReloaded.WeightUnit = r.WeightUnitReloaded
}

func (r *CableReloader) initializeStrainer() {
	r.strainer = strain.Strainer{}
	r.strainer.SetCableStart(r.CatenaryCable.Cable)
	if r.CableReloaded != nil {
		r.strainer.SetCableFinish(*r.CableReloaded)
	} else {
		r.strainer.SetCableFinish(r.CatenaryCable.Cable)
	}
	r.strainer.SetLoadStretch(r.LoadStretch)
	r.strainer.SetTemperatureStretch(r.TemperatureStretch)
	r.strainer.LengthStart = r.lengthUnloadedUnstretched
	r.strainer.LoadStart = 0
	r.strainer.SetStateStart(r.StateUnloaded)
	r.strainer.SetStateFinish(r.StateReloaded)
}

// lengthDifference is the residual g(H) = L_catenary(H) - L_cable(H)
// that the bracket root-finder drives to zero.
func (r *CableReloader) lengthDifference(tensionHorizontal float64) float64 {
	r.catenaryCableReloaded.SetTensionHorizontal(tensionHorizontal)
	r.strainer.LoadFinish = r.catenaryCableReloaded.TensionAverage(0)

	lengthCatenary := r.catenaryCableReloaded.Length()
	lengthCable, err := r.strainer.LengthFinish()
	if err != nil {
		return 0
	}
	return lengthCatenary - lengthCable
}

func (r *CableReloader) solveReloadedTension() error {
	r.initializeReloadedCatenaryCable()
	r.initializeStrainer()

	hLeft := catenary.ConstantMinimum(r.catenaryCableReloaded.SpacingEndpoints.Magnitude()) *
		r.WeightUnitReloaded.Magnitude()
	hRight := 2 * hLeft

	h, err := numsolve.Bracket(r.lengthDifference, hLeft, hRight, 0, 0.01, false)
	if err != nil {
		return err
	}
	r.lengthDifference(h)
	return nil
}

// CatenaryCableReloaded returns the reloaded catenary cable at the
// solved horizontal tension.
func (r *CableReloader) CatenaryCableReloaded() (CatenaryCable, error) {
	if err := r.ensureUpdated(); err != nil {
		return CatenaryCable{}, err
	}
	return r.catenaryCableReloaded, nil
}

// LengthUnloadedUnstretched returns the cable's unloaded reference
// length, derived via CableUnloader.
func (r *CableReloader) LengthUnloadedUnstretched() (float64, error) {
	if err := r.ensureUpdated(); err != nil {
		return 0, err
	}
	return r.lengthUnloadedUnstretched, nil
}

// TensionHorizontal returns the solved horizontal tension of the
// reloaded catenary.
func (r *CableReloader) TensionHorizontal() (float64, error) {
	if err := r.ensureUpdated(); err != nil {
		return 0, err
	}
	return r.catenaryCableReloaded.TensionHorizontal(), nil
}
