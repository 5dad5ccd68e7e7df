// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elongation

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/geom"
	"github.com/cpmech/sagtension/numsolve"
)

// toleranceStrain is the extension applied past the extreme discrete
// region point when a target load falls outside every known bracket.
const toleranceStrain = 0.0005

// CableModel composes the core and shell component models into a
// whole-cable strain/load relationship.
type CableModel struct {
	Cable              cable.Cable
	LoadStretch        float64
	Temperature        float64
	TemperatureStretch float64

	updatedProperties  bool
	updatedLoadStretch bool
	updatedTemperature bool

	core  Component
	shell Component

	enabledCore  bool
	enabledShell bool
}

func (m *CableModel) SetCable(c cable.Cable) {
	m.Cable = c
	m.updatedProperties = false
	m.updatedLoadStretch = false
	m.updatedTemperature = false
}

func (m *CableModel) SetLoadStretch(load float64) {
	m.LoadStretch = load
	m.updatedLoadStretch = false
	m.updatedTemperature = false
}

func (m *CableModel) SetTemperature(t float64) {
	m.Temperature = t
	m.updatedTemperature = false
}

func (m *CableModel) SetTemperatureStretch(t float64) {
	m.TemperatureStretch = t
	m.updatedLoadStretch = false
	m.updatedTemperature = false
}

func (m *CableModel) ensureUpdated() error {
	if !m.updatedProperties {
		m.updateComponentsEnabled()
		m.updateComponentsProperties()
		m.updatedProperties = true
	}
	if !m.updatedLoadStretch {
		if err := m.updateComponentsLoadStretch(); err != nil {
			return err
		}
		m.updatedLoadStretch = true
	}
	if !m.updatedTemperature {
		m.updateComponentsTemperature(m.Temperature)
		m.updatedTemperature = true
	}
	return nil
}

func (m *CableModel) updateComponentsEnabled() {
	m.enabledCore = m.Cable.Core.IsEnabled(m.Cable.TypePolynomialActive)
	m.enabledShell = m.Cable.Shell.IsEnabled(m.Cable.TypePolynomialActive)
}

func (m *CableModel) updateComponentsProperties() {
	if m.enabledCore {
		m.core.SetCable(m.Cable.Core)
		m.core.SetTemperatureReference(m.Cable.TemperatureComponentsProperties)
		m.core.SetTypePolynomial(m.Cable.TypePolynomialActive)
	}
	if m.enabledShell {
		m.shell.SetCable(m.Cable.Shell)
		m.shell.SetTemperatureReference(m.Cable.TemperatureComponentsProperties)
		m.shell.SetTypePolynomial(m.Cable.TypePolynomialActive)
	}
}

func (m *CableModel) updateComponentsTemperature(t float64) {
	if m.enabledCore {
		m.core.SetTemperature(t)
	}
	if m.enabledShell {
		m.shell.SetTemperature(t)
	}
}

// updateComponentsLoadStretch resolves each component's individual
// stretch load from the cable's common stretch load: the components
// share one strain at the stretch load, and each component's stretch
// load is its own share at that strain.
func (m *CableModel) updateComponentsLoadStretch() error {
	if m.enabledCore {
		m.core.SetLoadStretch(0)
	}
	if m.enabledShell {
		m.shell.SetLoadStretch(0)
	}

	if m.LoadStretch == 0 || m.Cable.TypePolynomialActive == cable.Creep {
		return nil
	}

	m.updateComponentsTemperature(m.TemperatureStretch)

	strain, err := m.strainTotal(m.LoadStretch, false)
	if err != nil {
		return err
	}

	loadCore, err := m.loadCore(strain, false)
	if err != nil {
		return err
	}
	loadShell, err := m.loadShell(strain, false)
	if err != nil {
		return err
	}

	if m.enabledCore {
		m.core.SetLoadStretch(loadCore)
	}
	if m.enabledShell {
		m.shell.SetLoadStretch(loadShell)
	}

	m.updateComponentsTemperature(m.Temperature)
	return nil
}

func (m *CableModel) loadCore(strain float64, isStretched bool) (float64, error) {
	if !m.enabledCore {
		return 0, nil
	}
	return m.core.Load(strain, isStretched)
}

func (m *CableModel) loadShell(strain float64, isStretched bool) (float64, error) {
	if !m.enabledShell {
		return 0, nil
	}
	return m.shell.Load(strain, isStretched)
}

// LoadCore returns the core's contribution at the given whole-cable
// strain.
func (m *CableModel) LoadCore(strain float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	return m.loadCore(strain, isStretched)
}

// LoadShell returns the shell's contribution at the given whole-cable
// strain.
func (m *CableModel) LoadShell(strain float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	return m.loadShell(strain, isStretched)
}

// LoadTotal returns the whole-cable load (core + shell) at the given
// strain.
func (m *CableModel) LoadTotal(strain float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	return m.loadTotal(strain, isStretched)
}

func (m *CableModel) loadTotal(strain float64, isStretched bool) (float64, error) {
	core, err := m.loadCore(strain, isStretched)
	if err != nil {
		return 0, err
	}
	shell, err := m.loadShell(strain, isStretched)
	if err != nil {
		return 0, err
	}
	return core + shell, nil
}

// StrainCore returns the core's strain at the given whole-cable load.
func (m *CableModel) StrainCore(load float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	if !m.enabledCore {
		return 0, nil
	}
	return m.core.Strain(load, isStretched)
}

// StrainShell returns the shell's strain at the given whole-cable load.
func (m *CableModel) StrainShell(load float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	if !m.enabledShell {
		return 0, nil
	}
	return m.shell.Strain(load, isStretched)
}

// StrainTotal inverts the whole-cable load function via bracketed
// iteration across the discrete region points.
func (m *CableModel) StrainTotal(load float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	return m.strainTotal(load, isStretched)
}

func (m *CableModel) strainTotal(load float64, isStretched bool) (float64, error) {
	points, err := m.regionPoints(isStretched)
	if err != nil {
		return 0, err
	}

	f := func(strain float64) float64 {
		v, _ := m.loadTotal(strain, isStretched)
		return v
	}

	left, right := boundingPoints(points, load, f)
	// the tolerance is a strain width; at cable moduli it keeps the load
	// residual far below the 0.01 load precision of the polynomials.
	return numsolve.Bracket(f, left.X, right.X, load, 1e-9, false)
}

// regionPoints unions the core and shell discrete region points, sorts
// them by strain, and recomputes their loads using the summed load
// function (a component's own point no longer sits on the whole-cable
// curve once the loads are summed).
func (m *CableModel) regionPoints(isStretched bool) ([]geom.Point2d, error) {
	var points []geom.Point2d

	if m.enabledCore {
		core, err := m.core.PointsDiscreteRegions(isStretched)
		if err != nil {
			return nil, err
		}
		points = append(points, core...)
	}
	if m.enabledShell {
		shell, err := m.shell.PointsDiscreteRegions(isStretched)
		if err != nil {
			return nil, err
		}
		points = append(points, shell...)
	}
	if len(points) == 0 {
		return nil, chk.Err("elongation: cable model has no enabled components")
	}

	sort.Slice(points, func(i, j int) bool { return points[i].X < points[j].X })

	for i := range points {
		y, err := m.loadTotal(points[i].X, isStretched)
		if err != nil {
			return nil, err
		}
		points[i].Y = y
	}

	return points, nil
}

// boundingPoints locates the bracket [left, right] whose load interval
// contains target, extending past the extreme point by toleranceStrain
// when target falls outside every known region.
func boundingPoints(points []geom.Point2d, target float64, f func(float64) float64) (left, right geom.Point2d) {
	n := len(points)

	if target < points[0].Y {
		right = points[0]
		left.X = right.X - toleranceStrain
		left.Y = f(left.X)
		return left, right
	}

	for i := 1; i < n; i++ {
		if target < points[i].Y {
			return points[i-1], points[i]
		}
	}

	left = points[n-1]
	right.X = left.X + toleranceStrain
	right.Y = f(right.X)
	return left, right
}

// PointsDiscreteRegions returns the unioned, sorted, recomputed region
// boundary points for the given stretch condition.
func (m *CableModel) PointsDiscreteRegions(isStretched bool) ([]geom.Point2d, error) {
	if err := m.ensureUpdated(); err != nil {
		return nil, err
	}
	return m.regionPoints(isStretched)
}

// Validate checks that each enabled component's polynomial limit
// covers the load that component carries when the whole cable is at
// rated strength, and that the core and shell agree on
// unloaded-unstretched strain within tolerance.
func (m *CableModel) Validate(includeWarnings bool, messages *[]string) bool {
	if err := m.ensureUpdated(); err != nil {
		appendMsg(messages, "CABLE ELONGATION MODEL - "+err.Error())
		return false
	}

	valid := true
	if !m.enabledCore && !m.enabledShell {
		appendMsg(messages, "CABLE ELONGATION MODEL - No valid components")
		return false
	}

	strainRated, err := m.strainTotal(m.Cable.StrengthRated, false)
	if err != nil {
		appendMsg(messages, "CABLE ELONGATION MODEL - "+err.Error())
		return false
	}
	if m.enabledCore {
		loadRated, _ := m.loadCore(strainRated, false)
		if !m.core.Validate(loadRated, includeWarnings, messages) {
			valid = false
		}
	}
	if m.enabledShell {
		loadRated, _ := m.loadShell(strainRated, false)
		if !m.shell.Validate(loadRated, includeWarnings, messages) {
			valid = false
		}
	}

	if !includeWarnings {
		return valid
	}

	if m.enabledCore && m.enabledShell {
		strainCore, err := m.core.Strain(0, false)
		if err == nil {
			strainShell, errShell := m.shell.Strain(0, false)
			if errShell == nil {
				diff := strainCore - strainShell
				if diff < 0 {
					diff = -diff
				}
				if diff > 5e-4 {
					appendMsg(messages, "CABLE ELONGATION MODEL - WARNING - unloaded unstretched strain difference between shell and core exceeds tolerance")
				}
			}
		}
	}

	return valid
}
