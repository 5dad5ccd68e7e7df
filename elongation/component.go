// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elongation implements the strain/load curve for a single
// cable component and for the composite whole-cable model.
package elongation

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/geom"
	"github.com/cpmech/sagtension/poly"
)

// Component models one cable component's strain(ε)<->load(F) curve at
// a given temperature and stretch state.
type Component struct {
	Cable                cable.Component
	LoadStretch          float64
	Temperature          float64
	TemperatureReference float64
	TypePolynomial       cable.PolynomialType

	updated       bool
	err           error
	polynomial    *poly.Polynomial
	strainThermal float64

	pointUnloadedUnstretched geom.Point2d
	pointLimitPolynomial     geom.Point2d
	pointStretch             geom.Point2d
	pointUnloadedStretched   geom.Point2d
}

// SetCable sets the component's physical properties.
func (m *Component) SetCable(c cable.Component) { m.Cable = c; m.updated = false }

// SetLoadStretch sets the historically induced stretch load.
func (m *Component) SetLoadStretch(load float64) { m.LoadStretch = load; m.updated = false }

// SetTemperature sets the component's current temperature.
func (m *Component) SetTemperature(t float64) { m.Temperature = t; m.updated = false }

// SetTemperatureReference sets the temperature at which the
// polynomial coefficients were measured.
func (m *Component) SetTemperatureReference(t float64) { m.TemperatureReference = t; m.updated = false }

// SetTypePolynomial selects the active polynomial.
func (m *Component) SetTypePolynomial(t cable.PolynomialType) { m.TypePolynomial = t; m.updated = false }

// IsEnabled reports whether the component has any active polynomial
// coefficients; a disabled component contributes zero load and
// strain regardless of inputs.
func (m *Component) IsEnabled() bool { return m.Cable.IsEnabled(m.TypePolynomial) }

func (m *Component) convertToPercentStrainPolynomial(strain float64) float64 {
	return (strain - m.strainThermal) * 100
}

func (m *Component) convertToStrain(percentStrainPolynomial float64) float64 {
	return percentStrainPolynomial/100 + m.strainThermal
}

func (m *Component) strainPolynomial(load float64) (float64, error) {
	percentStrain, err := m.polynomial.X(load, 2, 0.1)
	if err != nil {
		return 0, chk.Err("elongation: component polynomial inverse failed: %v", err)
	}
	return m.convertToStrain(percentStrain), nil
}

func (m *Component) loadPolynomial(strain float64) float64 {
	return m.polynomial.Y(m.convertToPercentStrainPolynomial(strain))
}

// ensureUpdated recomputes the region-boundary points (cached) in
// dependency order: polynomial, thermal strain, unloaded-unstretched
// point, polynomial limit point, stretch point, unloaded-stretched
// point.
func (m *Component) ensureUpdated() error {
	if m.updated {
		return m.err
	}
	m.err = m.update()
	m.updated = true
	return m.err
}

func (m *Component) update() error {
	m.polynomial = m.Cable.Polynomial(m.TypePolynomial)
	m.strainThermal = m.Cable.CoefficientThermalExpansion * (m.Temperature - m.TemperatureReference)

	// a disabled component contributes zero load and zero strain
	// regardless of inputs; its region points are meaningless.
	if !m.IsEnabled() {
		m.pointUnloadedUnstretched = geom.Point2d{}
		m.pointLimitPolynomial = geom.Point2d{}
		m.pointStretch = geom.Point2d{}
		m.pointUnloadedStretched = geom.Point2d{}
		return nil
	}

	m.pointUnloadedUnstretched.Y = 0
	strain, err := m.strainPolynomial(0)
	if err != nil {
		return err
	}
	m.pointUnloadedUnstretched.X = strain

	m.pointLimitPolynomial.Y = m.Cable.LimitPolynomial(m.TypePolynomial)
	strain, err = m.strainPolynomial(m.pointLimitPolynomial.Y)
	if err != nil {
		return err
	}
	m.pointLimitPolynomial.X = strain

	m.pointStretch.Y = m.LoadStretch
	m.pointStretch.X = m.strainUnstretched(m.LoadStretch)

	m.pointUnloadedStretched.Y = 0
	m.pointUnloadedStretched.X = m.pointStretch.X - m.pointStretch.Y/m.Cable.ModulusTensionElastic

	return nil
}

// PointUnloaded returns the (ε, 0) point where the cable carries no
// load, under the given stretch condition.
func (m *Component) PointUnloaded(isStretched bool) (geom.Point2d, error) {
	if err := m.ensureUpdated(); err != nil {
		return geom.Point2d{}, err
	}
	if isStretched {
		return m.pointUnloadedStretched, nil
	}
	return m.pointUnloadedUnstretched, nil
}

// PointLimitPolynomial returns the (ε, F) point at the polynomial's
// validity limit.
func (m *Component) PointLimitPolynomial() (geom.Point2d, error) {
	if err := m.ensureUpdated(); err != nil {
		return geom.Point2d{}, err
	}
	return m.pointLimitPolynomial, nil
}

// PointStretch returns the (ε, F) pair at which the component was
// historically stretched.
func (m *Component) PointStretch() (geom.Point2d, error) {
	if err := m.ensureUpdated(); err != nil {
		return geom.Point2d{}, err
	}
	return m.pointStretch, nil
}

// PointsDiscreteRegions returns the three boundary points (unloaded,
// polynomial limit, stretch) used by the whole-cable solver to
// bracket its iteration.
func (m *Component) PointsDiscreteRegions(isStretched bool) ([]geom.Point2d, error) {
	unloaded, err := m.PointUnloaded(isStretched)
	if err != nil {
		return nil, err
	}
	limit, err := m.PointLimitPolynomial()
	if err != nil {
		return nil, err
	}
	stretch, err := m.PointStretch()
	if err != nil {
		return nil, err
	}
	return []geom.Point2d{unloaded, limit, stretch}, nil
}

// Load returns the load at the given strain, dispatching by region.
func (m *Component) Load(strain float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	if !m.IsEnabled() {
		return 0, nil
	}
	if isStretched {
		return m.loadStretched(strain), nil
	}
	return m.loadUnstretched(strain), nil
}

func (m *Component) loadCompression(strain float64, isStretched bool) float64 {
	strainUnloaded := m.pointUnloadedUnstretched.X
	if isStretched {
		strainUnloaded = m.pointUnloadedStretched.X
	}
	return (strain - strainUnloaded) * m.Cable.ModulusCompressionElastic
}

func (m *Component) loadStretched(strain float64) float64 {
	switch {
	case strain < m.pointUnloadedStretched.X:
		return m.loadCompression(strain, true)
	case strain <= m.pointStretch.X:
		return m.pointStretch.Y - (m.pointStretch.X-strain)*m.Cable.ModulusTensionElastic
	default:
		return m.loadUnstretched(strain)
	}
}

func (m *Component) loadUnstretched(strain float64) float64 {
	switch {
	case strain < m.pointUnloadedUnstretched.X:
		return m.loadCompression(strain, false)
	case strain == m.pointUnloadedUnstretched.X:
		return 0
	case strain <= m.pointLimitPolynomial.X:
		return m.loadPolynomial(strain)
	default:
		return m.pointLimitPolynomial.Y + (strain-m.pointLimitPolynomial.X)*m.Cable.ModulusTensionElastic
	}
}

// Strain returns the strain at the given load, dispatching by region.
func (m *Component) Strain(load float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	if !m.IsEnabled() {
		return 0, nil
	}
	if isStretched {
		return m.strainStretched(load), nil
	}
	return m.strainUnstretched(load), nil
}

func (m *Component) strainCompression(load float64, isStretched bool) float64 {
	strainUnloaded := m.pointUnloadedUnstretched.X
	if isStretched {
		strainUnloaded = m.pointUnloadedStretched.X
	}
	return strainUnloaded + load/m.Cable.ModulusCompressionElastic
}

func (m *Component) strainStretched(load float64) float64 {
	switch {
	case load < 0:
		return m.strainCompression(load, true)
	case load <= m.pointStretch.Y:
		return m.pointStretch.X - (m.pointStretch.Y-load)/m.Cable.ModulusTensionElastic
	default:
		return m.strainUnstretched(load)
	}
}

// strainUnstretched is also used internally (before the stretch point
// is known) to locate the stretch point itself from its load.
func (m *Component) strainUnstretched(load float64) float64 {
	switch {
	case load < 0:
		return m.strainCompression(load, false)
	case load == 0:
		return m.pointUnloadedUnstretched.X
	case load <= m.pointLimitPolynomial.Y:
		strain, err := m.strainPolynomial(load)
		if err != nil {
			return m.pointLimitPolynomial.X
		}
		return strain
	default:
		return m.pointLimitPolynomial.X + (load-m.pointLimitPolynomial.Y)/m.Cable.ModulusTensionElastic
	}
}

// SlopeLoad returns the analytic tangent modulus dF/dε at the given
// strain, dispatching by region the same way Load does. In the
// polynomial region this applies the chain rule to the polynomial's
// own derivative (the polynomial operates on percent strain, scaled by
// 100 from the native strain domain).
func (m *Component) SlopeLoad(strain float64, isStretched bool) (float64, error) {
	if err := m.ensureUpdated(); err != nil {
		return 0, err
	}
	if !m.IsEnabled() {
		return 0, nil
	}
	strainUnloaded := m.pointUnloadedUnstretched.X
	if isStretched {
		strainUnloaded = m.pointUnloadedStretched.X
	}
	if strain < strainUnloaded {
		return m.Cable.ModulusCompressionElastic, nil
	}
	if isStretched && strain <= m.pointStretch.X {
		return m.Cable.ModulusTensionElastic, nil
	}
	if strain <= m.pointLimitPolynomial.X {
		return m.polynomial.Slope(m.convertToPercentStrainPolynomial(strain)) * 100, nil
	}
	return m.Cable.ModulusTensionElastic, nil
}

// Validate checks that the component's polynomial limit is at least
// loadRated, the load the component carries when the whole cable is at
// rated strength.
func (m *Component) Validate(loadRated float64, includeWarnings bool, messages *[]string) bool {
	if err := m.ensureUpdated(); err != nil {
		appendMsg(messages, "CABLE COMPONENT ELONGATION MODEL - "+err.Error())
		return false
	}
	if !m.IsEnabled() {
		return true
	}
	valid := true
	if m.pointLimitPolynomial.Y < loadRated {
		valid = false
		appendMsg(messages, "CABLE COMPONENT ELONGATION MODEL - Polynomial limit does not cover rated strength")
	}
	return valid
}

func appendMsg(messages *[]string, msg string) {
	if messages != nil {
		*messages = append(*messages, msg)
	}
}
