// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cable holds the configuration-only data model shared by every
// sag-tension solver: cable components, the composite cable, weather
// cases, constraints and line-cable composition.
package cable

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/sagtension/poly"
)

// PolynomialType selects which of a component's two polynomials (creep
// or load-strain) is active for a given evaluation.
type PolynomialType int

const (
	Creep PolynomialType = iota
	LoadStrain
)

// Component is a single leaf (core or shell) of a composite cable: its
// thermal coefficient, its two strain-load polynomials (ordered
// low-to-high degree, in percent-strain units) and their validity
// limits, and its compression/tension elastic-area moduli.
type Component struct {
	CoefficientThermalExpansion float64

	CoefficientsCreep      []float64
	CoefficientsLoadStrain []float64

	LimitPolynomialCreep      float64
	LimitPolynomialLoadStrain float64

	ModulusCompressionElastic float64
	ModulusTensionElastic     float64
}

// PolynomialCreep returns the creep polynomial built from the
// component's coefficients.
func (c Component) PolynomialCreep() *poly.Polynomial { return poly.New(c.CoefficientsCreep) }

// PolynomialLoadStrain returns the load-strain polynomial built from
// the component's coefficients.
func (c Component) PolynomialLoadStrain() *poly.Polynomial { return poly.New(c.CoefficientsLoadStrain) }

// Polynomial returns the polynomial selected by t.
func (c Component) Polynomial(t PolynomialType) *poly.Polynomial {
	if t == Creep {
		return c.PolynomialCreep()
	}
	return c.PolynomialLoadStrain()
}

// LimitPolynomial returns the validity limit (a load) of the
// polynomial selected by t.
func (c Component) LimitPolynomial(t PolynomialType) float64 {
	if t == Creep {
		return c.LimitPolynomialCreep
	}
	return c.LimitPolynomialLoadStrain
}

// IsEnabled reports whether the component contributes load/strain at
// all: a component is enabled iff the active polynomial has at least
// one non-zero coefficient. A disabled component contributes zero
// load and zero strain regardless of inputs.
func (c Component) IsEnabled(t PolynomialType) bool {
	return c.Polynomial(t).IsEnabled()
}

// Validate checks the component's own fields: the tension elastic
// area modulus must be positive and the compression elastic area
// modulus must not be negative. The polynomials and their limits are
// not checked here.
func (c Component) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if c.ModulusTensionElastic <= 0 {
		valid = false
		appendMsg(messages, "CABLE COMPONENT - Invalid tension elastic area modulus")
	}
	if c.ModulusCompressionElastic < 0 {
		valid = false
		appendMsg(messages, "CABLE COMPONENT - Invalid compression elastic area modulus")
	}
	return valid
}

// Cable is the composite conductor: physical/electrical cross-section,
// the core and shell components (either may be disabled), nominal
// diameter, rated strength, the reference temperature at which
// component properties were measured, the active polynomial selector,
// and bare unit weight.
type Cable struct {
	AreaPhysical   float64
	AreaElectrical float64

	Core  Component
	Shell Component

	DiameterNominal float64
	StrengthRated   float64

	TemperatureComponentsProperties float64
	TypePolynomialActive            PolynomialType

	WeightUnit float64
}

// Validate checks cable-level fields. Exactly the two enumerated
// polynomial types are accepted.
func (c Cable) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if c.TypePolynomialActive != Creep && c.TypePolynomialActive != LoadStrain {
		valid = false
		appendMsg(messages, "CABLE - Invalid polynomial type")
	}
	if c.DiameterNominal <= 0 {
		valid = false
		appendMsg(messages, "CABLE - Invalid diameter")
	}
	if c.StrengthRated <= 0 {
		valid = false
		appendMsg(messages, "CABLE - Invalid rated strength")
	}
	if c.WeightUnit <= 0 {
		valid = false
		appendMsg(messages, "CABLE - Invalid unit weight")
	}
	if !c.Core.Validate(includeWarnings, messages) && !c.Shell.Validate(includeWarnings, messages) {
		valid = false
		appendMsg(messages, "CABLE - Invalid core and shell components")
	}
	return valid
}

// Prms exposes the cable's scalar configuration for introspection,
// mirroring gosl/fun's parameter-list convention.
func (c Cable) Prms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "areaphysical", V: c.AreaPhysical},
		&fun.Prm{N: "areaelectrical", V: c.AreaElectrical},
		&fun.Prm{N: "diameternominal", V: c.DiameterNominal},
		&fun.Prm{N: "strengthrated", V: c.StrengthRated},
		&fun.Prm{N: "weightunit", V: c.WeightUnit},
	}
}

func appendMsg(messages *[]string, msg string) {
	if messages != nil {
		*messages = append(*messages, msg)
	}
}
