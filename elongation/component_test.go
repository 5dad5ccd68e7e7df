// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elongation

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/sagtension/cable"
)

func aluminumComponent() cable.Component {
	return cable.Component{
		CoefficientThermalExpansion: 12.8e-6,
		CoefficientsLoadStrain:      []float64{0, 3000, -300, 100},
		LimitPolynomialLoadStrain:   9000,
		ModulusCompressionElastic:   1000,
		ModulusTensionElastic:       6500,
	}
}

func Test_component01(tst *testing.T) {

	chk.PrintTitle("component01: load/strain are mutual inverses")

	m := Component{
		Cable:                aluminumComponent(),
		TypePolynomial:       cable.LoadStrain,
		Temperature:          70,
		TemperatureReference: 70,
	}

	for _, f := range []float64{-50, 0, 1000, 5000, 9000, 12000} {
		strain, err := m.Strain(f, false)
		if err != nil {
			tst.Errorf("Strain(%g) failed: %v", f, err)
			continue
		}
		load, err := m.Load(strain, false)
		if err != nil {
			tst.Errorf("Load(%g) failed: %v", strain, err)
			continue
		}
		chk.Float64(tst, "load roundtrip", 1e-2, load, f)
	}
}

func Test_component02(tst *testing.T) {

	chk.PrintTitle("component02: a disabled component contributes nothing")

	m := Component{
		Cable:                cable.Component{ModulusCompressionElastic: 1000, ModulusTensionElastic: 6500, LimitPolynomialLoadStrain: 5000},
		TypePolynomial:       cable.LoadStrain,
		Temperature:          70,
		TemperatureReference: 70,
	}

	if m.IsEnabled() {
		tst.Errorf("expected a zero-coefficient component to be disabled")
	}

	load, err := m.Load(0.002, false)
	if err != nil {
		tst.Errorf("Load failed: %v", err)
	}
	chk.Float64(tst, "disabled load", 1e-12, load, 0)

	strain, err := m.Strain(500, false)
	if err != nil {
		tst.Errorf("Strain failed: %v", err)
	}
	chk.Float64(tst, "disabled strain", 1e-12, strain, 0)
}

func Test_component03(tst *testing.T) {

	chk.PrintTitle("component03: stretch point lies between the unloaded and polynomial-limit points by strain")

	m := Component{
		Cable:                aluminumComponent(),
		TypePolynomial:       cable.LoadStrain,
		Temperature:          70,
		TemperatureReference: 70,
		LoadStretch:          3000,
	}

	points, err := m.PointsDiscreteRegions(false)
	if err != nil {
		tst.Errorf("PointsDiscreteRegions failed: %v", err)
		return
	}
	// the slice holds the unloaded, polynomial-limit and stretch points,
	// in that order.
	if len(points) != 3 || !(points[0].X < points[2].X && points[2].X < points[1].X) {
		tst.Errorf("stretch point not between unloaded and limit points by strain: %v", points)
	}
}

// Test_component04 cross-checks SlopeLoad's analytic tangent modulus
// against a centred finite difference of Load, mirroring the
// numeric-vs-analytic tangent check in msolid's material-model tests.
func Test_component04(tst *testing.T) {

	chk.PrintTitle("component04: analytic slope matches numeric derivative")

	m := Component{
		Cable:                aluminumComponent(),
		TypePolynomial:       cable.LoadStrain,
		Temperature:          70,
		TemperatureReference: 70,
	}

	for _, strain := range []float64{-0.001, 0.001, 0.02, 0.05} {
		dana, err := m.SlopeLoad(strain, false)
		if err != nil {
			tst.Errorf("SlopeLoad(%g) failed: %v", strain, err)
			continue
		}
		dnum, err := num.DerivCentral(func(x float64, args ...interface{}) float64 {
			load, _ := m.Load(x, false)
			return load
		}, strain, 1e-6)
		if err != nil {
			tst.Errorf("DerivCentral(%g) failed: %v", strain, err)
			continue
		}
		chk.Float64(tst, "SlopeLoad vs numeric", 1e-1, dana, dnum)
	}
}
