// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elongation

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/cable"
)

func testCable() cable.Cable {
	return cable.Cable{
		DiameterNominal: 1,
		StrengthRated:   15000,
		Core: cable.Component{
			CoefficientThermalExpansion: 6.4e-6,
			CoefficientsLoadStrain:      []float64{0, 5000, -200, 50},
			LimitPolynomialLoadStrain:   10000,
			ModulusCompressionElastic:   2000,
			ModulusTensionElastic:       9000,
		},
		Shell: cable.Component{
			CoefficientThermalExpansion: 12.8e-6,
			CoefficientsLoadStrain:      []float64{0, 3000, -300, 100},
			LimitPolynomialLoadStrain:   9000,
			ModulusCompressionElastic:   1000,
			ModulusTensionElastic:       6500,
		},
		TemperatureComponentsProperties: 70,
		TypePolynomialActive:            cable.LoadStrain,
		WeightUnit:                      1.5,
	}
}

func Test_wholecable01(tst *testing.T) {

	chk.PrintTitle("wholecable01: strain/load are mutual inverses")

	var m CableModel
	m.SetCable(testCable())
	m.SetTemperature(70)
	m.SetTemperatureStretch(70)

	for _, f := range []float64{0, 1000, 5000, 10000} {
		strain, err := m.StrainTotal(f, false)
		if err != nil {
			tst.Errorf("StrainTotal(%g) failed: %v", f, err)
			continue
		}
		load, err := m.LoadTotal(strain, false)
		if err != nil {
			tst.Errorf("LoadTotal(%g) failed: %v", strain, err)
			continue
		}
		chk.Float64(tst, "load roundtrip", 1e-1, load, f)
	}
}

func Test_wholecable02(tst *testing.T) {

	chk.PrintTitle("wholecable02: stretch splits load between components")

	var m CableModel
	m.SetCable(testCable())
	m.SetTemperature(70)
	m.SetTemperatureStretch(70)
	m.SetLoadStretch(8000)

	if valid := m.Validate(false, nil); !valid {
		tst.Errorf("expected a well-formed cable model to validate")
	}

	loadCore, err := m.core.PointStretch()
	if err != nil {
		tst.Errorf("PointStretch (core) failed: %v", err)
	}
	loadShell, err := m.shell.PointStretch()
	if err != nil {
		tst.Errorf("PointStretch (shell) failed: %v", err)
	}
	chk.Float64(tst, "stretch loads sum to cable stretch load", 1e-1, loadCore.Y+loadShell.Y, 8000)
}
