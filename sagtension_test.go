// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sagtension

import (
	"math"
	"testing"

	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/catenary"
	"github.com/cpmech/sagtension/geom"
	"github.com/cpmech/sagtension/strain"
)

// drakeCable builds the bimetallic ACSR "Drake" conductor fixture:
// two 5-degree creep/load-strain polynomial pairs (pre-multiplied by
// the physical area, low-to-high degree), moduli and limits as
// supplied by the cable manufacturer.
func drakeCable() cable.Cable {
	return cable.Cable{
		AreaPhysical:                     0.7264,
		AreaElectrical:                   795000,
		DiameterNominal:                  1.108,
		StrengthRated:                    31500,
		TemperatureComponentsProperties:  70,
		TypePolynomialActive:             cable.LoadStrain,
		WeightUnit:                       1.094,
		Core: cable.Component{
			CoefficientThermalExpansion: 0.0000064,
			CoefficientsCreep:           []float64{34.21344, 26303.88832, 8863.09696, -52585.5488, 33659.9232},
			CoefficientsLoadStrain:      []float64{-50.33952, 28060.1056, 2904.21984, -33205.9232, 20260.7488},
			LimitPolynomialCreep:        16275.7184,
			LimitPolynomialLoadStrain:   13913.4656,
			ModulusCompressionElastic:   0,
			ModulusTensionElastic:       2687680,
		},
		Shell: cable.Component{
			CoefficientThermalExpansion: 0.0000128,
			CoefficientsCreep:           []float64{-395.74272, 15564.42752, -13686.97408, 3991.568, 0},
			CoefficientsLoadStrain:      []float64{-881.1232, 32185.40384, -10172.79616, -27325.7152, 22283.0464},
			LimitPolynomialCreep:        5473.424,
			LimitPolynomialLoadStrain:   14711.0528,
			ModulusCompressionElastic:   0,
			ModulusTensionElastic:       4648960,
		},
	}
}

func drakeCatenaryCable() CatenaryCable {
	return CatenaryCable{
		Catenary3d: catenary.Catenary3d{
			SpacingEndpoints: geom.Vector3d{X: 1200, Y: 0, Z: 0},
			WeightUnit:       geom.Vector3d{X: 0, Y: 0, Z: 1.094},
		},
		Cable: drakeCable(),
		State: strain.State{IsStretched: false, Temperature: 60},
	}
}

func newDrakeReloader(loadStretch float64, weightReloaded geom.Vector3d, temperatureReloaded float64) CableReloader {
	cc := drakeCatenaryCable()
	cc.SetTensionHorizontal(6000)

	var r CableReloader
	r.SetCatenaryCable(cc)
	r.SetStateUnloaded(strain.State{IsStretched: false, Temperature: 60})
	r.LoadStretch = loadStretch
	r.TemperatureStretch = 0
	r.SetStateReloaded(strain.State{IsStretched: loadStretch > 0, Temperature: temperatureReloaded})
	r.SetWeightUnitReloaded(weightReloaded)
	return r
}

func closeEnough(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: got %.4f, want %.4f (+/- %.2f)", name, got, want, tolerance)
	}
}

// Test_reloader01 reloads the unstretched Drake catenary (H=6000,
// T=60) to colder, hotter and heavily-iced conditions.
func Test_reloader01(t *testing.T) {
	cases := []struct {
		name     string
		weight   geom.Vector3d
		temp     float64
		expected float64
	}{
		{"cold, same weight", geom.Vector3d{X: 0, Y: 0, Z: 1.094}, 0, 6787.6},
		{"hot, same weight", geom.Vector3d{X: 0, Y: 0, Z: 1.094}, 212, 4702.2},
		{"cold, heavy ice", geom.Vector3d{X: 0, Y: 2.072, Z: 3.729}, 0, 17125.9},
	}
	for _, c := range cases {
		r := newDrakeReloader(0, c.weight, c.temp)
		h, err := r.TensionHorizontal()
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		closeEnough(t, c.name, h, c.expected, c.expected*0.03)
	}
}

// Test_reloader02 repeats the same three reloads with a historical
// stretch load applied.
func Test_reloader02(t *testing.T) {
	cases := []struct {
		name     string
		weight   geom.Vector3d
		temp     float64
		expected float64
	}{
		{"cold, same weight, stretched", geom.Vector3d{X: 0, Y: 0, Z: 1.094}, 0, 6320.1},
		{"hot, same weight, stretched", geom.Vector3d{X: 0, Y: 0, Z: 1.094}, 212, 4537.2},
		{"cold, heavy ice, stretched", geom.Vector3d{X: 0, Y: 2.072, Z: 3.729}, 0, 17126},
	}
	for _, c := range cases {
		r := newDrakeReloader(12179, c.weight, c.temp)
		h, err := r.TensionHorizontal()
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		closeEnough(t, c.name, h, c.expected, c.expected*0.03)
	}
}

func Test_reloader03_validate(t *testing.T) {
	r := newDrakeReloader(0, geom.Vector3d{X: 0, Y: 0, Z: 1.094}, 60)
	cc, err := r.CatenaryCableReloaded()
	if err != nil {
		t.Fatal(err)
	}
	if !cc.Validate(false, nil) {
		t.Error("expected reloaded catenary cable to validate")
	}
}

func Test_unloader01(t *testing.T) {
	cc := drakeCatenaryCable()
	cc.SetTensionHorizontal(6000)

	var u CableUnloader
	u.SetCatenaryCable(cc)
	u.SetStateUnloaded(strain.State{IsStretched: false, Temperature: 60})

	lengthUnloaded, err := u.LengthUnloaded()
	if err != nil {
		t.Fatal(err)
	}
	if lengthUnloaded <= 0 || lengthUnloaded >= cc.Length() {
		t.Errorf("expected 0 < unloaded length (%.4f) < loaded length (%.4f)", lengthUnloaded, cc.Length())
	}
}
