// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sagtension

import (
	"testing"

	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/geom"
)

// drakeLineCable builds a ruling-span line cable around the Drake
// conductor, constrained to H=6000 under the initial (as-strung)
// condition. The creep stretch weathercase is the everyday condition
// the cable creeps under (bare, 60F); the load stretch weathercase is
// the single heaviest loading event the cable ever sees (0.5in ice,
// 8psf wind, 0F).
func drakeLineCable() cable.LineCable {
	creepCase := &cable.Weather{TemperatureCable: 60}
	loadCase := &cable.Weather{ThicknessIce: 0.5, DensityIce: 57.0 / 1728.0, PressureWind: 8, TemperatureCable: 0}

	return cable.LineCable{
		CableBase: drakeCable(),
		Constraint: cable.Constraint{
			CaseWeather: &cable.Weather{TemperatureCable: 60},
			Condition:   cable.ConditionInitial,
			Limit:       6000,
			TypeLimit:   cable.LimitHorizontalTension,
		},
		WeathercaseStretchCreep: creepCase,
		WeathercaseStretchLoad:  loadCase,
		SpacingRulingSpan:       geom.Vector3d{X: 1200, Y: 0, Z: 0},
	}
}

func Test_loaderbase01_validate(t *testing.T) {
	var l LineCableLoaderBase
	l.SetLineCable(drakeLineCable())
	if !l.Validate(true, nil) {
		t.Fatal("expected line cable loader to validate")
	}
}

// Test_loaderbase02 checks that the load-stretch state the loader
// solves for is substantially larger than the creep-stretch state --
// the single heavy-loading event stretches the cable far more than
// everyday creep does.
func Test_loaderbase02(t *testing.T) {
	var l LineCableLoaderBase
	l.SetLineCable(drakeLineCable())

	creep, err := l.StretchStateCreep()
	if err != nil {
		t.Fatal(err)
	}
	load, err := l.StretchStateLoad()
	if err != nil {
		t.Fatal(err)
	}

	if creep.Load <= 0 {
		t.Errorf("expected positive creep stretch load, got %.1f", creep.Load)
	}
	if load.Load <= creep.Load {
		t.Errorf("expected load stretch (%.1f) to exceed creep stretch (%.1f)", load.Load, creep.Load)
	}
	if creep.TypePolynomial != cable.Creep {
		t.Error("expected creep stretch state to use the creep polynomial")
	}
	if load.TypePolynomial != cable.LoadStrain {
		t.Error("expected load stretch state to use the load-strain polynomial")
	}
}

// Test_loaderbase03 solves a line cable constrained under the load
// condition and checks the stretch fixpoint: reloading the constraint
// catenary into the load stretch case, with the solved stretch applied
// to the reference, reproduces the stretch load itself.
func Test_loaderbase03(t *testing.T) {
	lc := drakeLineCable()
	lc.Constraint.Condition = cable.ConditionLoad

	var l LineCableLoaderBase
	l.SetLineCable(lc)

	load, err := l.StretchStateLoad()
	if err != nil {
		t.Fatal(err)
	}
	if load.Load <= 0 {
		t.Fatalf("expected positive load stretch, got %.1f", load.Load)
	}

	tension, err := l.reloadedAverageTension(load.Load, lc.WeathercaseStretchLoad.TemperatureCable,
		cable.LoadStrain, lc.WeathercaseStretchLoad)
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "load stretch fixpoint", tension, load.Load, 0.1)
}

func Test_linecableunloader01(t *testing.T) {
	var l LineCableUnloader
	l.SetLineCable(drakeLineCable())
	l.SetConditionUnloaded(cable.ConditionInitial)
	l.SetSpacingAttachments(geom.Vector3d{X: 1195, Y: 0, Z: 10})
	l.SetTemperatureUnloaded(32)

	if !l.Validate(false, nil) {
		t.Fatal("expected line cable unloader to validate")
	}

	length, err := l.LengthUnloaded()
	if err != nil {
		t.Fatal(err)
	}
	if length <= 0 || length >= 1200 {
		t.Errorf("expected a plausible unloaded length near the span, got %.4f", length)
	}
}

// Test_linecableunloader03 unloads the same line cable to the initial
// and creep conditions: the crept cable must be permanently longer.
func Test_linecableunloader03_stretchLengthens(t *testing.T) {
	lengthAt := func(condition cable.ConditionType) float64 {
		var l LineCableUnloader
		l.SetLineCable(drakeLineCable())
		l.SetConditionUnloaded(condition)
		l.SetSpacingAttachments(geom.Vector3d{X: 1200, Y: 0, Z: 0})
		l.SetTemperatureUnloaded(60)

		length, err := l.LengthUnloaded()
		if err != nil {
			t.Fatal(err)
		}
		return length
	}

	lengthInitial := lengthAt(cable.ConditionInitial)
	lengthCreep := lengthAt(cable.ConditionCreep)
	if lengthCreep <= lengthInitial {
		t.Errorf("expected creep-condition unloaded length (%.6f) to exceed initial (%.6f)",
			lengthCreep, lengthInitial)
	}
}

func Test_linecableunloader02_invalidSpacing(t *testing.T) {
	var l LineCableUnloader
	l.SetLineCable(drakeLineCable())
	l.SetConditionUnloaded(cable.ConditionInitial)
	l.SetSpacingAttachments(geom.Vector3d{X: 0, Y: 0, Z: 0})
	l.SetTemperatureUnloaded(32)

	if l.Validate(false, nil) {
		t.Error("expected validation to fail for zero horizontal attachment spacing")
	}
}
