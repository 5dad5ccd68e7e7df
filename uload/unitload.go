// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uload converts weather (ice, wind) and cable geometry into a
// transverse/vertical unit-length load vector.
package uload

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/geom"
)

// Weather is the subset of a weather load case the calculator needs:
// ice density, ice radial thickness and wind pressure, all per unit
// length/area in the caller's consistent unit system.
type Weather struct {
	DensityIce   float64 // weight per unit volume of accreted ice
	ThicknessIce float64 // radial ice thickness
	PressureWind float64 // wind pressure, force per unit area
}

// Calculator derives a unit-length load vector from a cable's diameter
// and bare unit weight.
type Calculator struct {
	DiameterCable   float64 // bare cable diameter
	WeightUnitCable float64 // bare cable weight per unit length
}

// Validate checks the calculator's own configuration (not the weather
// case, which is validated by its owner).
func (c Calculator) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if c.DiameterCable <= 0 {
		valid = false
		appendMsg(messages, "CABLE UNIT LOAD CALCULATOR - Invalid cable diameter")
	}
	if c.WeightUnitCable <= 0 {
		valid = false
		appendMsg(messages, "CABLE UNIT LOAD CALCULATOR - Invalid cable unit weight")
	}
	return valid
}

// UnitCableLoad returns the (x=0, y=transverse, z=vertical) unit-length
// load vector produced by the given weather case.
func (c Calculator) UnitCableLoad(w Weather) (geom.Vector3d, error) {
	if c.DiameterCable <= 0 {
		return geom.Vector3d{}, chk.Err("uload: invalid cable diameter %g", c.DiameterCable)
	}
	if c.WeightUnitCable <= 0 {
		return geom.Vector3d{}, chk.Err("uload: invalid cable unit weight %g", c.WeightUnitCable)
	}
	if w.ThicknessIce < 0 {
		return geom.Vector3d{}, chk.Err("uload: invalid ice thickness %g", w.ThicknessIce)
	}
	if w.DensityIce < 0 {
		return geom.Vector3d{}, chk.Err("uload: invalid ice density %g", w.DensityIce)
	}
	if w.PressureWind < 0 {
		return geom.Vector3d{}, chk.Err("uload: invalid wind pressure %g", w.PressureWind)
	}

	bare := geom.Cylinder{Diameter: c.DiameterCable, Length: 1}
	diameterIced := c.DiameterCable + 2*w.ThicknessIce
	iced := geom.Cylinder{Diameter: diameterIced, Length: 1}

	weightIce := (iced.CrossSectionArea() - bare.CrossSectionArea()) * w.DensityIce

	return geom.Vector3d{
		X: 0,
		Y: diameterIced * w.PressureWind,
		Z: c.WeightUnitCable + weightIce,
	}, nil
}

func appendMsg(messages *[]string, msg string) {
	if messages != nil {
		*messages = append(*messages, msg)
	}
}
