// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Cylinder is the bare geometric primitive behind ice-loading
// calculations: a right circular cylinder of a given diameter and unit
// length, used to derive bare and iced cross-sectional areas.
type Cylinder struct {
	Diameter float64
	Length   float64
}

// CrossSectionArea returns (π/4)·d².
func (c Cylinder) CrossSectionArea() float64 {
	return (math.Pi / 4) * c.Diameter * c.Diameter
}

// Volume returns (π/4)·d²·length.
func (c Cylinder) Volume() float64 {
	return c.CrossSectionArea() * c.Length
}
