// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sagtension orchestrates the lower-level catenary, elongation
// and strain packages into the end-user operations of fitting,
// reloading and unloading a cable strung on a catenary.
package sagtension

import (
	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/catenary"
	"github.com/cpmech/sagtension/strain"
)

// CatenaryCable combines a fitted Catenary3d with the physical cable it
// carries and the thermal/stretch state it is currently evaluated
// under -- a sag-tension solution in one value.
type CatenaryCable struct {
	catenary.Catenary3d
	Cable cable.Cable
	State strain.State
}

// Validate checks the cable, the catenary, and that the catenary's
// unit weight is not lighter than the cable's own bare weight --
// violating that would mean the cable is carrying less than its own
// weight.
func (c CatenaryCable) Validate(includeWarnings bool, messages *[]string) bool {
	valid := true
	if !c.Cable.Validate(includeWarnings, messages) {
		valid = false
	}
	if !c.Catenary3d.Validate(includeWarnings, messages) {
		valid = false
	}
	if c.WeightUnit.Magnitude() < c.Cable.WeightUnit {
		valid = false
		appendMsg(messages, "CATENARY CABLE - Catenary weight is less than cable unit weight")
	}
	return valid
}

func appendMsg(messages *[]string, msg string) {
	if messages != nil {
		*messages = append(*messages, msg)
	}
}
