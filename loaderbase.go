// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sagtension

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sagtension/cable"
	"github.com/cpmech/sagtension/catenary"
	"github.com/cpmech/sagtension/numsolve"
	"github.com/cpmech/sagtension/strain"
)

// temperatureUnloadedReference is the baseline temperature at which a
// cable's unloaded reference length is evaluated during a reload, a
// fixed convention independent of any particular weather case.
const temperatureUnloadedReference = 32

// LineCableLoaderBase solves the line cable's ruling-span constraint
// catenary and, when the constraint was measured after the cable had
// already crept or been bluntly overloaded, resolves the creep and
// load stretch states that are self-consistent with that constraint.
type LineCableLoaderBase struct {
	LineCable cable.LineCable

	updatedCatenaryConstraint bool
	updatedStretch            bool
	err                       error

	catenaryConstraint    catenary.Catenary3d
	stretchLoadConstraint float64

	stateStretchCreep cable.StretchState
	stateStretchLoad  cable.StretchState
}

// SetLineCable sets the line cable to solve.
func (l *LineCableLoaderBase) SetLineCable(lc cable.LineCable) {
	l.LineCable = lc
	l.updatedCatenaryConstraint = false
	l.updatedStretch = false
}

// CatenaryConstraint returns the ruling-span catenary fitted to the
// line cable's constraint.
func (l *LineCableLoaderBase) CatenaryConstraint() (catenary.Catenary3d, error) {
	if err := l.ensureUpdated(); err != nil {
		return catenary.Catenary3d{}, err
	}
	return l.catenaryConstraint, nil
}

// StretchStateCreep returns the creep-condition stretch state that is
// self-consistent with the line cable's constraint.
func (l *LineCableLoaderBase) StretchStateCreep() (cable.StretchState, error) {
	if err := l.ensureUpdated(); err != nil {
		return cable.StretchState{}, err
	}
	return l.stateStretchCreep, nil
}

// StretchStateLoad returns the load-condition stretch state that is
// self-consistent with the line cable's constraint.
func (l *LineCableLoaderBase) StretchStateLoad() (cable.StretchState, error) {
	if err := l.ensureUpdated(); err != nil {
		return cable.StretchState{}, err
	}
	return l.stateStretchLoad, nil
}

func (l *LineCableLoaderBase) ensureUpdated() error {
	if l.updatedCatenaryConstraint && l.updatedStretch {
		return l.err
	}
	if !l.updatedCatenaryConstraint {
		c, err := l.LineCable.CatenaryRulingSpan()
		if err != nil {
			l.err = err
			return err
		}
		l.catenaryConstraint = c
		l.updatedCatenaryConstraint = true
	}
	if !l.updatedStretch {
		if err := l.updateStretch(); err != nil {
			l.err = err
			return err
		}
		l.updatedStretch = true
	}
	l.err = nil
	return nil
}

// catenaryCableConstraint builds the CatenaryCable representing the
// line cable as strung under its constraint weather case, evaluated
// with the always-load-strain reference polynomial.
func (l *LineCableLoaderBase) catenaryCableConstraint() CatenaryCable {
	c := l.LineCable.CableBase
	c.TypePolynomialActive = cable.LoadStrain
	return CatenaryCable{
		Catenary3d: l.catenaryConstraint,
		Cable:      c,
		State:      strain.State{IsStretched: false, Temperature: l.LineCable.Constraint.CaseWeather.TemperatureCable},
	}
}

// reloadedAverageTension reloads the constraint catenary cable -- its
// reference side stretched by the given stretch load and temperature --
// to weathercase, evaluating the reloaded state unstretched with
// typePolynomial, and returns the resulting average tension.
func (l *LineCableLoaderBase) reloadedAverageTension(stretchLoad, temperatureStretch float64, typePolynomial cable.PolynomialType, weathercase *cable.Weather) (float64, error) {
	weightReloaded, err := l.LineCable.UnitLoad(*weathercase)
	if err != nil {
		return 0, err
	}

	cableReloaded := l.LineCable.CableBase
	cableReloaded.TypePolynomialActive = typePolynomial

	reference := l.catenaryCableConstraint()
	reference.State.IsStretched = stretchLoad > 0

	var reloader CableReloader
	reloader.SetCatenaryCable(reference)
	reloader.CableReloaded = &cableReloaded
	reloader.LoadStretch = stretchLoad
	reloader.TemperatureStretch = temperatureStretch
	reloader.SetStateUnloaded(strain.State{IsStretched: false, Temperature: temperatureUnloadedReference})
	reloader.SetStateReloaded(strain.State{IsStretched: false, Temperature: weathercase.TemperatureCable})
	reloader.SetWeightUnitReloaded(weightReloaded)

	cc, err := reloader.CatenaryCableReloaded()
	if err != nil {
		return 0, err
	}
	return cc.TensionAverage(0), nil
}

// updateStretch resolves the constraint's self-consistent stretch
// load (if the constraint was measured after creep or load stretch),
// then derives the creep and load stretch states.
func (l *LineCableLoaderBase) updateStretch() error {
	condition := l.LineCable.Constraint.Condition
	creepCase := l.LineCable.WeathercaseStretchCreep
	loadCase := l.LineCable.WeathercaseStretchLoad

	switch condition {
	case cable.ConditionInitial:
		l.stretchLoadConstraint = 0

	case cable.ConditionCreep:
		temp := creepCase.TemperatureCable
		var callErr error
		load, err := numsolve.Bracket(func(x float64) float64 {
			tension, e := l.reloadedAverageTension(x, temp, cable.Creep, creepCase)
			if e != nil {
				callErr = e
				return 0
			}
			return tension - x
		}, 0, l.LineCable.CableBase.StrengthRated, 0, 0.01, false)
		if err != nil {
			return err
		}
		if callErr != nil {
			return callErr
		}
		l.stretchLoadConstraint = load

	case cable.ConditionLoad:
		temp := loadCase.TemperatureCable
		var callErr error
		load, err := numsolve.Bracket(func(x float64) float64 {
			tension, e := l.reloadedAverageTension(x, temp, cable.LoadStrain, loadCase)
			if e != nil {
				callErr = e
				return 0
			}
			return tension - x
		}, 0, l.LineCable.CableBase.StrengthRated, 0, 0.01, false)
		if err != nil {
			return err
		}
		if callErr != nil {
			return callErr
		}
		l.stretchLoadConstraint = load

	default:
		return chk.Err("sagtension: unrecognized constraint condition")
	}

	// with the constraint stretch resolved, the remaining stretch
	// states follow by one reload each, the reference side carrying
	// the constraint's own stretch.
	temperatureStretchConstraint := l.temperatureStretchConstraint()

	// creep stretch state
	if condition == cable.ConditionCreep {
		l.stateStretchCreep = cable.StretchState{
			State: cable.State{Temperature: creepCase.TemperatureCable, TypePolynomial: cable.Creep},
			Load:  l.stretchLoadConstraint,
		}
	} else {
		tension, err := l.reloadedAverageTension(l.stretchLoadConstraint, temperatureStretchConstraint, cable.Creep, creepCase)
		if err != nil {
			return err
		}
		l.stateStretchCreep = cable.StretchState{
			State: cable.State{Temperature: creepCase.TemperatureCable, TypePolynomial: cable.Creep},
			Load:  tension,
		}
	}

	// load stretch state
	if condition == cable.ConditionLoad {
		l.stateStretchLoad = cable.StretchState{
			State: cable.State{Temperature: loadCase.TemperatureCable, TypePolynomial: cable.LoadStrain},
			Load:  l.stretchLoadConstraint,
		}
	} else {
		tension, err := l.reloadedAverageTension(l.stretchLoadConstraint, temperatureStretchConstraint, cable.LoadStrain, loadCase)
		if err != nil {
			return err
		}
		l.stateStretchLoad = cable.StretchState{
			State: cable.State{Temperature: loadCase.TemperatureCable, TypePolynomial: cable.LoadStrain},
			Load:  tension,
		}
	}

	return nil
}

// temperatureStretchConstraint returns the temperature the constraint
// condition's stretch was induced at: the matching stretch weather
// case's cable temperature, or zero for the initial (unstretched)
// condition.
func (l *LineCableLoaderBase) temperatureStretchConstraint() float64 {
	switch l.LineCable.Constraint.Condition {
	case cable.ConditionCreep:
		return l.LineCable.WeathercaseStretchCreep.TemperatureCable
	case cable.ConditionLoad:
		return l.LineCable.WeathercaseStretchLoad.TemperatureCable
	default:
		return 0
	}
}

// Validate checks the line cable and, if well-formed, that the
// constraint catenary and stretch states solve successfully.
func (l *LineCableLoaderBase) Validate(includeWarnings bool, messages *[]string) bool {
	if !l.LineCable.Validate(includeWarnings, messages) {
		return false
	}
	if err := l.ensureUpdated(); err != nil {
		appendMsg(messages, "LINE CABLE LOADER BASE - "+err.Error())
		return false
	}
	return true
}
