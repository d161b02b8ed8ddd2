/*
 * machine.go, part of goconformers.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
//Package extraction reads the output of quantum chemistry programs, line by line,
//and extracts from it the data of one conformer, as a fields.Record.
//
//Parsers are finite state machines. Each state is a function that takes one line,
//and returns the data it found in it. A state can switch the machine to another
//state, and it can pull further lines itself. The "initial" state checks each line
//against the triggers of the other states, and switches to the first state whose
//trigger matches. The line that matched is not passed to the new state.
package extraction

import (
	"errors"
	"io"
	"log/slog"
	"regexp"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

var logger = slog.Default()

//SetLogger sets the logger used for non-fatal notices.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

//Initial is the name of the state every parse starts, and ends, in.
const Initial = "initial"

//StateFunc processes one line, returning the data found, which can be nil.
type StateFunc func(line string) (fields.Record, error)

type trig struct {
	name string
	re   *regexp.Regexp
}

//Machine is a finite state machine over lines of text.
//A Machine is not safe for concurrent use.
type Machine struct {
	states   map[string]StateFunc
	triggers []trig //checked in the order they were added
	current  string
	src      LineSource
	data     fields.Record
}

//NewMachine returns a Machine with only the default initial state, which
//switches states according to their triggers.
func NewMachine() *Machine {
	M := &Machine{states: make(map[string]StateFunc), current: Initial}
	M.states[Initial] = M.initial
	return M
}

//Add registers f as the state name, replacing any state with the same name.
//If trigger is not empty, it is compiled, and lines matching it (from their
//start) will switch the machine to this state while in the initial state.
func (M *Machine) Add(name string, f StateFunc, trigger string) error {
	errid := "Machine/Add"
	if name == "" || f == nil {
		return errs.New(errs.ErrInvalidState, "%s: a state needs a name and a function, got name %q", errid, name)
	}
	var re *regexp.Regexp
	if trigger != "" {
		var err error
		re, err = regexp.Compile(`^(?:` + trigger + `)`)
		if err != nil {
			return errs.New(errs.ErrValue, "%s: invalid trigger for state %s: %v", errid, name, err)
		}
	}
	M.states[name] = f
	M.dropTrigger(name)
	if re != nil {
		M.triggers = append(M.triggers, trig{name: name, re: re})
	}
	return nil
}

func (M *Machine) dropTrigger(name string) {
	for i, t := range M.triggers {
		if t.name == name {
			M.triggers = append(M.triggers[:i], M.triggers[i+1:]...)
			return
		}
	}
}

//Remove unregisters a state and its trigger.
func (M *Machine) Remove(name string) error {
	if _, ok := M.states[name]; !ok {
		return errs.New(errs.ErrInvalidState, "Machine/Remove: no state registered under name %q", name)
	}
	delete(M.states, name)
	M.dropTrigger(name)
	return nil
}

//Switch makes name the active state.
func (M *Machine) Switch(name string) error {
	if _, ok := M.states[name]; !ok {
		return errs.New(errs.ErrInvalidState, "Machine/Switch: %q is not a registered state", name)
	}
	M.current = name
	return nil
}

//Current returns the name of the active state.
func (M *Machine) Current() string { return M.current }

//Triggered returns the names of the registered states with a trigger, in the
//order their triggers are checked.
func (M *Machine) Triggered() []string {
	ret := make([]string, len(M.triggers))
	for i, t := range M.triggers {
		ret[i] = t.name
	}
	return ret
}

//Trigger switches to the first state whose trigger matches line, and returns
//true, or returns false if no trigger matches.
func (M *Machine) Trigger(line string) bool {
	for _, t := range M.triggers {
		if t.re.MatchString(line) {
			M.current = t.name
			return true
		}
	}
	return false
}

//Matches returns true if the trigger of the given state matches line.
func (M *Machine) Matches(name, line string) bool {
	for _, t := range M.triggers {
		if t.name == name {
			return t.re.MatchString(line)
		}
	}
	return false
}

func (M *Machine) initial(line string) (fields.Record, error) {
	M.Trigger(line)
	return nil, nil
}

//Next returns the next line of the input being parsed, for states that need
//to read more than one line. io.ErrUnexpectedEOF is returned at the end of
//the input.
func (M *Machine) Next() (string, error) {
	if M.src == nil {
		return "", io.ErrUnexpectedEOF
	}
	l, ok := M.src.Next()
	if !ok {
		return "", io.ErrUnexpectedEOF
	}
	return l, nil
}

//Get returns the value found so far for genre in the current parse.
func (M *Machine) Get(genre string) (fields.Value, bool) {
	v, ok := M.data[genre]
	return v, ok
}

//Parse runs the machine over all the lines in src, merging the data returned by
//each state; later values replace earlier ones. The machine is always set
//back to the initial state before returning, even on error. The data found
//before an error is returned alongside it.
func (M *Machine) Parse(src LineSource) (rec fields.Record, err error) {
	M.src = src
	M.data = make(fields.Record)
	defer func() {
		rec = M.data
		M.current = Initial
		M.src = nil
		M.data = nil
	}()
	//rec is set by the deferred function.
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		f, ok := M.states[M.current]
		if !ok {
			return nil, errs.New(errs.ErrInvalidState, "Machine/Parse: state %q is not registered", M.current)
		}
		state := M.current
		out, err := f(line)
		//what a state found before failing is kept
		for k, v := range out {
			if !v.Valid() {
				return nil, errs.New(errs.ErrInvalidState, "Machine/Parse: state %s returned an invalid value for %s", state, k)
			}
			M.data[k] = v
		}
		if err != nil {
			return nil, errs.Decorate(err, "Machine/Parse: "+state)
		}
	}
	if e, ok := src.(interface{ Err() error }); ok && e.Err() != nil {
		return nil, errs.Decorate(e.Err(), "Machine/Parse")
	}
	return nil, nil
}

//IsPrematureEnd returns true if err was caused by input ending while a state
//still expected lines.
func IsPrematureEnd(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}
