/*
 * errs.go, part of goconformers.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package errs holds the error kinds shared by all goconformers packages,
//and the decorated error type that carries them.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

//Error kinds. Every error returned by goconformers wraps one of these,
//so they can be checked with errors.Is.
var (
	ErrUnknownGenre     = errors.New("unknown genre")
	ErrMissingGenre     = errors.New("missing genre")
	ErrInconsistentData = errors.New("inconsistent data")
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidElement   = errors.New("invalid element")
	ErrLength           = errors.New("wrong length")
	ErrIndex            = errors.New("index out of range")
	ErrKey              = errors.New("unknown key")
	ErrType             = errors.New("wrong type")
	ErrValue            = errors.New("invalid value")
)

//Error is the error type returned by goconformers. It keeps a trail of
//the functions it went through ("decorations") and the kind of the problem.
type Error struct {
	message  string
	kind     error
	deco     []string
	critical bool
}

//New returns an *Error of the given kind with a formatted message.
func New(kind error, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), kind: kind, critical: true}
}

//Notice returns a non-critical *Error of the given kind.
func Notice(kind error, format string, args ...interface{}) *Error {
	e := New(kind, format, args...)
	e.critical = false
	return e
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if err.kind == nil {
		return err.message
	}
	if len(err.deco) == 0 {
		return fmt.Sprintf("%s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("%s: %s: %s", strings.Join(err.deco, ": "), err.kind, err.message)
}

//Unwrap returns the kind of the error.
func (err *Error) Unwrap() error { return err.kind }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append([]string{dec}, err.deco...)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//Kind returns the error kind.
func (err *Error) Kind() error { return err.kind }

type decorator interface {
	Decorate(string) []string
}

//Decorate adds the caller's name to err's trail, if err supports it.
//Other errors are wrapped, so errors.Is still sees through them.
func Decorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var d decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
		return err
	}
	return fmt.Errorf("%s: %w", caller, err)
}

//Is reports whether err is of the given kind. Shorthand for errors.Is.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
