/*
 * interfaces.go, part of coulforce.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"errors"
	"fmt"
)

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice resulting from the current call. An empty string only returns the current value.
}

// CError is the error type for the chem package. deco keeps the list of functions
// the error went through on its way up, the last element being the outermost one.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err CError) Critical() bool { return err.critical }

// decoratedError carries a decoration stack for an error that doesn't
// implement Error itself. The original error stays reachable through Unwrap.
type decoratedError struct {
	err  error
	deco []string
}

func (err *decoratedError) Error() string { return err.err.Error() }

func (err *decoratedError) Unwrap() error { return err.err }

func (err *decoratedError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name before returning it. CErrors
// keep their type, anything else is wrapped so errors.Is and errors.As still work.
// A nil error returns nil.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case CError:
		e.deco = e.Decorate(caller)
		return e
	case *decoratedError:
		e.Decorate(caller)
		return e
	}
	return &decoratedError{err: err, deco: []string{caller}}
}

// Trace returns the decoration stack of err, innermost function first,
// or nil if err carries none.
func Trace(err error) []string {
	var e Error
	if errors.As(err, &e) {
		return e.Decorate("")
	}
	return nil
}

// ErrNotFound is returned (wrapped) when a requested atom is not present in a structure.
var ErrNotFound = errors.New("atom not found")

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrAtomOutOfRange = PanicMsg("chem: Requested/Attempted setting Atom out of range")
)

func notFound(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, a...))
}
