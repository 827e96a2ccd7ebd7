/*
 * errors.go, part of gobd.
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package bd

import "fmt"

//CError is the concrete error type of the package. It fulfills the Error
//interface. The name stands for "concrete error" and avoids a clash with the
//interface.
type CError struct {
	msg  string
	deco []string
}

//NewError returns a CError for the function caller with the given message.
func NewError(caller, message string) *CError {
	return &CError{msg: message, deco: []string{caller}}
}

func errorf(caller, format string, a ...interface{}) *CError {
	return NewError(caller, fmt.Sprintf(format, a...))
}

//Error returns the error message.
func (err *CError) Error() string {
	return err.msg
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements the package Error interface and
//decorates it with the caller's name before returning it. Calling it on any
//other error type is a bug, and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
