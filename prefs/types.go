// This file is part of Embr.
//
// Embr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Embr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Embr.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/embr/curated"
)

// Patterns for errors raised when setting a value. SetError values are the
// preference type and the value that could not be used. ParseError values
// are the preference type and the underlying error.
const (
	SetError   = "prefs: cannot set %s from %T"
	ParseError = "prefs: %s: %v"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// the live value and hooks common to all preference types
type value[T any] struct {
	v        atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *value[T]) load() T {
	if v := p.v.Load(); v != nil {
		return v.(T)
	}
	var zero T
	return zero
}

func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.v.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// SetHookPre sets the callback function to be called just before the value
// is updated. An error returned by the callback prevents the update. The
// callback is called even if the value hasn't changed.
func (p *value[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value
// is updated. The callback is called even if the value hasn't changed.
func (p *value[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return curated.Errorf(SetError, "bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	value[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be any integer type or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		nv, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(ParseError, "int", err)
		}
		return p.store(nv)
	}
	return curated.Errorf(SetError, "int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	value[float64]
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.load())
}

// Set new value to Float type. New value can be a float, an integer or a
// string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(v)
	case float32:
		return p.store(float64(v))
	case int:
		return p.store(float64(v))
	case int64:
		return p.store(float64(v))
	case string:
		nv, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(ParseError, "float", err)
		}
		return p.store(nv)
	}
	return curated.Errorf(SetError, "float", v)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String implements a string type in the prefs system.
type String struct {
	value[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. The existing string is
// cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.maxLen > 0 && len(s) > p.maxLen {
		p.v.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values that are not strings are formatted
// with the default format for their type.
func (p *String) Set(v Value) error {
	nv := fmt.Sprint(v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
