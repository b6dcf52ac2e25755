// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"encoding"
	"reflect"
	"strconv"
	"time"
)

// Field describes one registered configuration field: its name, the typed
// setter that coerces a raw environment value into the target, and the
// zero-setter used on the non-raising absent path. Fields are created by
// the registration methods on [Spec] and carry no exported state.
type Field struct {
	name string
	kind string

	set     func(raw string) error
	setZero func()

	hasDefault bool
}

// Default marks the field as defaulted: the value its target holds at the
// time of the call is the default, and an absent environment variable
// leaves it untouched instead of triggering the absence policy. Register
// the default by initializing the target before calling Default:
//
//	cfg := Config{Age: 25}
//	spec.Int(&cfg.Age, "age").Default()
//
// Default is a presence marker, not a value check: a zero default (0, "",
// false) counts as provided and suppresses the missing-configuration error
// all the same.
func (f *Field) Default() *Field {
	f.hasDefault = true
	return f
}

func (s *Spec) add(name, kind string, set func(string) error, setZero func()) *Field {
	f := &Field{
		name:    name,
		kind:    kind,
		set:     set,
		setZero: setZero,
	}
	s.fields = append(s.fields, f)
	return f
}

// String registers a string field. The environment value is assigned as-is.
func (s *Spec) String(dst *string, name string) *Field {
	return s.add(name, "string",
		func(raw string) error {
			*dst = raw
			return nil
		},
		func() { *dst = "" },
	)
}

// Bool registers a boolean field. Values are parsed with the permissive
// grammar described in [Spec.Process]: y/yes/t/true/on/1 and
// n/no/f/false/off/0, case-insensitive.
func (s *Spec) Bool(dst *bool, name string) *Field {
	return s.add(name, "bool",
		func(raw string) error {
			v, err := parseBool(raw)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		func() { *dst = false },
	)
}

// Int registers an int field.
func (s *Spec) Int(dst *int, name string) *Field {
	return s.add(name, "int",
		func(raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		func() { *dst = 0 },
	)
}

// Int64 registers an int64 field.
func (s *Spec) Int64(dst *int64, name string) *Field {
	return s.add(name, "int64",
		func(raw string) error {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		func() { *dst = 0 },
	)
}

// Uint registers a uint field.
func (s *Spec) Uint(dst *uint, name string) *Field {
	return s.add(name, "uint",
		func(raw string) error {
			v, err := strconv.ParseUint(raw, 10, strconv.IntSize)
			if err != nil {
				return err
			}
			*dst = uint(v)
			return nil
		},
		func() { *dst = 0 },
	)
}

// Float64 registers a float64 field.
func (s *Spec) Float64(dst *float64, name string) *Field {
	return s.add(name, "float64",
		func(raw string) error {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		func() { *dst = 0 },
	)
}

// Duration registers a time.Duration field parsed with
// [time.ParseDuration] (e.g. "30s", "1h30m").
func (s *Spec) Duration(dst *time.Duration, name string) *Field {
	return s.add(name, "duration",
		func(raw string) error {
			v, err := time.ParseDuration(raw)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		func() { *dst = 0 },
	)
}

// Var registers a field of any type implementing
// [encoding.TextUnmarshaler]. dst must be a non-nil pointer; on the
// non-raising absent path the pointed-to value is reset to its zero value.
func (s *Spec) Var(dst encoding.TextUnmarshaler, name string) *Field {
	return s.add(name, reflect.TypeOf(dst).Elem().String(),
		func(raw string) error {
			return dst.UnmarshalText([]byte(raw))
		},
		func() {
			reflect.ValueOf(dst).Elem().SetZero()
		},
	)
}
