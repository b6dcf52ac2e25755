// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Spec holds the set of registered fields to populate from the environment.
//
// A Spec is built once per target object with the typed registration
// methods ([Spec.String], [Spec.Int], ...) and consumed by [Spec.Process].
// Registration order is binding order. A Spec is not safe for concurrent
// use; it is meant to be built and processed on a single goroutine during
// application startup.
type Spec struct {
	fields []*Field
}

// New returns an empty Spec. Processing an empty Spec is a no-op.
func New() *Spec {
	return &Spec{}
}

type options struct {
	raiseOnAbsence bool
	prefix         string
	env            Environment
	logger         zerolog.Logger
}

// Option configures a single [Spec.Process] call.
type Option func(*options)

// WithRaiseOnAbsence controls what happens to a field whose environment
// variable is not set and which has no registered default. When raise is
// true (the default) Process fails with a [*MissingConfigurationError];
// when false the field is set to its zero value and a warning is logged.
func WithRaiseOnAbsence(raise bool) Option {
	return func(o *options) {
		o.raiseOnAbsence = raise
	}
}

// WithPrefix prepends the given prefix to every derived variable name.
// With prefix "person", the field "name" is sourced from PERSON_NAME
// instead of NAME.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment replaces the variable source for the call. The default
// source is the process environment ([OSEnvironment]).
func WithEnvironment(env Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithLogger sets the sink for the warning diagnostic emitted on the
// non-raising absent-variable path. Defaults to zerolog's global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Process binds every registered field from the environment, in
// registration order, assigning coerced values in place through the
// pointers captured at registration.
//
// For each field the variable name is the uppercased field name, prefixed
// per [WithPrefix]. A set, non-empty variable is coerced into the field's
// type; an absent or empty variable falls back to the registered default,
// and failing that either produces a [*MissingConfigurationError] or, with
// [WithRaiseOnAbsence](false), zeroes the field.
//
// Process fails fast: the first field to fail aborts the remaining ones,
// and fields bound before the failure keep their assigned values. A
// present variable that cannot be converted is always a [*CoercionError],
// regardless of the raise-on-absence setting.
func (s *Spec) Process(opts ...Option) error {
	o := options{
		raiseOnAbsence: true,
		env:            OSEnvironment(),
		logger:         log.Logger,
	}
	for _, opt := range opts {
		opt(&o)
	}

	for _, field := range s.fields {
		// Leading underscore marks a private field; skip it.
		if strings.HasPrefix(field.name, "_") {
			continue
		}
		if err := s.bind(field, &o); err != nil {
			return err
		}
	}

	return nil
}
