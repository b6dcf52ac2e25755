// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import "os"

//go:generate mockgen -source=env.go -destination=internal/mock/environment_mock.go -package=mock

// Environment is a read-only source of environment variable values.
// Lookup reports the value for name and whether it was present at all.
// The source must stay stable for the duration of a [Spec.Process] call;
// no synchronization is provided against concurrent mutation.
type Environment interface {
	Lookup(name string) (string, bool)
}

type osEnvironment struct{}

// OSEnvironment returns the process environment as an [Environment].
// It is the default source used by [Spec.Process].
func OSEnvironment() Environment {
	return osEnvironment{}
}

func (osEnvironment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Snapshot is an in-memory [Environment] backed by a plain map. It keeps
// tests and hermetic callers off the real process environment.
type Snapshot map[string]string

// Lookup returns the mapped value for name and whether the key exists.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}
