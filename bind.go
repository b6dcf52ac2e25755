// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import "strings"

// envVarName derives the environment variable name for a field: the
// uppercased field name, prefixed with upper(prefix) + "_" when a prefix
// is set.
func envVarName(prefix, field string) string {
	if prefix == "" {
		return strings.ToUpper(field)
	}
	return strings.ToUpper(prefix) + "_" + strings.ToUpper(field)
}

// bind resolves and assigns a single field. A variable set to the empty
// string counts as absent, matching the original lookup contract.
func (s *Spec) bind(field *Field, o *options) error {
	name := envVarName(o.prefix, field.name)

	raw, found := o.env.Lookup(name)
	if found && raw != "" {
		if err := field.set(raw); err != nil {
			return &CoercionError{
				Field: field.name,
				Var:   name,
				Value: raw,
				Type:  field.kind,
				Err:   err,
			}
		}
		return nil
	}

	if field.hasDefault {
		// The target already holds its default; leave it as-is.
		return nil
	}

	if o.raiseOnAbsence {
		return &MissingConfigurationError{Field: field.name, Var: name}
	}

	o.logger.Warn().
		Str("field", field.name).
		Str("var", name).
		Msg("no default value provided and no env var set; setting value to zero value")
	field.setZero()

	return nil
}
