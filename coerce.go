// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"fmt"
	"strings"
)

// parseBool recognizes the permissive boolean grammar, case-insensitive.
// Any string outside the two token sets is an error.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q", raw)
}
