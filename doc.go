// Package envconfig populates registered configuration fields from
// environment variables in a single synchronous pass.
//
// Fields are registered explicitly on a [Spec] with one strongly-typed
// method per supported type, then bound with [Spec.Process]:
//
//	type Config struct {
//		Name      string
//		Age       int
//		IsMarried bool
//	}
//
//	cfg := Config{Age: 25, IsMarried: true}
//
//	spec := envconfig.New()
//	spec.String(&cfg.Name, "name")
//	spec.Int(&cfg.Age, "age").Default()
//	spec.Bool(&cfg.IsMarried, "is_married").Default()
//
//	if err := spec.Process(); err != nil {
//		// ...
//	}
//
// Process looks up NAME, AGE and IS_MARRIED (or PERSON_NAME etc. when
// [WithPrefix] is used), coerces each value into the registered field and
// assigns it in place. A field whose variable is absent keeps its default
// when one was registered; otherwise Process either fails with a
// [*MissingConfigurationError] or, with [WithRaiseOnAbsence](false), zeroes
// the field and emits a warning-level diagnostic.
//
// Fields are bound independently, in registration order, on the calling
// goroutine. Process never starts goroutines and holds no state between
// calls; the caller owns the target fields for the duration of a call.
//
// The variable source defaults to the process environment and can be
// replaced with any [Environment], e.g. a [Snapshot] map in tests.
package envconfig
