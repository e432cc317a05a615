// Package validation provides input validation for builder options and
// configuration.
//
// It supports both struct tag validation (using the validator library,
// used by the config package) and programmatic validation with error
// collection, used by the tool builders for eager option checks.
//
// # Struct Tag Validation
//
//	type ExecConfig struct {
//	    GracePeriod time.Duration `validate:"min=0"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New("jlink")
//	v.Range("--compress", level, 0, 2)
//	err := v.Err()
package validation
