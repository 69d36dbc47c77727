// Package environment names the deployment environments an application can
// run in (development, staging, production) and parses them from
// configuration values.
//
// Environment implements encoding.TextUnmarshaler, so it can be used as a
// field of a struct loaded by pkg/config:
//
//	type Config struct {
//	    Env environment.Environment `env:"ENV" envDefault:"development"`
//	}
package environment
