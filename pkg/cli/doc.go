// Package cli implements the gradual command-line interface.
//
// The configuration commands operate on a checker configuration file without
// running any analysis:
//
//	gradual config validate    validate a configuration file
//	gradual config show        print the effective settings
//	gradual config schema      print the JSON Schema for structured configs
//	gradual config options     list the recognized options
//
// Commands discover gradual.ini, gradual.toml, gradual.yaml, gradual.json,
// setup.cfg, or pyproject.toml in the working directory unless a file is
// given with --config.
package cli
