// Package config loads alignment parameters from a YAML file; the
// afalign command layers its command-line overrides on top of them.
//
// YAML holds the defaults a user wants to reuse across runs; flags are
// for one-off overrides. Load never mutates its path argument's
// contents and treats a missing file as "no YAML defaults", not an
// error, so a config file is always optional.
package config
