// SPDX-License-Identifier: MPL-2.0

// Package config handles selcolors configuration using Viper with CUE as the
// file format.
//
// Configuration is read from the file passed with --config, otherwise from
// config.cue in the platform config directory ($XDG_CONFIG_HOME/selcolors on
// Linux), otherwise from ./config.cue. Missing files fall back to defaults.
// Files are validated against the embedded config_schema.cue.
package config
