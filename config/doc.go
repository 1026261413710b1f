// SPDX-License-Identifier: EPL-2.0

// Package config loads audwave settings from YAML.
//
//	cfg, err := config.Load("audwave.yaml")
//	if err == nil {
//	    err = cfg.ApplyEnv(nil)
//	}
//	if err == nil {
//	    err = cfg.Validate()
//	}
//
// A missing file gives Default(). Fields left out of the file keep their
// defaults, and a style only needs the fields that differ from its kind.
package config
