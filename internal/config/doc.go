// Package config provides configuration loading, merging, and validation
// for the envguard command itself.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables prefixed with ENVGUARD_
//  2. Command-line flags
//  3. JSON config file
//
// This is the tool's own configuration; the variables being checked are
// described by a schema file, see package schemafile.
package config
