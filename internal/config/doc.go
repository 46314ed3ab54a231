// Package config loads and validates shoebox configuration from a TOML
// file. All path fields are expanded (~ resolution) and made absolute at
// load time so downstream components never see relative paths.
package config
