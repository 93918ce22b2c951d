// Package config resolves the file paths for a merge run.
//
// Resolution order: built-in working-directory defaults, then an optional
// YAML config file, then ORDERMERGE_* environment variables. There is no
// other runtime configuration; a run either completes on these paths or
// fails.
package config
