// Package replay drives a ggpaint.Editor from files: a TOML config that
// sets up the canvas and tools, and a YAML script of editing steps.
//
// It backs the ggpaint command and makes whole editing sessions
// reproducible in tests.
package replay
