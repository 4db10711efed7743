// Package driving lists what the front ends (cli, tui, mcp) may ask of the
// core. internal/core/services provides the implementations.
package driving
