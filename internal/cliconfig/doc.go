// Package cliconfig provides configuration defaults and environment
// loading for the seedctl CLI.
//
// Precedence, highest to lowest:
//
//  1. Command-line flags
//  2. Environment variables (SEEDCTL_* prefix)
//  3. Default values
//
// No environment variable is required. The package tracks the source of
// each value so commands can report where a setting came from.
package cliconfig
