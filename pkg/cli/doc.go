// Package cli provides the command-line interface for seedctl.
//
// The cli package implements all CLI commands for generating and seeding
// test fixtures:
//   - generate: Render fixture documents to stdout or files (JSON, YAML, Go)
//   - database: Seed, list or reset fixtures through the target API
//   - generators: List generator domains and their data sources
//   - version: Show seedctl version
//
// Fixture data comes from two places: generators registered in code via
// the generator package, and *_fixtures.{json,yaml} files discovered under
// --fixtures-dir. Files whose domain matches a registered generator merge
// into it; new domains become generators of their own.
//
// Commands talk to the target API over plain HTTP. Every database run
// starts with a readiness probe so a service that is still booting gets
// time to come up. Destructive operations (--reset, --reset-and-setup)
// prompt for confirmation unless --confirm is passed.
//
// Global flags:
//   - --api-url: Base URL of the API to seed (SEEDCTL_API_URL)
//   - --fixtures-dir: Directory scanned for fixture files (SEEDCTL_FIXTURES_DIR)
//   - --json: Machine-readable output on stdout, prose suppressed
//   - --verbose, --quiet, --no-color: Logging and terminal control
//
// Usage:
//
//	seedctl generate --format yaml --save fixtures.yaml
//	seedctl generate -g users --filter 'payload.role == "admin"'
//	seedctl generate --split-dir testdata/fixtures
//	seedctl database
//	seedctl database --list-existing --json
//	seedctl database --reset --confirm
//	seedctl database --reset-and-setup --id-path '$.data.id'
//	seedctl generators
package cli
