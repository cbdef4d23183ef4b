// Package fixture defines the fixture data model: named definitions, the
// insertion-ordered sets that hold them, and the static data registry
// that fixture data packages populate at init time.
//
// A Definition pairs a unique name with a description and a JSON
// compatible payload. Resolving a definition copies its payload and
// injects the name under the fixture_id key; that resolved map is the
// unit pushed to the API and written to export files.
//
// Data packages register their sets once:
//
//	func init() {
//	    fixture.RegisterSet("example", "example_fixtures", exampleFixtures)
//	}
//
// and generators built for the "example" domain pick them up
// automatically. The package also provides expression filtering over
// definitions (see Filter).
package fixture
