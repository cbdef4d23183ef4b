// Package generator seeds fixture data into HTTP APIs.
//
// A Generator pairs a named fixture set with an API client and the endpoint
// templates of the target service. Fixture data packages register their
// domains at init time; file discovery can add or extend domains from
// *_fixtures.json and *_fixtures.yaml documents on disk.
package generator
