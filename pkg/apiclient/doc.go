// Package apiclient is the HTTP client used to seed fixtures into the
// target API.
//
// The client exposes the plain verbs (Get, Post, Put, Delete, Patch)
// against a single base URL and parses every response body as JSON. It
// holds no connection state between calls: keep-alives are disabled, so
// each request uses a fresh connection. Failures come back as
// *RequestError wrapping either the transport error or an *APIError that
// carries the HTTP status code, which callers branch on via errors.As.
//
// Health implements the bounded readiness probe used before seeding: poll
// GET on a path until the first 200 or until the retry budget runs out.
// The verb methods themselves never retry.
package apiclient
