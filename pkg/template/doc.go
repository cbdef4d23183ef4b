// Package template expands {{expression}} placeholders in fixture
// payload values, so static fixture definitions can still produce fresh
// identifiers, timestamps and credentials on every seeding run.
//
// Supported expressions:
//
//	{{uuid}}                random UUID v4
//	{{uuid.short}}          first 8 characters of a UUID
//	{{now}}                 current time, RFC3339 UTC
//	{{now+1h}} {{now-30m}}  offset from now (Go duration syntax)
//	{{timestamp}}           unix seconds
//	{{timestamp.ms}}        unix milliseconds
//	{{random.int(1, 100)}}  random integer, inclusive bounds
//	{{random.choice(a|b)}}  one of the listed literals
//	{{seq}}                 shared counter, starts at 1
//	{{sequence("orders")}}  named counter, optional start value
//	{{jwt(alice)}}          HS256-signed test token for subject alice
//	{{jwt(alice, 15m)}}     same, with an explicit lifetime
//
// A payload string that is exactly one placeholder keeps the value's
// native type: "{{random.int(1,5)}}" resolves to an int, not a string.
// Mixed text interpolates stringified values. Unknown expressions stay
// in the output untouched and log a warning.
package template
