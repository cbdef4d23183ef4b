package fixture

import "fmt"

// KeyFixtureID is the payload key that carries a fixture's registry name.
// Every resolved fixture has it set, and the seeding API is addressed by
// its value.
const KeyFixtureID = "fixture_id"

// Metadata keys recognized on untyped descriptors. They describe the
// fixture and never travel in the payload.
const (
	keyDescription = "description"
	keyTags        = "tags"
	keyData        = "data"
)

// Definition is one named fixture: a description for humans and a JSON
// compatible payload for the API.
type Definition struct {
	Name        string
	Description string
	Tags        []string
	Payload     map[string]any
}

// Describe returns the description, or the conventional
// "Fixture: <name>" placeholder when none was given.
func (d Definition) Describe() string {
	if d.Description != "" {
		return d.Description
	}
	return fmt.Sprintf("Fixture: %s", d.Name)
}

// Resolved returns a shallow copy of the payload with fixture_id set to
// the definition name. The stored payload is never mutated.
func (d Definition) Resolved() map[string]any {
	out := make(map[string]any, len(d.Payload)+1)
	for k, v := range d.Payload {
		out[k] = v
	}
	out[KeyFixtureID] = d.Name
	return out
}

// FromRaw builds a Definition from an untyped descriptor map, as found in
// fixture data files and registered data sets. Two shapes are accepted:
//
//   - wrapped: {"description": ..., "tags": ..., "data": {payload}} where
//     a single-entry data map keyed by the fixture's own name unwraps one
//     level further (the conventional name echo)
//   - flat: the descriptor itself is the payload, minus the metadata keys
func FromRaw(name string, raw map[string]any) Definition {
	def := Definition{Name: name}
	if s, ok := raw[keyDescription].(string); ok {
		def.Description = s
	}
	def.Tags = toStringSlice(raw[keyTags])

	if wrapper, ok := raw[keyData].(map[string]any); ok {
		payload := wrapper
		if len(wrapper) == 1 {
			if inner, ok := wrapper[name].(map[string]any); ok {
				payload = inner
			}
		}
		def.Payload = payload
		return def
	}

	payload := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == keyDescription || k == keyTags {
			continue
		}
		payload[k] = v
	}
	def.Payload = payload
	return def
}

func toStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
