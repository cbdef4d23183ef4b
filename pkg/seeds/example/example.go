// Package example registers the example fixture domain. Copy this package
// and adjust the data to seed a domain of your own; anything registered
// here shows up in every seedctl command automatically.
package example

import (
	"github.com/seedctl/seedctl/pkg/fixture"
	"github.com/seedctl/seedctl/pkg/generator"
)

// Domain is the generator name used by --generator.
const Domain = "example"

// exampleFixtures uses the data wrapper structure: each descriptor holds a
// description plus a data map keyed by the fixture's own name.
var exampleFixtures = map[string]map[string]any{
	"user_example": {
		"description": "An example user fixture showing proper data wrapper structure",
		"data": map[string]any{
			"user_example": map[string]any{
				"username":    "example_user",
				"email":       "user@example.com",
				"role":        "user",
				"active":      true,
				"permissions": []string{"read", "write"},
			},
		},
	},
	"admin_example": {
		"description": "An example admin fixture with nested configuration",
		"data": map[string]any{
			"admin_example": map[string]any{
				"username":    "admin",
				"email":       "admin@example.com",
				"role":        "admin",
				"active":      true,
				"permissions": []string{"read", "write", "delete", "manage_users"},
				"settings": map[string]any{
					"theme":         "dark",
					"notifications": true,
					"timezone":      "UTC",
				},
			},
		},
	},
}

func init() {
	fixture.RegisterSet(Domain, "example_fixtures", exampleFixtures)
	generator.Register(Domain, func(opts ...generator.Option) (*generator.Generator, error) {
		return generator.New(Domain, opts...), nil
	})
}
