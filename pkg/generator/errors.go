package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Config errors reported before any API call is made.
var (
	// ErrNoClient means the generator was built without an API client.
	ErrNoClient = errors.New("no API client configured")
	// ErrNoFixtures means the generator's fixture set is empty.
	ErrNoFixtures = errors.New("no fixture data configured")
)

// NotFoundError reports a fixture name that is not in the set.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("fixture %q not found (no fixtures registered)", e.Name)
	}
	return fmt.Sprintf("fixture %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// CreateError wraps a failure to create one fixture.
type CreateError struct {
	FixtureID string
	Err       error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create fixture %s: %v", e.FixtureID, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// ClearError wraps a failure to clear fixtures.
type ClearError struct {
	Err error
}

func (e *ClearError) Error() string {
	return fmt.Sprintf("failed to clear fixtures: %v", e.Err)
}

func (e *ClearError) Unwrap() error {
	return e.Err
}
