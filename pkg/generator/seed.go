package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"

	"github.com/seedctl/seedctl/pkg/apiclient"
	"github.com/seedctl/seedctl/pkg/fixture"
)

// idCandidates are the fields probed, in order, to identify fixtures in a
// list response.
var idCandidates = []string{"id", "fixture_id", "name"}

// Reset outcome statuses.
const (
	StatusCompleted = "completed"
	StatusWarning   = "warning"
)

// ResetResult describes the outcome of a Reset.
type ResetResult struct {
	Message         string   `json:"message"`
	FixturesDeleted []string `json:"fixtures_deleted"`
	Count           int      `json:"count"`
	Status          string   `json:"status"`
}

// ResetAndSetupResult describes the outcome of a ResetAndSetup.
type ResetAndSetupResult struct {
	Reset           *ResetResult     `json:"reset"`
	CreatedFixtures []map[string]any `json:"created_fixtures"`
	Status          string           `json:"status"`
}

// CreateFixture sends one resolved fixture to the API. The fixture_id is
// substituted into the create endpoint template and stripped from the PUT
// body. Returns a copy of the payload with the fixture_id restored; the
// input map is not mutated.
func (g *Generator) CreateFixture(ctx context.Context, resolved map[string]any) (map[string]any, error) {
	if g.client == nil {
		return nil, ErrNoClient
	}
	id, _ := resolved[fixture.KeyFixtureID].(string)
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("fixture has no fixture_id")
	}

	endpoint := strings.ReplaceAll(g.createEndpoint, "{fixture_id}", url.PathEscape(id))

	payload := make(map[string]any, len(resolved))
	for k, v := range resolved {
		if k == fixture.KeyFixtureID {
			continue
		}
		payload[k] = v
	}

	if _, err := g.client.Put(ctx, endpoint, payload); err != nil {
		return nil, &CreateError{FixtureID: id, Err: err}
	}

	created := make(map[string]any, len(resolved))
	for k, v := range payload {
		created[k] = v
	}
	created[fixture.KeyFixtureID] = id
	g.logger.Debug("created fixture", "domain", g.domain, "fixture_id", id, "endpoint", endpoint)
	return created, nil
}

// Setup creates every fixture in the set. Individual failures are logged
// and skipped, so a partial result with a nil error is normal. An empty
// set is a config error.
func (g *Generator) Setup(ctx context.Context) ([]map[string]any, error) {
	if g.client == nil {
		return nil, ErrNoClient
	}
	if g.set.Len() == 0 {
		return nil, ErrNoFixtures
	}

	resolved, err := g.Fixtures()
	if err != nil {
		return nil, err
	}

	created := make([]map[string]any, 0, len(resolved))
	for _, fx := range resolved {
		result, err := g.CreateFixture(ctx, fx)
		if err != nil {
			g.logger.Warn("failed to create fixture", "domain", g.domain, "fixture_id", fx[fixture.KeyFixtureID], "error", err)
			continue
		}
		created = append(created, result)
	}
	return created, nil
}

// ExistingIDs fetches the list endpoint and extracts fixture IDs from the
// response. With WithIDPath set, the JSONPath is applied per element;
// otherwise the shape is probed: a list of strings passes through, a list
// of objects is keyed by the first of id, fixture_id or name present in
// the first element, and anything else falls back to positional indexes.
func (g *Generator) ExistingIDs(ctx context.Context) ([]string, error) {
	if g.client == nil {
		return nil, ErrNoClient
	}
	resp, err := g.client.Get(ctx, g.listEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing fixtures: %w", err)
	}

	items, ok := resp.([]any)
	if !ok || len(items) == 0 {
		return []string{}, nil
	}
	if g.idPath != "" {
		return extractIDsByPath(g.idPath, items)
	}
	return inferIDs(items), nil
}

func extractIDsByPath(path string, items []any) ([]string, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid id path %q: %w", path, err)
	}
	ids := make([]string, 0, len(items))
	for i, item := range items {
		results := expr.Get(item)
		if len(results) == 0 {
			ids = append(ids, strconv.Itoa(i))
			continue
		}
		ids = append(ids, fmt.Sprint(results[0]))
	}
	return ids, nil
}

func inferIDs(items []any) []string {
	ids := make([]string, 0, len(items))

	if _, ok := items[0].(string); ok {
		for _, item := range items {
			ids = append(ids, fmt.Sprint(item))
		}
		return ids
	}

	// Objects: the key found in the first element applies to all of them.
	key := ""
	if first, ok := items[0].(map[string]any); ok {
		for _, candidate := range idCandidates {
			if _, present := first[candidate]; present {
				key = candidate
				break
			}
		}
	}

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if key == "" || !ok {
			ids = append(ids, strconv.Itoa(i))
			continue
		}
		v, present := obj[key]
		if !present {
			ids = append(ids, strconv.Itoa(i))
			continue
		}
		ids = append(ids, fmt.Sprint(v))
	}
	return ids
}

// Clear deletes every fixture via the clear endpoint and returns the API's
// response body, when it has one.
func (g *Generator) Clear(ctx context.Context) (map[string]any, error) {
	if g.client == nil {
		return nil, ErrNoClient
	}
	resp, err := g.client.Delete(ctx, g.clearEndpoint)
	if err != nil {
		return nil, &ClearError{Err: err}
	}
	result, _ := resp.(map[string]any)
	return result, nil
}

// Reset captures the existing fixture IDs, then clears them. The reported
// count prefers the clear response's count field and falls back to the
// number of IDs seen before clearing. An API that rejects the clear with
// 405 yields a warning result, not an error.
func (g *Generator) Reset(ctx context.Context) (*ResetResult, error) {
	existing, err := g.ExistingIDs(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := g.Clear(ctx)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusMethodNotAllowed {
			g.logger.Warn("reset not supported by API", "domain", g.domain, "endpoint", g.clearEndpoint)
			return &ResetResult{
				Message:         fmt.Sprintf("Reset skipped - no fixtures were deleted because the method is not allowed. %v", err),
				FixturesDeleted: []string{},
				Count:           0,
				Status:          StatusWarning,
			}, nil
		}
		return nil, err
	}

	count := len(existing)
	if n, ok := toInt(resp["count"]); ok {
		count = n
	}

	return &ResetResult{
		Message:         fmt.Sprintf("Reset completed - deleted %d fixtures", count),
		FixturesDeleted: existing,
		Count:           count,
		Status:          StatusCompleted,
	}, nil
}

// ResetAndSetup resets the database, then recreates the full fixture set.
// A reset warning (405) short-circuits without attempting the setup.
func (g *Generator) ResetAndSetup(ctx context.Context) (*ResetAndSetupResult, error) {
	reset, err := g.Reset(ctx)
	if err != nil {
		return nil, err
	}
	if reset.Status == StatusWarning {
		return &ResetAndSetupResult{
			Reset:           reset,
			CreatedFixtures: []map[string]any{},
			Status:          StatusWarning,
		}, nil
	}

	created, err := g.Setup(ctx)
	if err != nil {
		return nil, err
	}
	return &ResetAndSetupResult{
		Reset:           reset,
		CreatedFixtures: created,
		Status:          StatusCompleted,
	}, nil
}

// Health polls the API until it responds 200 or the retries run out.
func (g *Generator) Health(ctx context.Context, path string, retries int, delay time.Duration) (bool, error) {
	if g.client == nil {
		return false, ErrNoClient
	}
	return g.client.Health(ctx, path, retries, delay), nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
