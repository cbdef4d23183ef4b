package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/seedctl/seedctl/pkg/apiclient"
	"github.com/seedctl/seedctl/pkg/export"
	"github.com/seedctl/seedctl/pkg/fixture"
	"github.com/seedctl/seedctl/pkg/template"
)

// Default endpoint templates for the fixture API.
const (
	// DefaultCreateEndpoint is the path template each fixture is PUT to.
	// {fixture_id} is replaced with the fixture's ID.
	DefaultCreateEndpoint = "/{fixture_id}/"
	// DefaultListEndpoint returns the collection of existing fixtures.
	DefaultListEndpoint = "/"
	// DefaultClearEndpoint deletes every fixture.
	DefaultClearEndpoint = "/"
)

// Generator holds a domain's fixture set and seeds it into an API.
// File-only operations (listing, export, import) work without a client;
// seeding operations require one.
type Generator struct {
	domain    string
	set       *fixture.Set
	client    *apiclient.Client
	templates *template.Engine
	logger    *slog.Logger

	createEndpoint string
	listEndpoint   string
	clearEndpoint  string
	idPath         string
}

// Option configures a Generator.
type Option func(*Generator)

// WithSet replaces the fixture set, bypassing the data registry.
func WithSet(set *fixture.Set) Option {
	return func(g *Generator) {
		if set != nil {
			g.set = set
		}
	}
}

// WithClient sets the API client used by seeding operations.
func WithClient(client *apiclient.Client) Option {
	return func(g *Generator) {
		g.client = client
	}
}

// WithTemplates sets the engine used to expand payload placeholders at
// resolve time. Without one, payloads pass through untouched.
func WithTemplates(engine *template.Engine) Option {
	return func(g *Generator) {
		g.templates = engine
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithEndpoints overrides the create, list and clear endpoints. Empty
// strings keep the defaults.
func WithEndpoints(create, list, clear string) Option {
	return func(g *Generator) {
		if create != "" {
			g.createEndpoint = create
		}
		if list != "" {
			g.listEndpoint = list
		}
		if clear != "" {
			g.clearEndpoint = clear
		}
	}
}

// WithIDPath sets a JSONPath expression used to extract fixture IDs from
// list responses instead of shape probing.
func WithIDPath(path string) Option {
	return func(g *Generator) {
		g.idPath = path
	}
}

// New builds a generator for domain. Without WithSet, the fixture data
// registered for the domain is merged in; a domain with no registered data
// starts empty.
func New(domain string, opts ...Option) *Generator {
	g := &Generator{
		domain:         domain,
		logger:         slog.Default(),
		createEndpoint: DefaultCreateEndpoint,
		listEndpoint:   DefaultListEndpoint,
		clearEndpoint:  DefaultClearEndpoint,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.set == nil {
		g.set = fixture.SetsFor(domain)
	}
	return g
}

// Domain returns the generator's domain name.
func (g *Generator) Domain() string {
	return g.domain
}

// Len returns the number of fixtures in the set.
func (g *Generator) Len() int {
	return g.set.Len()
}

// Available describes one fixture for listings.
type Available struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListAvailable returns name and description for every fixture, in set
// order.
func (g *Generator) ListAvailable() []Available {
	defs := g.set.All()
	out := make([]Available, 0, len(defs))
	for _, def := range defs {
		out = append(out, Available{Name: def.Name, Description: def.Describe()})
	}
	return out
}

// Fixtures resolves every fixture in set order. Each element is a payload
// copy with fixture_id injected; stored definitions are never mutated.
func (g *Generator) Fixtures() ([]map[string]any, error) {
	defs := g.set.All()
	out := make([]map[string]any, 0, len(defs))
	for _, def := range defs {
		out = append(out, g.resolve(def))
	}
	return out, nil
}

// FixtureByName resolves a single fixture by name.
func (g *Generator) FixtureByName(name string) (map[string]any, error) {
	def, ok := g.set.Get(name)
	if !ok {
		return nil, &NotFoundError{Name: name, Available: g.set.Names()}
	}
	return g.resolve(def), nil
}

// resolve expands templates on a copy of the payload and injects the
// fixture_id. def is a value, so the stored definition stays untouched.
func (g *Generator) resolve(def fixture.Definition) map[string]any {
	if g.templates != nil {
		def.Payload = g.templates.ExpandMap(def.Payload)
	}
	return def.Resolved()
}

// AddFixture inserts or overwrites a fixture definition.
func (g *Generator) AddFixture(name, description string, config map[string]any) {
	g.set.Add(fixture.Definition{Name: name, Description: description, Payload: config})
}

// Filter narrows the set to the definitions matching f. A nil filter is a
// no-op.
func (g *Generator) Filter(f *fixture.Filter) error {
	kept, err := f.Apply(g.set.All())
	if err != nil {
		return err
	}
	replaced := fixture.NewSet()
	for _, def := range kept {
		replaced.Add(def)
	}
	g.logger.Debug("filtered fixtures", "domain", g.domain, "kept", len(kept), "dropped", g.set.Len()-len(kept))
	g.set = replaced
	return nil
}

// ExportToFile writes the resolved fixtures as an indented JSON array to
// dir/filename, creating dir if needed. Returns the written path.
func (g *Generator) ExportToFile(dir, filename string) (string, error) {
	fixtures, err := g.Fixtures()
	if err != nil {
		return "", err
	}
	data, err := export.Encode(export.FormatJSON, fixtures)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := export.WriteFile(path, data); err != nil {
		return "", err
	}
	g.logger.Debug("exported fixtures", "domain", g.domain, "path", path, "count", len(fixtures))
	return path, nil
}

// ImportFromFile replaces the fixture set with the contents of an exported
// fixture file. Each element is re-keyed by its fixture_id, which must be
// present and non-empty.
func (g *Generator) ImportFromFile(path string) error {
	fixtures, err := export.ReadFixtureFile(path)
	if err != nil {
		return err
	}
	set := fixture.NewSet()
	for i, fx := range fixtures {
		id, _ := fx[fixture.KeyFixtureID].(string)
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("fixture at index %d has no fixture_id", i)
		}
		payload := make(map[string]any, len(fx))
		for k, v := range fx {
			if k == fixture.KeyFixtureID {
				continue
			}
			payload[k] = v
		}
		set.Add(fixture.Definition{Name: id, Payload: payload})
	}
	g.set = set
	g.logger.Debug("imported fixtures", "domain", g.domain, "path", path, "count", set.Len())
	return nil
}
