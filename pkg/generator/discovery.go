package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/seedctl/seedctl/pkg/export"
	"github.com/seedctl/seedctl/pkg/fixture"
)

// fixtureFilePattern matches fixture documents anywhere under the
// discovery root.
const fixtureFilePattern = "**/*_fixtures.{json,yaml,yml}"

// DiscoverDir instantiates the registered generators, then folds in every
// fixture document found under dir. A file's domain is its base name minus
// the _fixtures suffix; same-domain documents merge into the registered
// generator, new domains get a generator of their own. Both document
// layouts are accepted: name-to-descriptor mappings and the fixture
// arrays that generate --split-dir writes. Files that fail to parse are
// logged and skipped. An empty dir skips discovery entirely.
func DiscoverDir(dir string, opts ...Option) ([]Named, error) {
	named := All(opts...)
	if dir == "" {
		return named, nil
	}
	log := optionsLogger(opts)

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixtures directory not found: %s", dir)
		}
		return nil, fmt.Errorf("failed to stat fixtures directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixtures path is not a directory: %s", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), fixtureFilePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan fixtures directory: %w", err)
	}
	sort.Strings(matches)

	index := make(map[string]int, len(named))
	for i, n := range named {
		index[n.Domain] = i
	}

	for _, match := range matches {
		path := filepath.Join(dir, match)
		doc, err := export.ReadDocument(path)
		if err != nil {
			log.Warn("skipping fixture file", "path", path, "error", err)
			continue
		}

		domain := domainFromFilename(match)
		i, ok := index[domain]
		if !ok {
			named = append(named, Named{Domain: domain, Generator: New(domain, opts...)})
			i = len(named) - 1
			index[domain] = i
		}

		set := named[i].Generator.set
		for _, name := range doc.Names {
			set.Add(fixture.FromRaw(name, doc.Entries[name]))
		}
		log.Debug("loaded fixture file", "path", path, "domain", domain, "fixtures", len(doc.Names))
	}
	return named, nil
}

// domainFromFilename derives a domain from a fixture file name:
// "devices_fixtures.json" becomes "devices".
func domainFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	domain := strings.TrimSuffix(stem, "_fixtures")
	if domain == "" {
		return stem
	}
	return domain
}
