package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed fixture document: top-level keys are fixture names,
// preserved in file order, each mapping to its raw descriptor.
type Document struct {
	Names   []string
	Entries map[string]map[string]any
}

// ParseDocument parses a fixture document in the given format, preserving
// the order fixture names appear in the file. Two layouts are accepted: a
// name-to-descriptor mapping, and an array of resolved fixtures as written
// by export, where each element is re-keyed by its fixture_id.
func ParseDocument(f Format, data []byte) (*Document, error) {
	switch f {
	case FormatJSON:
		return parseJSONDocument(data)
	case FormatYAML:
		return parseYAMLDocument(data)
	default:
		return nil, fmt.Errorf("%w: %s documents are not supported", ErrInvalidFormat, f)
	}
}

// parseJSONDocument walks the token stream instead of unmarshaling into a
// map, which would lose the order names appear in the file.
func parseJSONDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	delim, ok := tok.(json.Delim)
	if ok && delim == '[' {
		var elems []map[string]any
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return documentFromList(elems)
	}
	if !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected an object of fixture descriptors or an array of fixtures", ErrInvalidFormat)
	}

	doc := &Document{Entries: make(map[string]map[string]any)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: fixture names must be strings", ErrInvalidFormat)
		}
		var descriptor map[string]any
		if err := dec.Decode(&descriptor); err != nil {
			return nil, fmt.Errorf("%w: fixture %q: %v", ErrInvalidFormat, name, err)
		}
		if _, seen := doc.Entries[name]; !seen {
			doc.Names = append(doc.Names, name)
		}
		doc.Entries[name] = descriptor
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(root.Content) == 0 {
		return &Document{Entries: make(map[string]map[string]any)}, nil
	}
	mapping := root.Content[0]
	if mapping.Kind == yaml.SequenceNode {
		var elems []map[string]any
		if err := mapping.Decode(&elems); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return documentFromList(elems)
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping of fixture descriptors or a sequence of fixtures", ErrInvalidFormat)
	}

	doc := &Document{Entries: make(map[string]map[string]any)}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]
		name := keyNode.Value
		var descriptor map[string]any
		if err := valNode.Decode(&descriptor); err != nil {
			return nil, fmt.Errorf("%w: fixture %q: %v", ErrInvalidFormat, name, err)
		}
		if _, seen := doc.Entries[name]; !seen {
			doc.Names = append(doc.Names, name)
		}
		doc.Entries[name] = descriptor
	}
	return doc, nil
}

// documentFromList rebuilds a Document from an exported fixture array,
// naming each entry by its fixture_id. This is what lets split export
// output round-trip through file discovery.
func documentFromList(elems []map[string]any) (*Document, error) {
	doc := &Document{Entries: make(map[string]map[string]any, len(elems))}
	for i, elem := range elems {
		id, _ := elem["fixture_id"].(string)
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: fixture at index %d has no fixture_id", ErrInvalidFormat, i)
		}
		descriptor := make(map[string]any, len(elem))
		for k, v := range elem {
			if k == "fixture_id" {
				continue
			}
			descriptor[k] = v
		}
		if _, seen := doc.Entries[id]; !seen {
			doc.Names = append(doc.Names, id)
		}
		doc.Entries[id] = descriptor
	}
	return doc, nil
}
