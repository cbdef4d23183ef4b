package export

import (
	"fmt"
	"go/format"
	"math"
	"sort"
	"strconv"
	"strings"
)

// goEncoder renders fixtures as a Go source file with a package-level
// literal, for embedding seed data directly in test helpers.
type goEncoder struct{}

func init() {
	RegisterEncoder(FormatGo, goEncoder{})
}

func (goEncoder) Encode(fixtures []map[string]any) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by seedctl. DO NOT EDIT.\n\n")
	b.WriteString("package fixtures\n\n")
	b.WriteString("var fixtures = []map[string]any{\n")
	for _, fx := range fixtures {
		b.WriteString("\t{\n")
		writeMapBody(&b, fx, 2)
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// writeMapBody emits the entries of a map literal in sorted key order so
// repeated exports of the same fixtures produce identical files.
func writeMapBody(b *strings.Builder, m map[string]any, depth int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	indent := strings.Repeat("\t", depth)
	for _, k := range keys {
		b.WriteString(indent)
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		writeValue(b, m[k], depth)
		b.WriteString(",\n")
	}
}

func writeValue(b *strings.Builder, v any, depth int) {
	switch val := v.(type) {
	case nil:
		b.WriteString("nil")
	case string:
		b.WriteString(strconv.Quote(val))
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case int:
		b.WriteString(strconv.Itoa(val))
	case int64:
		b.WriteString(strconv.FormatInt(val, 10))
	case float64:
		// JSON decoding yields float64 for every number; print whole
		// values as integer literals.
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			b.WriteString(strconv.FormatInt(int64(val), 10))
		} else {
			b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
		}
	case map[string]any:
		b.WriteString("map[string]any{\n")
		writeMapBody(b, val, depth+1)
		b.WriteString(strings.Repeat("\t", depth))
		b.WriteString("}")
	case []any:
		b.WriteString("[]any{\n")
		indent := strings.Repeat("\t", depth+1)
		for _, item := range val {
			b.WriteString(indent)
			writeValue(b, item, depth+1)
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat("\t", depth))
		b.WriteString("}")
	case []string:
		b.WriteString("[]string{\n")
		indent := strings.Repeat("\t", depth+1)
		for _, item := range val {
			b.WriteString(indent)
			b.WriteString(strconv.Quote(item))
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat("\t", depth))
		b.WriteString("}")
	default:
		fmt.Fprintf(b, "%#v", val)
	}
}
