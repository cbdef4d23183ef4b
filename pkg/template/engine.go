package template

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seedctl/seedctl/pkg/logging"
)

// Engine expands {{expression}} placeholders inside fixture payload
// values. Expansion happens on resolved copies, so stored definitions
// keep their placeholders and every resolve produces fresh values.
type Engine struct {
	sequences *SequenceStore
	jwtSecret []byte
	jwtTTL    time.Duration
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithJWTSecret sets the HS256 signing secret for {{jwt(...)}} tokens.
func WithJWTSecret(secret string) Option {
	return func(e *Engine) {
		if secret != "" {
			e.jwtSecret = []byte(secret)
		}
	}
}

// WithJWTTTL sets the default lifetime of {{jwt(...)}} tokens.
func WithJWTTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.jwtTTL = ttl
		}
	}
}

// WithLogger sets the logger used for unknown-expression warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSequences attaches a shared sequence store, letting several
// engines hand out values from the same counters.
func WithSequences(store *SequenceStore) Option {
	return func(e *Engine) {
		if store != nil {
			e.sequences = store
		}
	}
}

// New creates a template engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		sequences: NewSequenceStore(),
		jwtSecret: []byte(DefaultJWTSecret),
		jwtTTL:    DefaultJWTTTL,
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// templateRegex matches {{expression}} patterns with optional whitespace.
var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// Compiled patterns for function-call expressions.
var (
	// random.int(min, max)
	randomIntPattern = regexp.MustCompile(`^random\.int\((-?\d+),\s*(-?\d+)\)$`)
	// random.choice(a|b|c)
	randomChoicePattern = regexp.MustCompile(`^random\.choice\(([^)]+)\)$`)
	// sequence("name") or sequence("name", start)
	sequencePattern = regexp.MustCompile(`^sequence\("([^"]+)"(?:,\s*(-?\d+))?\)$`)
	// now+1h, now-30m
	nowOffsetPattern = regexp.MustCompile(`^now([+-].+)$`)
	// jwt(sub) or jwt(sub, ttl)
	jwtPattern = regexp.MustCompile(`^jwt\(([^)]*)\)$`)
)

// Expand walks a JSON-compatible value and expands placeholders in every
// string it contains. Maps and slices are copied, never mutated.
func (e *Engine) Expand(value any) any {
	switch v := value.(type) {
	case string:
		return e.expandString(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = e.Expand(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = e.Expand(item)
		}
		return out
	default:
		return value
	}
}

// ExpandMap expands a payload map. Convenience wrapper around Expand.
func (e *Engine) ExpandMap(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	expanded, _ := e.Expand(payload).(map[string]any)
	return expanded
}

// expandString expands placeholders in one string. A string that is
// exactly one placeholder keeps the expression's native type, so
// "{{random.int(1,5)}}" becomes an int. Mixed text interpolates the
// stringified values.
func (e *Engine) expandString(s string) any {
	matches := templateRegex.FindStringSubmatch(s)
	if matches != nil && matches[0] == s {
		if value, ok := e.evaluate(matches[1]); ok {
			return value
		}
		e.logger.Warn("unknown template expression", "expression", matches[1])
		return s
	}

	return templateRegex.ReplaceAllStringFunc(s, func(match string) string {
		inner := templateRegex.FindStringSubmatch(match)
		if len(inner) < 2 {
			return match
		}
		value, ok := e.evaluate(inner[1])
		if !ok {
			e.logger.Warn("unknown template expression", "expression", inner[1])
			return match
		}
		return fmt.Sprint(value)
	})
}

// evaluate resolves a single expression. The second return is false for
// expressions the engine does not understand; those stay in the output
// untouched.
func (e *Engine) evaluate(expression string) (any, bool) {
	expression = strings.TrimSpace(expression)

	switch expression {
	case "uuid":
		return uuid.New().String(), true
	case "uuid.short":
		return uuid.New().String()[:8], true
	case "now":
		return time.Now().UTC().Format(time.RFC3339), true
	case "timestamp":
		return time.Now().Unix(), true
	case "timestamp.ms":
		return time.Now().UnixMilli(), true
	case "seq":
		return e.sequences.Next("default", 1), true
	case "jwt":
		return e.mintJWT("", 0), true
	}

	if m := nowOffsetPattern.FindStringSubmatch(expression); m != nil {
		if d, err := time.ParseDuration(m[1]); err == nil {
			return time.Now().UTC().Add(d).Format(time.RFC3339), true
		}
		return nil, false
	}

	if m := randomIntPattern.FindStringSubmatch(expression); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return randomInt(lo, hi), true
	}

	if m := randomChoicePattern.FindStringSubmatch(expression); m != nil {
		return randomChoice(strings.Split(m[1], "|")), true
	}

	if m := sequencePattern.FindStringSubmatch(expression); m != nil {
		start := int64(1)
		if m[2] != "" {
			start, _ = strconv.ParseInt(m[2], 10, 64)
		}
		return e.sequences.Next(m[1], start), true
	}

	if m := jwtPattern.FindStringSubmatch(expression); m != nil {
		sub, ttl := parseJWTArgs(m[1])
		return e.mintJWT(sub, ttl), true
	}

	return nil, false
}

func parseJWTArgs(args string) (sub string, ttl time.Duration) {
	parts := strings.Split(args, ",")
	if len(parts) > 0 {
		sub = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		if d, err := time.ParseDuration(strings.TrimSpace(parts[1])); err == nil {
			ttl = d
		}
	}
	return sub, ttl
}
