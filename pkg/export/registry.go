package export

import (
	"fmt"
	"sync"
)

// Encoder serializes resolved fixtures into a format's byte representation.
type Encoder interface {
	Encode(fixtures []map[string]any) ([]byte, error)
}

// Decoder parses a format's byte representation back into fixtures.
type Decoder interface {
	Decode(data []byte) ([]map[string]any, error)
}

type registry struct {
	mu       sync.RWMutex
	encoders map[Format]Encoder
	decoders map[Format]Decoder
}

var defaultRegistry = &registry{
	encoders: make(map[Format]Encoder),
	decoders: make(map[Format]Decoder),
}

// RegisterEncoder installs the encoder for a format. Format files call this
// from init; the last registration wins.
func RegisterEncoder(f Format, e Encoder) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.encoders[f] = e
}

// RegisterDecoder installs the decoder for a format.
func RegisterDecoder(f Format, d Decoder) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.decoders[f] = d
}

func encoderFor(f Format) (Encoder, bool) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	e, ok := defaultRegistry.encoders[f]
	return e, ok
}

func decoderFor(f Format) (Decoder, bool) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	d, ok := defaultRegistry.decoders[f]
	return d, ok
}

// Encode serializes fixtures with the encoder registered for the format.
func Encode(f Format, fixtures []map[string]any) ([]byte, error) {
	e, ok := encoderFor(f)
	if !ok {
		return nil, fmt.Errorf("no encoder registered for format %q", f)
	}
	return e.Encode(fixtures)
}

// Decode parses fixtures with the decoder registered for the format.
func Decode(f Format, data []byte) ([]map[string]any, error) {
	d, ok := decoderFor(f)
	if !ok {
		return nil, fmt.Errorf("%w: %s files cannot be imported", ErrInvalidFormat, f)
	}
	return d.Decode(data)
}
