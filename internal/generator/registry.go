package generator

import (
	"fmt"
	"io"
	"time"
)

// Registry maps each Format to its generator.
type Registry map[Format]Generator

// NewRegistry builds one ULIDGenerator per format. They share clock and
// entropy; entropy is locked once for all of them.
func NewRegistry(clock func() time.Time, entropy io.Reader) (Registry, error) {
	opts := Options{Clock: clock}
	if entropy != nil {
		opts.Entropy = lock(entropy)
	}

	reg := make(Registry, len(Formats))
	for _, f := range Formats {
		opts.Format = f
		g, err := NewULIDGenerator(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s generator: %w", f, err)
		}
		reg[f] = g
	}
	return reg, nil
}

// Get returns the generator for the named format.
func (r Registry) Get(name string) (Generator, Format, error) {
	f, err := ParseFormat(name)
	if err != nil {
		return nil, "", err
	}
	g, ok := r[f]
	if !ok {
		return nil, "", fmt.Errorf("unknown ID format: %q", name)
	}
	return g, f, nil
}
