package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formschema/pkg/catalog"
)

// Options configures a Model. Zero values fall back to a UUID id generator,
// the wall clock, and the default catalog.
type Options struct {
	// Clock supplies the "current time" used only for metadata stamping. The
	// engine never reads the clock for behaviour, keeping evaluation
	// deterministic for a fixed input.
	Clock func() time.Time
	// NewID generates fresh unique field/schema ids.
	NewID func() string
	// Catalog supplies per-type defaults for new fields.
	Catalog *catalog.Catalog
}

// Option mutates Options.
type Option func(*Options)

// WithClock injects the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// WithIDGenerator injects the id generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *Options) {
		if newID != nil {
			o.NewID = newID
		}
	}
}

// WithCatalog injects the field type catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *Options) {
		if c != nil {
			o.Catalog = c
		}
	}
}

func defaultOptions() Options {
	return Options{
		Clock:   time.Now,
		NewID:   func() string { return uuid.NewString() },
		Catalog: catalog.Default(),
	}
}
