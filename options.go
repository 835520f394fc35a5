package roofline

import (
	"github.com/rs/zerolog"

	"github.com/estimatics/roofline/pkg/catalog"
	"github.com/estimatics/roofline/pkg/errors"
	"github.com/estimatics/roofline/pkg/logging"
)

// Option configures a Client.
type Option func(*client) error

// WithCatalog sets the reference price catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cl *client) error {
		if c == nil {
			return errors.NewValidationError("catalog", nil, "cannot be nil")
		}
		cl.catalog = c
		return nil
	}
}

// WithCatalogFile loads the reference price catalog from a CSV or YAML file.
func WithCatalogFile(path string) Option {
	return func(cl *client) error {
		c, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		cl.catalog = c
		return nil
	}
}

// WithCatalogEntries builds the reference price catalog from entries.
func WithCatalogEntries(entries ...catalog.Entry) Option {
	return func(cl *client) error {
		cl.catalog = catalog.New(entries...)
		return nil
	}
}

// WithLogger sets the client logger. A nil logger restores the default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(cl *client) error {
		if logger == nil {
			logger = logging.Default()
		}
		cl.logger = logger
		return nil
	}
}

// WithWastePercent sets the installation waste factor applied to shingle
// quantity floors, as a fraction (0.10 for 10% waste).
func WithWastePercent(p float64) Option {
	return func(cl *client) error {
		if p < 0 || p > 1 {
			return errors.NewValidationError("waste_percent", p, "must be between 0 and 1")
		}
		cl.wastePercent = p
		return nil
	}
}
