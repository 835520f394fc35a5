// Package roofline reconciles roofing insurance-claim estimates against a
// measured roof geometry report and a reference price catalog. The Client
// facade wires the price catalog, the adjustment engine, and the
// conformance validator behind functional options.
//
// Example usage:
//
//	cat, err := catalog.LoadFile("roof_master.csv")
//	if err != nil {
//	    return err
//	}
//	client, err := roofline.New(roofline.WithCatalog(cat))
//	if err != nil {
//	    return err
//	}
//	result, err := client.Adjust(ctx, items, measurements)
package roofline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/estimatics/roofline/internal/conformance"
	"github.com/estimatics/roofline/pkg/adjust"
	"github.com/estimatics/roofline/pkg/catalog"
	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/errors"
	"github.com/estimatics/roofline/pkg/logging"
)

// Client is the roofline facade.
type Client interface {
	// Adjust runs the adjustment pipeline over a clone of items.
	Adjust(ctx context.Context, items []claims.LineItem, m claims.Measurements) (*adjust.Result, error)

	// Match returns fuzzy catalog suggestions for a description with no
	// exact catalog entry. An exact match returns that entry with score 1.
	Match(description string) []catalog.Match

	// Validate checks the shipped vocabulary and rule registry against the
	// business master lists.
	Validate() *conformance.Report

	// Catalog returns the reference price catalog.
	Catalog() *catalog.Catalog
}

// client is the concrete Client.
type client struct {
	catalog *catalog.Catalog
	engine  *adjust.Engine
	logger  *zerolog.Logger

	wastePercent float64
}

// Compile-time interface check.
var _ Client = (*client)(nil)

// New creates a Client. A catalog is required, supplied via WithCatalog,
// WithCatalogFile, or WithCatalogEntries.
func New(opts ...Option) (Client, error) {
	c := &client{
		logger: logging.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.catalog == nil || c.catalog.Len() == 0 {
		return nil, errors.ErrEmptyCatalog
	}

	engine, err := adjust.New(c.catalog,
		adjust.WithLogger(c.logger),
		adjust.WithWastePercent(c.wastePercent),
	)
	if err != nil {
		return nil, err
	}
	c.engine = engine
	return c, nil
}

// Adjust implements Client.
func (c *client) Adjust(ctx context.Context, items []claims.LineItem, m claims.Measurements) (*adjust.Result, error) {
	return c.engine.Run(ctx, items, m)
}

// Match implements Client.
func (c *client) Match(description string) []catalog.Match {
	if entry, ok := c.catalog.Lookup(description); ok {
		return []catalog.Match{{Entry: entry, Score: 1}}
	}
	return c.catalog.Suggest(description)
}

// Validate implements Client.
func (c *client) Validate() *conformance.Report {
	return conformance.Validate()
}

// Catalog implements Client.
func (c *client) Catalog() *catalog.Catalog {
	return c.catalog
}
