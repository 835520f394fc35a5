package cmd

import (
	"github.com/estimatics/roofline"
	"github.com/estimatics/roofline/cmd/roofline/app"
)

// newClient builds a roofline client from the application configuration.
func newClient(a *app.App) (roofline.Client, error) {
	return roofline.New(
		roofline.WithCatalogFile(a.Config.CatalogPath),
		roofline.WithWastePercent(a.Config.WastePercent),
		roofline.WithLogger(a.Logger()),
	)
}
