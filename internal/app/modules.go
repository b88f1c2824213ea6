package app

import (
	"github.com/nfrund/sevahub/internal/module"
	"github.com/nfrund/sevahub/internal/modules/ngo"
	"github.com/nfrund/sevahub/internal/modules/volunteer"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		volunteer.New(volunteer.Dependencies{
			Sessions:  deps.Sessions,
			Fetcher:   deps.Fetcher,
			Catalog:   deps.Catalog,
			Publisher: deps.Publisher,
		}),
		ngo.New(ngo.Dependencies{
			Sessions:  deps.Sessions,
			Fetcher:   deps.Fetcher,
			Catalog:   deps.Catalog,
			Publisher: deps.Publisher,
		}),
	}
}
