package api

import (
	"github.com/JaimeStill/cordon/internal/grants"
	"github.com/JaimeStill/cordon/internal/registry"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Registry registry.System
	Grants   grants.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	registrySystem := registry.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	grantsSystem := grants.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Registry: registrySystem,
		Grants:   grantsSystem,
	}
}
