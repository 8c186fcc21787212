package api

import (
	"net/http"

	"github.com/JaimeStill/cordon/pkg/openapi"
	"github.com/JaimeStill/cordon/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	specBytes []byte,
) {
	routes.Register(
		mux,
		domain.Registry.Handler().Routes(),
		domain.Grants.Handler().Routes(),
	)

	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))
}
