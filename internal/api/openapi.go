package api

import (
	"net/http"

	"github.com/JaimeStill/cordon/internal/config"
	"github.com/JaimeStill/cordon/pkg/openapi"
)

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec("Cordon API", cfg.Version)
	spec.SetDescription("Classification marking registry and clearance grant service.")
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Token": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"token":       {Type: "string", Example: "ALPHA"},
				"kind":        {Type: "string", Enum: []any{"level", "compartment"}},
				"description": {Type: "string"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"CreateToken": {
			Type:     "object",
			Required: []string{"token", "kind"},
			Properties: map[string]*openapi.Schema{
				"token":       {Type: "string", Example: "ALPHA"},
				"kind":        {Type: "string", Enum: []any{"level", "compartment"}},
				"description": {Type: "string"},
			},
		},
		"Grant": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"subject":     {Type: "string", Example: "analyst-7"},
				"level":       {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"compartment": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"CreateGrant": {
			Type:     "object",
			Required: []string{"subject", "marking"},
			Properties: map[string]*openapi.Schema{
				"subject": {Type: "string", Example: "analyst-7"},
				"marking": {Type: "string", Example: "(ALPHA/BRAVO//GAMMA)"},
			},
		},
		"UpdateGrant": {
			Type:     "object",
			Required: []string{"marking"},
			Properties: map[string]*openapi.Schema{
				"marking": {Type: "string", Example: "(ALPHA//GAMMA)"},
			},
		},
		"CheckResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"subject":   {Type: "string"},
				"requested": {Type: "string", Example: "(ALPHA//GAMMA)"},
				"clearance": {Type: "string", Example: "(ALPHA/BRAVO//GAMMA)"},
				"granted":   {Type: "boolean"},
			},
		},
	})

	spec.Paths["/tokens"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List registered tokens",
			Tags:    []string{"tokens"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("kind", "string", "Filter by token kind", false),
			},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated token list", "Token"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Register a token",
			Tags:        []string{"tokens"},
			RequestBody: openapi.RequestBodyJSON("CreateToken", true),
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Created token", "Token"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
				http.StatusConflict:   openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/tokens/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a token by id",
			Tags:       []string{"tokens"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Token identifier")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Token", "Token"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a token",
			Tags:       []string{"tokens"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Token identifier")},
			Responses: map[int]*openapi.Response{
				http.StatusNoContent: {Description: "Deleted"},
				http.StatusNotFound:  openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/grants"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List grants",
			Tags:    []string{"grants"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated grant list", "Grant"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Record a grant",
			Tags:        []string{"grants"},
			RequestBody: openapi.RequestBodyJSON("CreateGrant", true),
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Created grant", "Grant"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
				http.StatusConflict:   openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/grants/subject/{subject}/check"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Check a subject's access to a marking",
			Tags:    []string{"grants"},
			Parameters: []*openapi.Parameter{
				{
					Name:        "subject",
					In:          "path",
					Required:    true,
					Description: "Subject identifier",
					Schema:      &openapi.Schema{Type: "string"},
				},
				openapi.QueryParam("marking", "string", "Requested marking text", true),
			},
			Responses: map[int]*openapi.Response{
				http.StatusOK:         openapi.ResponseJSON("Check outcome", "CheckResult"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	return spec
}
