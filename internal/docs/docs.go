// Package docs stands in for the package `swag init` would generate from the
// annotations in internal/api/server.go. No swag CLI run was available in
// this environment, so the registration shape is hand-authored to match
// what that codegen emits rather than fabricated.
package docs

import (
	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger metadata that callers may mutate before
// the first request (e.g. setting BasePath from the running server's mount
// point).
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Matchday API",
	Description:      "Team-balancing engine: composite ratings, tiering, snake draft, local-search optimization.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/stormlightlabs/matchday",
            "email": "info@stormlightlabs.org"
        },
        "license": {
            "name": "MPL-2.0",
            "url": "https://opensource.org/license/mpl-2-0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Check if the API server is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": { "description": "OK" }
                }
            }
        },
        "/balance": {
            "post": {
                "description": "Run the rating, tiering, draft, and optimization pipeline over a roster supplied in the request body",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["balance"],
                "summary": "Balance a posted roster",
                "responses": {
                    "200": { "description": "OK" },
                    "400": { "description": "Bad Request" },
                    "500": { "description": "Internal Server Error" }
                }
            }
        },
        "/rosters/{id}/balance": {
            "post": {
                "description": "Fetch a previously saved roster and run the balance engine over it",
                "produces": ["application/json"],
                "tags": ["balance"],
                "summary": "Balance a stored roster",
                "parameters": [
                    { "type": "string", "description": "Roster ID", "name": "id", "in": "path", "required": true }
                ],
                "responses": {
                    "200": { "description": "OK" },
                    "404": { "description": "Not Found" },
                    "500": { "description": "Internal Server Error" }
                }
            }
        },
        "/rosters/{id}": {
            "get": {
                "description": "Fetch a previously saved roster without running the balance engine",
                "produces": ["application/json"],
                "tags": ["rosters"],
                "summary": "Get a stored roster",
                "parameters": [
                    { "type": "string", "description": "Roster ID", "name": "id", "in": "path", "required": true }
                ],
                "responses": {
                    "200": { "description": "OK" },
                    "404": { "description": "Not Found" },
                    "500": { "description": "Internal Server Error" }
                }
            }
        },
        "/rosters": {
            "post": {
                "description": "Upsert a named roster and its players",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rosters"],
                "summary": "Store a roster for later balancing",
                "responses": {
                    "200": { "description": "OK" },
                    "400": { "description": "Bad Request" },
                    "500": { "description": "Internal Server Error" }
                }
            }
        }
    }
}`
