// Package docs provides the swagger definition served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/companies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "List companies",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "industry", "in": "query"},
                    {"type": "string", "name": "country", "in": "query"},
                    {"type": "string", "name": "size_category", "in": "query"},
                    {"type": "string", "name": "revenue_tier", "in": "query"},
                    {"type": "string", "name": "pe_firm", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "is_public", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/companies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Get a company",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Update a company (admin)",
                "parameters": [
                    {"type": "string", "name": "X-Admin-Key", "in": "header", "required": true},
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Delete a company (admin)",
                "parameters": [
                    {"type": "string", "name": "X-Admin-Key", "in": "header", "required": true},
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/investments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "List investments",
                "parameters": [
                    {"type": "string", "name": "pe_firm", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "exit_type", "in": "query"},
                    {"type": "string", "name": "industry", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/pe-firms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pe-firms"],
                "summary": "List PE firms",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Dashboard stats",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Filter values",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PE Portfolio Aggregator API",
	Description:      "REST API over aggregated PE/VC portfolio company data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
