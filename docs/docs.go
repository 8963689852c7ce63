// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/brands": {
            "get": {
                "tags": ["brands"],
                "summary": "List brands",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "category", "in": "query"},
                    {"type": "boolean", "name": "eco_champion", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "default": 16, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/api/brands/search": {
            "get": {
                "tags": ["brands"],
                "summary": "Search brands by name",
                "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/api/brands/{identifier}": {
            "get": {
                "tags": ["brands"],
                "summary": "Get a brand by slug or record id",
                "parameters": [{"type": "string", "name": "identifier", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/api/categories": {
            "get": {"tags": ["catalog"], "summary": "Quick filter entries in display order", "responses": {"200": {"description": "OK"}}}
        },
        "/api/features": {
            "get": {"tags": ["catalog"], "summary": "Sustainable feature tags with icons", "responses": {"200": {"description": "OK"}}}
        },
        "/api/marketplaces": {
            "get": {"tags": ["catalog"], "summary": "Supported marketplaces", "responses": {"200": {"description": "OK"}}}
        },
        "/api/airtable/test": {
            "get": {"tags": ["ops"], "summary": "Probe the Airtable connection", "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}}
        },
        "/api/suggestions": {
            "post": {
                "tags": ["suggestions"],
                "summary": "Suggest a brand",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SuggestionInput"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "429": {"description": "Too Many Requests"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/api/admin/brands": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Create a brand",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/admin/brands/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Update brand fields",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Delete a brand",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/admin/brands/{id}/images": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Upload a brand image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "enum": ["logo", "cover", "gallery", "founder"], "name": "kind", "in": "query", "required": true},
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/api/admin/suggestions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List recorded suggestions",
                "parameters": [
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "service.SuggestionInput": {
            "type": "object",
            "properties": {
                "brand_name": {"type": "string"},
                "website": {"type": "string"},
                "submitter_name": {"type": "string"},
                "submitter_email": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EcoBrands API",
	Description:      "Directory of sustainable brands backed by Airtable.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
