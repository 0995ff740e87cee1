// Package swagger registers the OpenAPI document for the catalog mirror.
package swagger

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
        "/categories": {
            "get": {
                "description": "Lists the cached categories in position order. With refresh=true the listing is fetched first.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List Categories",
                "parameters": [
                    {"type": "boolean", "description": "Fetch from emoji.gg first", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Categories", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": true}}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/categories/{index}": {
            "get": {
                "description": "Returns the category currently at the given index. Never fetches.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get Category",
                "parameters": [
                    {"type": "integer", "description": "Category index", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Category", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Invalid index", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/emojis": {
            "get": {
                "description": "Lists the cached emojis ordered by id. With refresh=true the collection is fetched first and returned in remote order.",
                "produces": ["application/json"],
                "tags": ["emojis"],
                "summary": "List Emojis",
                "parameters": [
                    {"type": "boolean", "description": "Fetch from emoji.gg first", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Emojis", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": true}}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/emojis/{id}": {
            "get": {
                "description": "Returns the emoji with the given id. On a cache miss the emoji collection is fetched once.",
                "produces": ["application/json"],
                "tags": ["emojis"],
                "summary": "Get Emoji",
                "parameters": [
                    {"type": "integer", "description": "Emoji ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Emoji", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Invalid ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/packs": {
            "get": {
                "description": "Lists the cached emoji packs ordered by id. With refresh=true the collection is fetched first.",
                "produces": ["application/json"],
                "tags": ["packs"],
                "summary": "List Packs",
                "parameters": [
                    {"type": "boolean", "description": "Fetch from emoji.gg first", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Packs", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": true}}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/packs/{id}": {
            "get": {
                "description": "Returns the pack with the given id. On a cache miss the pack collection is fetched once.",
                "produces": ["application/json"],
                "tags": ["packs"],
                "summary": "Get Pack",
                "parameters": [
                    {"type": "integer", "description": "Pack ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Pack", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Invalid ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/refresh": {
            "post": {
                "description": "Fetches emojis, packs and categories concurrently and reconciles them into the caches.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Refresh Caches",
                "responses": {
                    "200": {"description": "Refreshed counts", "schema": {"$ref": "#/definitions/catalog.Summary"}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/snapshot": {
            "post": {
                "description": "Writes the cached emojis, packs and categories as one JSON object to the snapshot bucket. Does not fetch from emoji.gg.",
                "produces": ["application/json"],
                "tags": ["snapshot"],
                "summary": "Export Snapshot",
                "responses": {
                    "201": {"description": "Written snapshot", "schema": {"$ref": "#/definitions/snapshot.Result"}},
                    "500": {"description": "Storage Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/snapshots": {
            "get": {
                "description": "Lists the snapshot objects in the bucket, oldest first.",
                "produces": ["application/json"],
                "tags": ["snapshot"],
                "summary": "List Snapshots",
                "responses": {
                    "200": {"description": "Snapshots", "schema": {"type": "array", "items": {"$ref": "#/definitions/snapshot.Object"}}},
                    "500": {"description": "Storage Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/stats": {
            "get": {
                "description": "Fetches the current emoji.gg statistics. Statistics are never cached.",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Site Statistics",
                "responses": {
                    "200": {"description": "Statistics", "schema": {"$ref": "#/definitions/model.PageStats"}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Summary": {
            "type": "object",
            "properties": {
                "categories": {"type": "integer"},
                "emojis": {"type": "integer"},
                "packs": {"type": "integer"}
            }
        },
        "model.PageStats": {
            "type": "object",
            "properties": {
                "emoji": {"type": "integer"},
                "faves": {"type": "integer"},
                "pending_approvals": {"type": "integer"},
                "users": {"type": "integer"}
            }
        },
        "snapshot.Object": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "last_modified": {"type": "string"},
                "size": {"type": "integer"}
            }
        },
        "snapshot.Result": {
            "type": "object",
            "properties": {
                "categories": {"type": "integer"},
                "created_at": {"type": "string"},
                "emojis": {"type": "integer"},
                "object": {"type": "string"},
                "packs": {"type": "integer"},
                "pruned": {"type": "array", "items": {"type": "string"}},
                "size": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Emoji Catalog API",
	Description:      "Read-only mirror of the emoji.gg catalog backed by an in-memory cache.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
