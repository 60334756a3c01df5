// Package docs registers the OpenAPI description served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/actors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["actors"],
                "summary": "List actors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Actor"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["actors"],
                "summary": "Create an actor",
                "parameters": [
                    {"description": "Actor", "name": "actor", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ActorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.ActorCreatedResponse"}},
                    "400": {"description": "Missing or invalid field", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/actors/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["actors"],
                "summary": "Get actor by ID",
                "parameters": [
                    {"type": "integer", "description": "Actor ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Actor"}},
                    "404": {"description": "Actor not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["actors"],
                "summary": "Replace an actor",
                "parameters": [
                    {"type": "integer", "description": "Actor ID", "name": "id", "in": "path", "required": true},
                    {"description": "Actor", "name": "actor", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ActorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Actor not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["actors"],
                "summary": "Delete an actor",
                "parameters": [
                    {"type": "integer", "description": "Actor ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Actor not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/divide": {
            "get": {
                "produces": ["application/json"],
                "tags": ["utility"],
                "summary": "Divide two numbers",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "x", "in": "query"},
                    {"type": "integer", "default": 1, "name": "y", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "number"}}}
            }
        },
        "/geocode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["utility"],
                "summary": "Reverse geocode a coordinate",
                "parameters": [
                    {"type": "number", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Upstream payload"},
                    "502": {"description": "Upstream unavailable", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Movie"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Create a movie",
                "parameters": [
                    {"description": "Movie", "name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MovieRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.MovieCreatedResponse"}},
                    "400": {"description": "Missing or invalid field", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Delete every movie",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MoviesDeletedResponse"}}
                }
            }
        },
        "/movies/import": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Import legacy movie rows",
                "parameters": [
                    {"type": "string", "description": "Object key in the import bucket", "name": "object", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ImportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "500": {"description": "Store failure; earlier rows stay committed", "schema": {"$ref": "#/definitions/handlers.ImportFailedResponse"}},
                    "502": {"description": "Object storage unavailable", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/movies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get movie by ID",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Movie"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Replace a movie",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"description": "Movie", "name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MovieRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Delete a movie",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/movies/{id}/actors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List the actors of a movie",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Actor"}}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/multiply": {
            "get": {
                "produces": ["application/json"],
                "tags": ["utility"],
                "summary": "Multiply two numbers",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "x", "in": "query"},
                    {"type": "integer", "default": 1, "name": "y", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "integer"}}}
            }
        },
        "/subtract": {
            "get": {
                "produces": ["application/json"],
                "tags": ["utility"],
                "summary": "Subtract two numbers",
                "parameters": [
                    {"type": "integer", "default": 0, "name": "x", "in": "query"},
                    {"type": "integer", "default": 10, "name": "y", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "integer"}}}
            }
        },
        "/sum": {
            "get": {
                "produces": ["application/json"],
                "tags": ["utility"],
                "summary": "Add two numbers",
                "parameters": [
                    {"type": "integer", "default": 0, "name": "x", "in": "query"},
                    {"type": "integer", "default": 10, "name": "y", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "integer"}}}
            }
        }
    },
    "definitions": {
        "handlers.ActorCreatedResponse": {
            "type": "object",
            "properties": {
                "actor_id": {"type": "integer", "example": 1},
                "message": {"type": "string", "example": "Actor added successfully"}
            }
        },
        "handlers.ActorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Tom"},
                "surname": {"type": "string", "example": "Hardy"}
            }
        },
        "handlers.ImportFailedResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 500},
                "errors": {"type": "array", "items": {"type": "string"}},
                "imported": {"type": "integer", "example": 1},
                "message": {"type": "string", "example": "database error"},
                "movie_ids": {"type": "array", "items": {"type": "integer"}},
                "skipped": {"type": "integer"},
                "status": {"type": "string", "example": "fail"}
            }
        },
        "handlers.ImportResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "imported": {"type": "integer"},
                "message": {"type": "string"},
                "movie_ids": {"type": "array", "items": {"type": "integer"}},
                "skipped": {"type": "integer"}
            }
        },
        "handlers.MovieCreatedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Movie added successfully"},
                "movie_id": {"type": "integer", "example": 1}
            }
        },
        "handlers.MovieRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "director": {"type": "string", "example": "Nolan"},
                "title": {"type": "string", "example": "Inception"},
                "year": {"type": "integer", "example": 2010}
            }
        },
        "handlers.MoviesDeletedResponse": {
            "type": "object",
            "properties": {
                "deleted_count": {"type": "integer"},
                "message": {"type": "string", "example": "All movies deleted successfully"}
            }
        },
        "models.Actor": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "surname": {"type": "string"}
            }
        },
        "models.Movie": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "director": {"type": "string"},
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "utils.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 404},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string", "example": "movie 1 not found"},
                "status": {"type": "string", "example": "error"}
            }
        },
        "utils.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Movie 1 updated successfully"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Movie Catalog API",
	Description:      "CRUD API over movies and actors with a many-to-many cast relationship, plus arithmetic helpers and a reverse-geocoding proxy",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
