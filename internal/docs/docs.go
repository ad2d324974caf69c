// Package docs holds the OpenAPI document served under /swagger. It follows the
// layout swag init emits so it can be regenerated from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Bookverse maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
    "/authors": {
        "get": {
            "description": "List authors, newest first, optionally filtered by active flag and name",
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "List authors",
            "parameters": [
                {
                    "type": "boolean",
                    "description": "Filter by active flag",
                    "name": "active",
                    "in": "query"
                },
                {
                    "type": "string",
                    "description": "Case-insensitive name search",
                    "name": "q",
                    "in": "query"
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.ListAuthorsResponse"
                    }
                },
                "400": {
                    "description": "Invalid query parameters",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        },
        "post": {
            "description": "Create a new author. Accepts JSON, or multipart/form-data with an optional \"image\" file.",
            "consumes": [
                "application/json",
                "multipart/form-data"
            ],
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "Create an author",
            "parameters": [
                {
                    "description": "Author to create",
                    "name": "payload",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "$ref": "#/definitions/handler.CreateAuthorRequest"
                    }
                }
            ],
            "responses": {
                "201": {
                    "description": "Created",
                    "schema": {
                        "$ref": "#/definitions/handler.AuthorResponse"
                    }
                },
                "400": {
                    "description": "Validation error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "409": {
                    "description": "Author already exists",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "413": {
                    "description": "Image too large",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/authors/active": {
        "get": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "List active authors",
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.ListAuthorsResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/authors/inactive": {
        "get": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "List inactive authors",
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.ListAuthorsResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/authors/search/{keyword}": {
        "get": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "Search authors by name",
            "parameters": [
                {
                    "type": "string",
                    "description": "Case-insensitive substring of the name",
                    "name": "keyword",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.ListAuthorsResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/authors/{id}": {
        "get": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "Get author by ID",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Author ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.AuthorResponse"
                    }
                },
                "400": {
                    "description": "Invalid ID",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Author not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        },
        "patch": {
            "description": "Partially update an author. Accepts JSON, or multipart/form-data with an optional \"image\" file.",
            "consumes": [
                "application/json",
                "multipart/form-data"
            ],
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "Update an author",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Author ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                },
                {
                    "description": "Author fields to update",
                    "name": "payload",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "$ref": "#/definitions/handler.UpdateAuthorRequest"
                    }
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.AuthorResponse"
                    }
                },
                "400": {
                    "description": "Invalid ID or validation error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Author not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "409": {
                    "description": "Name taken by another author",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        },
        "delete": {
            "description": "Delete an author and its books",
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "Delete an author",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Author ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "204": {
                    "description": "No Content"
                },
                "400": {
                    "description": "Invalid ID",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Author not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/authors/{id}/active": {
        "put": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "Mark an author active",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Author ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.AuthorStatusResponse"
                    }
                },
                "400": {
                    "description": "Invalid ID",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Author not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/authors/{id}/inactive": {
        "put": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "Mark an author inactive",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Author ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.AuthorStatusResponse"
                    }
                },
                "400": {
                    "description": "Invalid ID",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Author not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/authors/{id}/books": {
        "get": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "authors"
            ],
            "summary": "List books of an author",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Author ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.AuthorBooksResponse"
                    }
                },
                "400": {
                    "description": "Invalid ID",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Author not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/books": {
        "get": {
            "description": "List books with paging, sorting and filters",
            "produces": [
                "application/json"
            ],
            "tags": [
                "books"
            ],
            "summary": "List books",
            "parameters": [
                {
                    "minimum": 1,
                    "type": "integer",
                    "default": 1,
                    "description": "Page number",
                    "name": "page",
                    "in": "query"
                },
                {
                    "maximum": 100,
                    "minimum": 1,
                    "type": "integer",
                    "default": 20,
                    "description": "Items per page",
                    "name": "page_size",
                    "in": "query"
                },
                {
                    "enum": [
                        "created_at_desc",
                        "created_at_asc",
                        "title_asc",
                        "title_desc",
                        "published_at_desc",
                        "published_at_asc"
                    ],
                    "type": "string",
                    "description": "Sort field and direction",
                    "name": "sort",
                    "in": "query"
                },
                {
                    "type": "string",
                    "description": "Search on title and description",
                    "name": "q",
                    "in": "query"
                },
                {
                    "type": "integer",
                    "description": "Filter by author ID",
                    "name": "author_id",
                    "in": "query"
                },
                {
                    "type": "string",
                    "example": "2015-01-01",
                    "description": "Filter: published_at \u003e= YYYY-MM-DD",
                    "name": "published_after",
                    "in": "query"
                },
                {
                    "type": "string",
                    "example": "2020-12-31",
                    "description": "Filter: published_at \u003c= YYYY-MM-DD",
                    "name": "published_before",
                    "in": "query"
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.ListBooksResponse"
                    }
                },
                "400": {
                    "description": "Invalid query parameters",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        },
        "post": {
            "description": "Create a new book for an existing author",
            "consumes": [
                "application/json"
            ],
            "produces": [
                "application/json"
            ],
            "tags": [
                "books"
            ],
            "summary": "Create a book",
            "parameters": [
                {
                    "description": "Book to create",
                    "name": "payload",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "$ref": "#/definitions/handler.CreateBookRequest"
                    }
                }
            ],
            "responses": {
                "201": {
                    "description": "Created",
                    "schema": {
                        "$ref": "#/definitions/handler.BookResponse"
                    }
                },
                "400": {
                    "description": "Validation error or unknown author",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    },
    "/books/{id}": {
        "get": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "books"
            ],
            "summary": "Get a book by ID",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Book ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "200": {
                    "description": "OK",
                    "schema": {
                        "$ref": "#/definitions/handler.BookResponse"
                    }
                },
                "400": {
                    "description": "Invalid ID",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Book not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        },
        "delete": {
            "produces": [
                "application/json"
            ],
            "tags": [
                "books"
            ],
            "summary": "Delete a book",
            "parameters": [
                {
                    "type": "integer",
                    "description": "Book ID",
                    "name": "id",
                    "in": "path",
                    "required": true
                }
            ],
            "responses": {
                "204": {
                    "description": "No content",
                    "schema": {
                        "type": "string"
                    }
                },
                "400": {
                    "description": "Invalid ID",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "404": {
                    "description": "Book not found",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                },
                "500": {
                    "description": "Internal server error",
                    "schema": {
                        "$ref": "#/definitions/validation.ErrorResponse"
                    }
                }
            }
        }
    }
    },
    "definitions": {
    "handler.Author": {
        "type": "object",
        "properties": {
            "active": {
                "type": "boolean"
            },
            "biography": {
                "type": "string"
            },
            "id": {
                "type": "integer"
            },
            "image": {
                "type": "string"
            },
            "name": {
                "type": "string"
            }
        }
    },
    "handler.AuthorBooksResponse": {
        "type": "object",
        "properties": {
            "data": {
                "type": "array",
                "items": {
                    "$ref": "#/definitions/handler.BookSummary"
                }
            }
        }
    },
    "handler.AuthorResponse": {
        "type": "object",
        "properties": {
            "data": {
                "$ref": "#/definitions/handler.Author"
            }
        }
    },
    "handler.AuthorStatusResponse": {
        "type": "object",
        "properties": {
            "data": {
                "$ref": "#/definitions/service.AuthorStatus"
            }
        }
    },
    "handler.AuthorSummary": {
        "type": "object",
        "properties": {
            "id": {
                "type": "integer"
            },
            "name": {
                "type": "string"
            }
        }
    },
    "handler.Book": {
        "type": "object",
        "properties": {
            "author": {
                "$ref": "#/definitions/handler.AuthorSummary"
            },
            "created_at": {
                "type": "string",
                "example": "2025-11-24"
            },
            "description": {
                "type": "string"
            },
            "id": {
                "type": "integer"
            },
            "published_at": {
                "type": "string",
                "example": "2025-11-24"
            },
            "title": {
                "type": "string"
            },
            "updated_at": {
                "type": "string",
                "example": "2025-11-24"
            }
        }
    },
    "handler.BookResponse": {
        "type": "object",
        "properties": {
            "data": {
                "$ref": "#/definitions/handler.Book"
            }
        }
    },
    "handler.BookSummary": {
        "type": "object",
        "properties": {
            "description": {
                "type": "string"
            },
            "id": {
                "type": "integer"
            },
            "published_at": {
                "type": "string",
                "example": "2025-11-24"
            },
            "title": {
                "type": "string"
            }
        }
    },
    "handler.CreateAuthorRequest": {
        "type": "object",
        "required": [
            "name"
        ],
        "properties": {
            "active": {
                "type": "boolean"
            },
            "biography": {
                "type": "string",
                "maxLength": 2000
            },
            "image_url": {
                "type": "string",
                "maxLength": 2048
            },
            "name": {
                "type": "string",
                "maxLength": 255,
                "minLength": 1
            }
        }
    },
    "handler.CreateBookRequest": {
        "type": "object",
        "required": [
            "author_id",
            "title"
        ],
        "properties": {
            "author_id": {
                "type": "integer",
                "minimum": 1
            },
            "description": {
                "type": "string",
                "maxLength": 2000
            },
            "published_at": {
                "type": "string",
                "example": "2025-11-24"
            },
            "title": {
                "type": "string",
                "maxLength": 255
            }
        }
    },
    "handler.ListAuthorsResponse": {
        "type": "object",
        "properties": {
            "data": {
                "type": "array",
                "items": {
                    "$ref": "#/definitions/handler.Author"
                }
            }
        }
    },
    "handler.ListBooksResponse": {
        "type": "object",
        "properties": {
            "data": {
                "type": "array",
                "items": {
                    "$ref": "#/definitions/handler.Book"
                }
            },
            "pagination": {
                "$ref": "#/definitions/handler.Pagination"
            }
        }
    },
    "handler.Pagination": {
        "type": "object",
        "properties": {
            "page": {
                "type": "integer"
            },
            "page_size": {
                "type": "integer"
            },
            "total": {
                "type": "integer"
            },
            "total_pages": {
                "type": "integer"
            }
        }
    },
    "handler.UpdateAuthorRequest": {
        "type": "object",
        "properties": {
            "active": {
                "type": "boolean"
            },
            "biography": {
                "type": "string",
                "maxLength": 2000
            },
            "image_url": {
                "type": "string",
                "maxLength": 2048
            },
            "name": {
                "type": "string",
                "maxLength": 255,
                "minLength": 1
            }
        }
    },
    "service.AuthorStatus": {
        "type": "object",
        "properties": {
            "active": {
                "type": "boolean"
            },
            "id": {
                "type": "integer"
            },
            "name": {
                "type": "string"
            }
        }
    },
    "validation.ErrorResponse": {
        "type": "object",
        "properties": {
            "code": {
                "type": "string"
            },
            "errors": {
                "type": "array",
                "items": {
                    "$ref": "#/definitions/validation.FieldError"
                }
            },
            "message": {
                "type": "string"
            }
        }
    },
    "validation.FieldError": {
        "type": "object",
        "properties": {
            "field": {
                "type": "string"
            },
            "message": {
                "type": "string"
            },
            "rule": {
                "type": "string"
            }
        }
    }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Bookverse API",
	Description:      "API for managing authors and books in Bookverse.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
