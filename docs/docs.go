// Package docs registers the OpenAPI description served under /swagger.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in to the dashboard",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out of the dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SessionResponse"}}
                }
            }
        },
        "/books": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Books screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Create a book",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/loans/{id}/{action}": {
            "post": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["loans"],
                "summary": "Approve, reject, distribute or return a loan",
                "parameters": [
                    {"type": "integer", "description": "Loan ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "approve, reject, distribute or return", "name": "action", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Pending notifications",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/notify.Notification"}}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "notifications": {"type": "array", "items": {"$ref": "#/definitions/notify.Notification"}}
            }
        },
        "handler.SessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "expires_at": {"type": "string"},
                "session_token": {"type": "string"},
                "user": {"$ref": "#/definitions/model.User"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "notify.Notification": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "level": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {
            "type": "apiKey",
            "name": "dashboard_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Library Admin Dashboard API",
	Description:      "Session-backed admin dashboard over the library REST API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
