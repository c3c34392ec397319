// Package docs holds the Swagger document served at /docs.
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
        "/register": {
            "post": {
                "description": "Public form submission. Accepts JSON or form bodies; interests may repeat.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "Submit a registration",
                "parameters": [
                    {"description": "Registration form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegistrationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RegistrationResponse"}},
                    "400": {"description": "Validation failure or duplicate", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Registration is currently closed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/registrations": {
            "get": {
                "security": [{"AdminMarker": []}],
                "description": "Every registration, newest first",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List registrations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Registration"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/export": {
            "get": {
                "security": [{"AdminMarker": []}],
                "produces": ["text/csv"],
                "tags": ["admin"],
                "summary": "Export registrations as CSV",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/clear-data": {
            "delete": {
                "security": [{"AdminMarker": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete every registration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ClearResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/delete-user/{id}": {
            "delete": {
                "security": [{"AdminMarker": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete one registration",
                "parameters": [
                    {"type": "string", "description": "Registration ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/registration-status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Registration open/closed state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/toggle-registration": {
            "post": {
                "security": [{"AdminMarker": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Open or close registration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ToggleResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/current-event": {
            "get": {
                "description": "The event shown on the landing page, or null",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Current event",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Event"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/save-event": {
            "post": {
                "security": [{"AdminMarker": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Replace the current event",
                "parameters": [
                    {"description": "Event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EventSaveResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/delete-event": {
            "delete": {
                "security": [{"AdminMarker": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete the current event",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/admin/login": {
            "post": {
                "description": "Checks the shared admin password and returns how to authenticate admin calls",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PingResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.RegistrationRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "gender": {"type": "string", "enum": ["Male", "Female", "Other"]},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "enrollment": {"type": "string"},
                "college": {"type": "string"},
                "otherCollege": {"type": "string"},
                "year": {"type": "string", "enum": ["1st Year", "2nd Year", "3rd Year", "4th Year", "Graduate"]},
                "branch": {"type": "string", "enum": ["CSE", "IT", "ECE", "EE", "ME", "CE", "Other"]},
                "experience": {"type": "string", "enum": ["Beginner", "Intermediate", "Advanced"]},
                "interests": {"type": "array", "items": {"type": "string"}},
                "expectations": {"type": "string"}
            }
        },
        "dto.RegistrationResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}
        },
        "dto.ClearResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "deletedCount": {"type": "integer"}}
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {"isOpen": {"type": "boolean"}}
        },
        "dto.ToggleResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "isOpen": {"type": "boolean"}}
        },
        "dto.EventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "dto.EventSaveResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "event": {"$ref": "#/definitions/models.Event"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "header": {"type": "string"},
                "value": {"type": "string"},
                "token": {"type": "string"},
                "expiresAt": {"type": "string"}
            }
        },
        "dto.PingResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "timestamp": {"type": "string"}}
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.Registration": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "gender": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "enrollment": {"type": "string"},
                "college": {"type": "string"},
                "otherCollege": {"type": "string"},
                "year": {"type": "string"},
                "branch": {"type": "string"},
                "experience": {"type": "string"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "expectations": {"type": "string"},
                "eventName": {"type": "string"},
                "registeredAt": {"type": "string"}
            }
        },
        "models.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "location": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "AdminMarker": {"type": "apiKey", "name": "x-admin-auth", "in": "header"},
        "AdminBearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GDG Event Registration API",
	Description:      "Public registration form and admin endpoints for a single current event.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
