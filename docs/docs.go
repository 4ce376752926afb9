// Package docs holds the OpenAPI description served at /swagger/.
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
        "/api/data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Read all entity sets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.BulkData"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/analytics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Admin analytics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.AnalyticsReport"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "description": "Looks up the first user with the given FName and binds their role to the caller's IP address.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login by first name",
                "parameters": [
                    {"description": "First name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "User names", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/book_ticket": {
            "post": {
                "description": "Creates the ticket and its Credit Card payment in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book a ticket",
                "parameters": [
                    {"description": "Booking", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.bookTicketRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/cancel_event": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Cancel an event",
                "parameters": [
                    {"description": "Event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.cancelEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/add_stall": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Add a vendor stall",
                "parameters": [
                    {"description": "Stall", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addStallRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/my_profile": {
            "post": {
                "description": "Total spending, ticket history and up to five upcoming events the user has no ticket for.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "User profile",
                "parameters": [
                    {"description": "User", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.profileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.User": {
            "type": "object",
            "properties": {
                "FName": {"type": "string"},
                "LName": {"type": "string"},
                "Role": {"type": "string", "enum": ["User", "Admin"]},
                "UserID": {"type": "integer"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["FName"],
            "properties": {"FName": {"type": "string"}}
        },
        "handler.registerUserRequest": {
            "type": "object",
            "required": ["FName", "LName"],
            "properties": {"FName": {"type": "string"}, "LName": {"type": "string"}}
        },
        "handler.bookTicketRequest": {
            "type": "object",
            "required": ["EventID", "Price", "TicketType", "UserID"],
            "properties": {
                "EventID": {"type": "integer"},
                "Price": {"type": "number", "minimum": 0},
                "TicketType": {"type": "string"},
                "UserID": {"type": "integer"}
            }
        },
        "handler.cancelEventRequest": {
            "type": "object",
            "required": ["EventID"],
            "properties": {"EventID": {"type": "integer"}}
        },
        "handler.addStallRequest": {
            "type": "object",
            "required": ["Rental", "StallName", "Type", "VendorID"],
            "properties": {
                "Rental": {"type": "number", "minimum": 0},
                "StallName": {"type": "string"},
                "Type": {"type": "string"},
                "VendorID": {"type": "integer"}
            }
        },
        "handler.profileRequest": {
            "type": "object",
            "required": ["UserID"],
            "properties": {"UserID": {"type": "integer"}}
        },
        "ports.Rows": {
            "type": "array",
            "items": {"type": "object", "additionalProperties": {}}
        },
        "ports.BulkData": {
            "type": "object",
            "properties": {
                "artists": {"$ref": "#/definitions/ports.Rows"},
                "events": {"$ref": "#/definitions/ports.Rows"},
                "lineup": {"$ref": "#/definitions/ports.Rows"},
                "organisers": {"$ref": "#/definitions/ports.Rows"},
                "security": {"$ref": "#/definitions/ports.Rows"},
                "staff": {"$ref": "#/definitions/ports.Rows"},
                "stalls": {"$ref": "#/definitions/ports.Rows"},
                "tickets": {"$ref": "#/definitions/ports.Rows"},
                "users": {"$ref": "#/definitions/ports.Rows"},
                "vendors": {"$ref": "#/definitions/ports.Rows"},
                "venues": {"$ref": "#/definitions/ports.Rows"}
            }
        },
        "ports.AnalyticsReport": {
            "type": "object",
            "properties": {
                "avg_price_per_event": {"$ref": "#/definitions/ports.Rows"},
                "top_ticket_buyers": {"$ref": "#/definitions/ports.Rows"},
                "venue_events": {"$ref": "#/definitions/ports.Rows"}
            }
        },
        "ports.Profile": {
            "type": "object",
            "properties": {
                "UserID": {"type": "integer"},
                "recommendations": {"$ref": "#/definitions/ports.Rows"},
                "tickets": {"$ref": "#/definitions/ports.Rows"},
                "total_spending": {"type": "number"}
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
	Title:            "Venue Ticketing API",
	Description:      "Role-scoped ticketing API. The caller's role is bound to their IP address at login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
