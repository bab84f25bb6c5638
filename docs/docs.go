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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}},
                "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}},
                "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/auth/me": {"get": {"tags": ["auth"], "summary": "Current user", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/products": {
            "get": {"tags": ["products"], "summary": "List available products",
                "parameters": [{"in": "query", "name": "category", "type": "string"}, {"in": "query", "name": "search", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}},
            "post": {"tags": ["products"], "summary": "Create a product", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/createProductRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/products/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}}},
            "put": {"tags": ["products"], "summary": "Update a product", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/updateProductRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}}},
            "delete": {"tags": ["products"], "summary": "Delete a product", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/farmer/products": {"get": {"tags": ["products"], "summary": "List the caller's products", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}}},
        "/orders": {
            "get": {"tags": ["orders"], "summary": "List orders visible to the caller", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Order"}}}}},
            "post": {"tags": ["orders"], "summary": "Place an order", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/createOrderRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Order"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/orders/{id}": {"get": {"tags": ["orders"], "summary": "Get an order", "security": [{"BearerAuth": []}],
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Order"}}}}},
        "/orders/{id}/status": {"put": {"tags": ["orders"], "summary": "Change an order's status", "security": [{"BearerAuth": []}],
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"},
                {"in": "query", "name": "status", "type": "string"}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/admin/users": {"get": {"tags": ["admin"], "summary": "List all users", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}}}}},
        "/admin/stats": {"get": {"tags": ["admin"], "summary": "Marketplace counters", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Stats"}}}}},
        "/payments/create-order": {"post": {"tags": ["payments"], "summary": "Create a gateway payment order", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PaymentOrder"}}}}},
        "/payments/verify": {"post": {"tags": ["payments"], "summary": "Verify a checkout signature", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}}}},
        "/contact": {"post": {"tags": ["contact"], "summary": "Send a message to the site administrators",
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errorResponse"}}}}}
    },
    "definitions": {
        "errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "registerRequest": {"type": "object", "required": ["email", "name", "password", "role"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"},
                "role": {"type": "string", "enum": ["farmer", "buyer", "admin"]}, "phone": {"type": "string"}, "location": {"type": "string"}}},
        "loginRequest": {"type": "object", "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "tokenResponse": {"type": "object", "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"},
            "user": {"$ref": "#/definitions/domain.User"}}},
        "createProductRequest": {"type": "object", "required": ["category", "name", "unit"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "category": {"type": "string"},
                "price": {"type": "number"}, "quantity": {"type": "number"}, "unit": {"type": "string"},
                "location": {"type": "string"}, "image_url": {"type": "string"}}},
        "updateProductRequest": {"type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "category": {"type": "string"},
                "price": {"type": "number"}, "quantity": {"type": "number"}, "unit": {"type": "string"},
                "location": {"type": "string"}, "image_url": {"type": "string"}, "available": {"type": "boolean"}}},
        "createOrderRequest": {"type": "object", "required": ["delivery_address", "payment_method"],
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/domain.OrderItem"}},
                "delivery_address": {"type": "string"}, "payment_method": {"type": "string"}}},
        "domain.User": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"},
            "role": {"type": "string"}, "phone": {"type": "string"}, "location": {"type": "string"}, "created_at": {"type": "string"}}},
        "domain.Product": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"},
            "description": {"type": "string"}, "category": {"type": "string"}, "price": {"type": "number"},
            "quantity": {"type": "number"}, "unit": {"type": "string"}, "farmer_id": {"type": "string"},
            "farmer_name": {"type": "string"}, "location": {"type": "string"}, "image_url": {"type": "string"},
            "available": {"type": "boolean"}, "created_at": {"type": "string"}}},
        "domain.OrderItem": {"type": "object", "properties": {"product_id": {"type": "string"}, "product_name": {"type": "string"},
            "quantity": {"type": "number"}, "unit": {"type": "string"}, "price": {"type": "number"}, "total": {"type": "number"}}},
        "domain.Order": {"type": "object", "properties": {"id": {"type": "string"}, "buyer_id": {"type": "string"},
            "buyer_name": {"type": "string"}, "buyer_email": {"type": "string"}, "farmer_id": {"type": "string"},
            "farmer_name": {"type": "string"}, "items": {"type": "array", "items": {"$ref": "#/definitions/domain.OrderItem"}},
            "total_amount": {"type": "number"}, "status": {"type": "string", "enum": ["pending", "confirmed", "delivered", "cancelled"]},
            "delivery_address": {"type": "string"}, "payment_method": {"type": "string"}, "created_at": {"type": "string"}}},
        "domain.Stats": {"type": "object", "properties": {"total_users": {"type": "integer"}, "total_farmers": {"type": "integer"},
            "total_buyers": {"type": "integer"}, "total_products": {"type": "integer"}, "total_orders": {"type": "integer"},
            "pending_orders": {"type": "integer"}}},
        "domain.PaymentOrder": {"type": "object", "properties": {"order_id": {"type": "string"}, "amount": {"type": "integer"},
            "currency": {"type": "string"}, "key": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Marketplace API",
	Description:      "Farm-to-buyer marketplace: accounts, product catalog, orders, payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
