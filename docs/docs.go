// Package docs holds the storefront's Swagger document, served under
// /swagger. Keep it in step with the controllers' godoc annotations.
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
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Pages"],
                "summary": "Welcome page",
                "responses": {"200": {"description": "HTML page", "schema": {"type": "string"}}}
            }
        },
        "/home": {
            "get": {
                "description": "Lists every product with an add-to-cart form",
                "produces": ["text/html"],
                "tags": ["Products"],
                "summary": "Product catalog",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}},
                    "500": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "description": "Catalog as JSON",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List products",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.Response"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/add_to_cart/{product_id}": {
            "post": {
                "description": "Appends a cart line priced from the catalog, then redirects to /home",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Cart"],
                "summary": "Add a product to the cart",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "product_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Quantity (1-1000)", "name": "quantity", "in": "formData", "required": true},
                    {"type": "string", "description": "Anti-forgery token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /home", "schema": {"type": "string"}},
                    "403": {"description": "HTML error page", "schema": {"type": "string"}},
                    "404": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/remove_from_cart/{product_id}": {
            "get": {
                "description": "Removes the first cart line for the product, then redirects to /cart",
                "produces": ["text/html"],
                "tags": ["Cart"],
                "summary": "Remove a product from the cart",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "product_id", "in": "path", "required": true},
                    {"type": "string", "description": "Anti-forgery token", "name": "csrf_token", "in": "query", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /cart", "schema": {"type": "string"}},
                    "403": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/cart": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Cart"],
                "summary": "Show the cart",
                "responses": {"200": {"description": "HTML page", "schema": {"type": "string"}}}
            }
        },
        "/checkout": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Orders"],
                "summary": "Checkout form",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Stores the cart as an order and empties it",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Orders"],
                "summary": "Place an order",
                "parameters": [
                    {"type": "string", "description": "Recipient name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Shipping address", "name": "address", "in": "formData", "required": true},
                    {"type": "string", "description": "Payment information", "name": "payment_info", "in": "formData", "required": true},
                    {"type": "string", "description": "Anti-forgery token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /home", "schema": {"type": "string"}},
                    "400": {"description": "Checkout form with field errors", "schema": {"type": "string"}},
                    "403": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/register": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Authentication"],
                "summary": "Registration form",
                "responses": {"200": {"description": "HTML page", "schema": {"type": "string"}}}
            },
            "post": {
                "description": "Creates a customer account, then redirects to /login",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Authentication"],
                "summary": "Register new user",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "Email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Anti-forgery token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /login", "schema": {"type": "string"}},
                    "400": {"description": "Registration form with field errors", "schema": {"type": "string"}},
                    "403": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/login": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Authentication"],
                "summary": "Login form",
                "responses": {"200": {"description": "HTML page", "schema": {"type": "string"}}}
            },
            "post": {
                "description": "Signs the session in, then redirects to /home",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Authentication"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "Anti-forgery token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /home", "schema": {"type": "string"}},
                    "400": {"description": "Login form with field errors", "schema": {"type": "string"}},
                    "401": {"description": "Login form", "schema": {"type": "string"}},
                    "403": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/logout": {
            "get": {
                "description": "Signs the session out, keeping the cart, then redirects to /home",
                "produces": ["text/html"],
                "tags": ["Authentication"],
                "summary": "Logout",
                "parameters": [
                    {"type": "string", "description": "Anti-forgery token", "name": "csrf_token", "in": "query", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /home", "schema": {"type": "string"}},
                    "403": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.Money": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "currency": {"type": "string"}
            }
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "name": {"type": "string"},
                "price": {"$ref": "#/definitions/models.Money"}
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
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
	Title:            "Amazon Shop",
	Description:      "Server-rendered storefront: catalog, session cart, checkout and customer accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
