// Package docs Swagger文档
// 接口描述来自handler上的swag注释,修改注释后执行:
//
//	swag init -g cmd/api/main.go -o docs
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
        "/api/v1/books": {
            "get": {"tags": ["图书"], "summary": "图书列表", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"tags": ["图书"], "summary": "创建图书", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.BookDTO"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/books/{id}": {
            "get": {"tags": ["图书"], "summary": "图书详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "图书不存在", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"tags": ["图书"], "summary": "更新图书", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.BookDTO"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["图书"], "summary": "删除图书", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/books/{id}/reviews": {
            "get": {"tags": ["图书"], "summary": "图书的评论", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/books/{id}/orders": {
            "get": {"tags": ["图书"], "summary": "包含该图书的订单", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/orders": {
            "get": {"tags": ["订单"], "summary": "订单列表", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"tags": ["订单"], "summary": "创建订单", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.OrderDTO"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/orders/{id}": {
            "get": {"tags": ["订单"], "summary": "订单详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "订单不存在", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"tags": ["订单"], "summary": "更新订单", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.OrderDTO"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["订单"], "summary": "删除订单", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/orders/{id}/books/{bookId}": {
            "post": {"tags": ["订单"], "summary": "订单关联图书", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "bookId", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "409": {"description": "已关联", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["订单"], "summary": "订单取消关联图书", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "bookId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/reviews": {
            "get": {"tags": ["评论"], "summary": "评论列表", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"tags": ["评论"], "summary": "创建评论", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.ReviewDTO"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/reviews/{id}": {
            "get": {"tags": ["评论"], "summary": "评论详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "评论不存在", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"tags": ["评论"], "summary": "更新评论", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.ReviewDTO"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["评论"], "summary": "删除评论", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        }
    },
    "definitions": {
        "dto.BookDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "三体"},
                "author": {"type": "string", "example": "刘慈欣"},
                "genre": {"type": "string", "example": "科幻"},
                "price": {"type": "number", "example": 15.0}
            }
        },
        "dto.OrderDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "customer": {"type": "string", "example": "alice"},
                "date": {"type": "string"},
                "status": {"type": "string", "example": "NEW"},
                "books": {"type": "array", "items": {"$ref": "#/definitions/dto.BookDTO"}}
            }
        },
        "dto.ReviewDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "book_id": {"type": "integer", "example": 1},
                "book": {"$ref": "#/definitions/dto.BookDTO"},
                "reviewer": {"type": "string", "example": "bob"},
                "rating": {"type": "integer", "example": 5},
                "text": {"type": "string", "example": "好书"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo 文档元信息
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookshop API",
	Description:      "图书、订单、评论管理接口",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
