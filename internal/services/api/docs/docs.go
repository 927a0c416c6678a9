// Package docs holds the OpenAPI document served by swaggerkit
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/user/{username}": {
      "servers": [{"url": "/api"}],
      "get": {
        "tags": ["Lookup"],
        "summary": "Estimate the creation date of a Telegram account",
        "description": "Resolves the username through the Bot API and falls back to a username-only estimate.",
        "operationId": "lookupUser",
        "parameters": [
          {"name": "username", "in": "path", "required": true, "description": "Telegram username, leading @ optional", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Profile"}}}},
          "500": {"description": "unexpected failure", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Failure"}}}}
        }
      }
    },
    "/estimate": {
      "get": {
        "tags": ["Estimate"],
        "summary": "Estimate from an explicit user id and/or username",
        "operationId": "estimateOne",
        "parameters": [
          {"name": "user_id", "in": "query", "description": "Numeric Telegram user id", "schema": {"type": "string", "pattern": "^[0-9]+$"}},
          {"name": "username", "in": "query", "description": "Username, leading @ optional", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/EstimateEnvelope"}}}}
        }
      }
    },
    "/estimate/anchors": {
      "get": {
        "tags": ["Estimate"],
        "summary": "Anchor table and username rules in use",
        "operationId": "estimateTables",
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}
        }
      }
    },
    "/estimate/batch": {
      "post": {
        "tags": ["Estimate"],
        "summary": "Estimate several accounts at once",
        "operationId": "estimateBatch",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BatchInput"}}}
        },
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}
        }
      }
    },
    "/meta/health": {
      "get": {"tags": ["Meta"], "summary": "Health check", "operationId": "metaHealth",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}}
    },
    "/meta/ready": {
      "get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "operationId": "metaReady",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}}
    },
    "/meta/version": {
      "get": {"tags": ["Meta"], "summary": "Build and version info", "operationId": "metaVersion",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}}
    },
    "/meta/service": {
      "get": {"tags": ["Meta"], "summary": "Service info, uptime and mounted modules", "operationId": "metaService",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}}
    }
  },
  "components": {
    "schemas": {
      "Envelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {"type": "object"}
        }
      },
      "DateRange": {
        "type": "object",
        "properties": {
          "start": {"type": "string", "example": "October 9, 2013"},
          "end": {"type": "string", "example": "April 9, 2014"}
        }
      },
      "WeightedEstimate": {
        "type": "object",
        "properties": {
          "date": {"type": "string", "format": "date-time"},
          "confidence": {"type": "integer", "enum": [1, 2, 3]},
          "method": {"type": "string", "example": "User ID Analysis"}
        }
      },
      "EstimationDetails": {
        "type": "object",
        "properties": {
          "all_estimates": {"type": "array", "items": {"$ref": "#/components/schemas/WeightedEstimate"}},
          "note": {"type": "string"}
        }
      },
      "Profile": {
        "type": "object",
        "properties": {
          "username": {"type": "string", "example": "durov"},
          "nickname": {"type": "string", "example": "Pavel Durov"},
          "avatar": {"type": "string"},
          "followers": {"type": "integer"},
          "total_likes": {"type": "integer"},
          "verified": {"type": "boolean"},
          "description": {"type": "string"},
          "region": {"type": "string", "example": "Unknown"},
          "user_id": {"type": "string", "example": "1500000"},
          "first_name": {"type": "string"},
          "last_name": {"type": "string"},
          "estimated_creation_date": {"type": "string", "example": "January 9, 2014"},
          "account_age": {"type": "string", "example": "11 years and 6 months"},
          "estimation_confidence": {"type": "string", "enum": ["very_low", "low", "medium", "high"]},
          "estimation_method": {"type": "string"},
          "accuracy_range": {"type": "string", "example": "±3 months"},
          "estimated_creation_date_range": {"$ref": "#/components/schemas/DateRange"},
          "estimation_details": {"$ref": "#/components/schemas/EstimationDetails"}
        }
      },
      "View": {
        "type": "object",
        "properties": {
          "user_id": {"type": "string"},
          "username": {"type": "string"},
          "estimated_at": {"type": "string", "format": "date-time"},
          "estimated_creation_date": {"type": "string"},
          "date_range": {"$ref": "#/components/schemas/DateRange"},
          "account_age": {"type": "string"},
          "confidence": {"type": "string"},
          "method": {"type": "string"},
          "accuracy": {"type": "string"},
          "all_estimates": {"type": "array", "items": {"$ref": "#/components/schemas/WeightedEstimate"}}
        }
      },
      "EstimateEnvelope": {
        "allOf": [
          {"$ref": "#/components/schemas/Envelope"},
          {"type": "object", "properties": {"data": {"$ref": "#/components/schemas/View"}}}
        ]
      },
      "Query": {
        "type": "object",
        "properties": {
          "user_id": {"type": "string"},
          "username": {"type": "string"}
        }
      },
      "BatchInput": {
        "type": "object",
        "required": ["items"],
        "properties": {
          "items": {"type": "array", "minItems": 1, "maxItems": 100, "items": {"$ref": "#/components/schemas/Query"}}
        }
      },
      "Failure": {
        "type": "object",
        "properties": {
          "error": {"type": "string", "example": "Failed to fetch user info from Telegram API"},
          "details": {"type": "string"}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported spec information
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "Telegram Account Age API",
	Description:      "Estimates when a Telegram account was created from its numeric id and username shape.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
