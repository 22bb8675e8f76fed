// Package docs holds the generated OpenAPI document served under /swagger.
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
        "/users": {
            "post": {
                "tags": [
                    "users"
                ],
                "summary": "Create a new user",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/users/{userId}": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Get user by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/emas": {
            "post": {
                "tags": [
                    "emas"
                ],
                "summary": "Record a check-in",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CreateEMARequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.EMAResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "get": {
                "tags": [
                    "emas"
                ],
                "summary": "List check-ins",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.EMAResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/emas/latest": {
            "get": {
                "tags": [
                    "emas"
                ],
                "summary": "Most recent check-in",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.EMAResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/sessions": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Record a game session",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CreateSessionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.GameSession"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "get": {
                "tags": [
                    "sessions"
                ],
                "summary": "List game sessions",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Start of range (RFC3339)",
                        "name": "from",
                        "in": "query",
                        "format": "date-time"
                    },
                    {
                        "type": "string",
                        "description": "End of range (RFC3339)",
                        "name": "to",
                        "in": "query",
                        "format": "date-time"
                    },
                    {
                        "type": "string",
                        "description": "Game type",
                        "name": "game_type",
                        "in": "query",
                        "enum": [
                            "GO_NO_GO",
                            "VISUOSPATIAL_GRID",
                            "SIMON_SEQUENCE",
                            "VISUAL_SEARCH"
                        ]
                    },
                    {
                        "type": "integer",
                        "description": "Results per page (1-100)",
                        "name": "limit",
                        "in": "query",
                        "default": 20,
                        "minimum": 1,
                        "maximum": 100
                    },
                    {
                        "type": "string",
                        "description": "Cursor from previous response's next_cursor",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SessionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/analytics": {
            "get": {
                "tags": [
                    "analytics"
                ],
                "summary": "All-time analytics",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.AnalyticsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/profile": {
            "get": {
                "tags": [
                    "analytics"
                ],
                "summary": "Lifetime profile statistics",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ProfileStats"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/reports": {
            "get": {
                "tags": [
                    "analytics"
                ],
                "summary": "Period report",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Period in days",
                        "name": "period",
                        "in": "query",
                        "enum": [
                            7,
                            14,
                            30
                        ],
                        "default": 7
                    },
                    {
                        "type": "boolean",
                        "description": "Attach an AI narrative",
                        "name": "narrative",
                        "in": "query",
                        "default": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Report"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/coach": {
            "post": {
                "tags": [
                    "coach"
                ],
                "summary": "Ask the AI coach",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CoachRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.CoachReply"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/users/{userId}/coach/feedback": {
            "post": {
                "tags": [
                    "coach"
                ],
                "summary": "Rate a coach reply",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CoachFeedbackRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Feedback recorded"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/users/{userId}/export": {
            "get": {
                "tags": [
                    "export"
                ],
                "summary": "Export all records",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DataExport"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/import": {
            "post": {
                "tags": [
                    "export"
                ],
                "summary": "Import records",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "User UUID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.DataExport"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ImportResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "413": {
                        "description": "Payload Too Large",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        }
    },
    "definitions": {
        "problem.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "problem.Problem": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                },
                "instance": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/problem.FieldError"
                    }
                }
            }
        },
        "domain.CreateUserRequest": {
            "type": "object",
            "properties": {
                "timezone": {
                    "type": "string",
                    "example": "Europe/Prague"
                }
            },
            "required": [
                "timezone"
            ]
        },
        "domain.UserResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "timezone": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "domain.CreateEMARequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "anger": {
                    "type": "integer"
                },
                "anxiety": {
                    "type": "integer"
                },
                "sadness": {
                    "type": "integer"
                },
                "happiness": {
                    "type": "integer"
                },
                "recentStressfulEvent": {
                    "type": "boolean"
                },
                "sleepHours": {
                    "type": "number"
                },
                "sleepQuality": {
                    "type": "integer"
                },
                "caffeineRecent": {
                    "type": "boolean"
                },
                "alcoholUse": {
                    "type": "string",
                    "enum": [
                        "NONE",
                        "SMALL",
                        "MODERATE",
                        "HIGH"
                    ]
                },
                "substanceType": {
                    "type": "string",
                    "enum": [
                        "NONE",
                        "PRESCRIBED",
                        "OTC",
                        "RECREATIONAL"
                    ]
                },
                "substanceDescription": {
                    "type": "string"
                },
                "hasPositiveEvent": {
                    "type": "boolean"
                },
                "positiveEventIntensity": {
                    "type": "integer"
                },
                "positiveEventDescription": {
                    "type": "string"
                },
                "hasNegativeEvent": {
                    "type": "boolean"
                },
                "negativeEventIntensity": {
                    "type": "integer"
                },
                "negativeEventDescription": {
                    "type": "string"
                },
                "preSessionActivity": {
                    "type": "string",
                    "enum": [
                        "RESTING",
                        "WORKING",
                        "STUDYING",
                        "EXERCISING",
                        "COMMUTING",
                        "SOCIALIZING",
                        "SCREEN_TIME",
                        "OTHER"
                    ]
                },
                "socialContext": {
                    "type": "string",
                    "enum": [
                        "ALONE",
                        "WITH_FAMILY",
                        "WITH_FRIENDS",
                        "WITH_COWORKERS",
                        "IN_PUBLIC"
                    ]
                },
                "noiseLevel": {
                    "type": "string",
                    "enum": [
                        "QUIET",
                        "MODERATE",
                        "LOUD"
                    ]
                }
            },
            "required": [
                "anger",
                "anxiety",
                "sadness",
                "happiness",
                "sleepHours",
                "sleepQuality",
                "alcoholUse",
                "substanceType"
            ]
        },
        "domain.EMAResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "anger": {
                    "type": "integer"
                },
                "anxiety": {
                    "type": "integer"
                },
                "sadness": {
                    "type": "integer"
                },
                "happiness": {
                    "type": "integer"
                },
                "recentStressfulEvent": {
                    "type": "boolean"
                },
                "sleepHours": {
                    "type": "number"
                },
                "sleepQuality": {
                    "type": "integer"
                },
                "caffeineRecent": {
                    "type": "boolean"
                },
                "alcoholUse": {
                    "type": "string",
                    "enum": [
                        "NONE",
                        "SMALL",
                        "MODERATE",
                        "HIGH"
                    ]
                },
                "substanceType": {
                    "type": "string",
                    "enum": [
                        "NONE",
                        "PRESCRIBED",
                        "OTC",
                        "RECREATIONAL"
                    ]
                },
                "substanceDescription": {
                    "type": "string"
                },
                "hasPositiveEvent": {
                    "type": "boolean"
                },
                "positiveEventIntensity": {
                    "type": "integer"
                },
                "positiveEventDescription": {
                    "type": "string"
                },
                "hasNegativeEvent": {
                    "type": "boolean"
                },
                "negativeEventIntensity": {
                    "type": "integer"
                },
                "negativeEventDescription": {
                    "type": "string"
                },
                "preSessionActivity": {
                    "type": "string",
                    "enum": [
                        "RESTING",
                        "WORKING",
                        "STUDYING",
                        "EXERCISING",
                        "COMMUTING",
                        "SOCIALIZING",
                        "SCREEN_TIME",
                        "OTHER"
                    ]
                },
                "socialContext": {
                    "type": "string",
                    "enum": [
                        "ALONE",
                        "WITH_FAMILY",
                        "WITH_FRIENDS",
                        "WITH_COWORKERS",
                        "IN_PUBLIC"
                    ]
                },
                "noiseLevel": {
                    "type": "string",
                    "enum": [
                        "QUIET",
                        "MODERATE",
                        "LOUD"
                    ]
                },
                "isBaseline": {
                    "type": "boolean"
                }
            }
        },
        "domain.CreateSessionRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "gameType": {
                    "type": "string",
                    "enum": [
                        "GO_NO_GO",
                        "VISUOSPATIAL_GRID",
                        "SIMON_SEQUENCE",
                        "VISUAL_SEARCH"
                    ]
                },
                "difficultyLevel": {
                    "type": "integer"
                },
                "score": {
                    "type": "integer"
                },
                "accuracy": {
                    "type": "number"
                },
                "reactionTimeMs": {
                    "type": "integer"
                },
                "reactionTimeVariability": {
                    "type": "number"
                },
                "omissionErrors": {
                    "type": "integer"
                },
                "commissionErrors": {
                    "type": "integer"
                },
                "emaId": {
                    "type": "string"
                }
            },
            "required": [
                "gameType",
                "difficultyLevel",
                "score",
                "accuracy"
            ]
        },
        "domain.GameSession": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "gameType": {
                    "type": "string",
                    "enum": [
                        "GO_NO_GO",
                        "VISUOSPATIAL_GRID",
                        "SIMON_SEQUENCE",
                        "VISUAL_SEARCH"
                    ]
                },
                "difficultyLevel": {
                    "type": "integer"
                },
                "score": {
                    "type": "integer"
                },
                "accuracy": {
                    "type": "number"
                },
                "reactionTimeMs": {
                    "type": "integer"
                },
                "reactionTimeVariability": {
                    "type": "number"
                },
                "omissionErrors": {
                    "type": "integer"
                },
                "commissionErrors": {
                    "type": "integer"
                },
                "emaId": {
                    "type": "string"
                },
                "isBaselineSession": {
                    "type": "boolean"
                }
            }
        },
        "domain.PaginationResponse": {
            "type": "object",
            "properties": {
                "next_cursor": {
                    "type": "string"
                },
                "has_more": {
                    "type": "boolean"
                }
            }
        },
        "domain.SessionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.GameSession"
                    }
                },
                "pagination": {
                    "$ref": "#/definitions/domain.PaginationResponse"
                }
            }
        },
        "domain.GameAverage": {
            "type": "object",
            "properties": {
                "gameType": {
                    "type": "string",
                    "enum": [
                        "GO_NO_GO",
                        "VISUOSPATIAL_GRID",
                        "SIMON_SEQUENCE",
                        "VISUAL_SEARCH"
                    ]
                },
                "averageScore": {
                    "type": "number"
                },
                "sessions": {
                    "type": "integer"
                }
            }
        },
        "domain.SleepImpactData": {
            "type": "object",
            "properties": {
                "hasEnoughData": {
                    "type": "boolean"
                },
                "goodSleepAvgScore": {
                    "type": "number"
                },
                "poorSleepAvgScore": {
                    "type": "number"
                },
                "goodSleepSessions": {
                    "type": "integer"
                },
                "poorSleepSessions": {
                    "type": "integer"
                },
                "performanceDifference": {
                    "type": "number"
                }
            }
        },
        "domain.BaselineComparisonData": {
            "type": "object",
            "properties": {
                "hasEnoughData": {
                    "type": "boolean"
                },
                "baselineAvgScore": {
                    "type": "number"
                },
                "stressedAvgScore": {
                    "type": "number"
                },
                "baselineSessions": {
                    "type": "integer"
                },
                "stressedSessions": {
                    "type": "integer"
                },
                "performanceDifference": {
                    "type": "number"
                }
            }
        },
        "domain.AnalyticsSummary": {
            "type": "object",
            "properties": {
                "totalSessions": {
                    "type": "integer"
                },
                "averageScoreByGame": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.GameAverage"
                    }
                },
                "bestGame": {
                    "type": "string",
                    "enum": [
                        "GO_NO_GO",
                        "VISUOSPATIAL_GRID",
                        "SIMON_SEQUENCE",
                        "VISUAL_SEARCH"
                    ]
                },
                "sleepImpact": {
                    "$ref": "#/definitions/domain.SleepImpactData"
                },
                "baselineComparison": {
                    "$ref": "#/definitions/domain.BaselineComparisonData"
                },
                "peakPerformanceHour": {
                    "type": "integer"
                },
                "peakPerformanceScore": {
                    "type": "number"
                },
                "omissionErrorsWhenTired": {
                    "type": "integer"
                },
                "commissionErrorsWhenStressed": {
                    "type": "integer"
                },
                "fatigueDetected": {
                    "type": "boolean"
                },
                "highVariabilityPercent": {
                    "type": "number"
                }
            }
        },
        "domain.AnalyticsResponse": {
            "type": "object",
            "properties": {
                "summary": {
                    "$ref": "#/definitions/domain.AnalyticsSummary"
                }
            }
        },
        "domain.ProfileStats": {
            "type": "object",
            "properties": {
                "totalSessions": {
                    "type": "integer"
                },
                "totalEmas": {
                    "type": "integer"
                },
                "currentStreak": {
                    "type": "integer"
                },
                "longestStreak": {
                    "type": "integer"
                },
                "averageScore": {
                    "type": "number"
                },
                "favoriteGame": {
                    "type": "string",
                    "enum": [
                        "GO_NO_GO",
                        "VISUOSPATIAL_GRID",
                        "SIMON_SEQUENCE",
                        "VISUAL_SEARCH"
                    ]
                },
                "firstSessionDate": {
                    "type": "string"
                }
            }
        },
        "domain.PerformanceScoreBreakdown": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "accuracyPoints": {
                    "type": "integer"
                },
                "streakPoints": {
                    "type": "integer"
                },
                "improvementPoints": {
                    "type": "integer"
                },
                "varietyPoints": {
                    "type": "integer"
                },
                "improvementPercent": {
                    "type": "number"
                },
                "averageAccuracy": {
                    "type": "number"
                },
                "gameTypesPlayed": {
                    "type": "integer"
                }
            }
        },
        "domain.Insight": {
            "type": "object",
            "properties": {
                "rule": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "domain.Report": {
            "type": "object",
            "properties": {
                "generatedAt": {
                    "type": "string"
                },
                "period": {
                    "type": "integer",
                    "enum": [
                        7,
                        14,
                        30
                    ]
                },
                "periodStart": {
                    "type": "string"
                },
                "periodEnd": {
                    "type": "string"
                },
                "timezone": {
                    "type": "string"
                },
                "sessionCount": {
                    "type": "integer"
                },
                "emaCount": {
                    "type": "integer"
                },
                "currentStreak": {
                    "type": "integer"
                },
                "longestStreak": {
                    "type": "integer"
                },
                "score": {
                    "$ref": "#/definitions/domain.PerformanceScoreBreakdown"
                },
                "mood": {
                    "type": "object"
                },
                "sleep": {
                    "type": "object"
                },
                "lifestyle": {
                    "type": "object"
                },
                "sleepImpactTable": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "circadian": {
                    "type": "object"
                },
                "errors": {
                    "type": "object"
                },
                "gameStats": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "weakestGame": {
                    "type": "string",
                    "enum": [
                        "GO_NO_GO",
                        "VISUOSPATIAL_GRID",
                        "SIMON_SEQUENCE",
                        "VISUAL_SEARCH"
                    ]
                },
                "fatigueDetected": {
                    "type": "boolean"
                },
                "highVariabilityPercent": {
                    "type": "number"
                },
                "insights": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Insight"
                    }
                },
                "recentSessions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.GameSession"
                    }
                },
                "narrative": {
                    "type": "string"
                },
                "narrativeFallback": {
                    "type": "boolean"
                }
            }
        },
        "domain.CoachRequest": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            },
            "required": [
                "message"
            ]
        },
        "domain.CoachReply": {
            "type": "object",
            "properties": {
                "reply": {
                    "type": "string"
                },
                "fallback": {
                    "type": "boolean"
                },
                "traceId": {
                    "type": "string"
                }
            }
        },
        "domain.CoachFeedbackRequest": {
            "type": "object",
            "properties": {
                "traceId": {
                    "type": "string"
                },
                "score": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "comment": {
                    "type": "string"
                }
            },
            "required": [
                "traceId",
                "score"
            ]
        },
        "domain.DataExport": {
            "type": "object",
            "properties": {
                "emas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.EMAResponse"
                    }
                },
                "sessions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.GameSession"
                    }
                },
                "exportTimestamp": {
                    "type": "string"
                }
            }
        },
        "domain.ImportResult": {
            "type": "object",
            "properties": {
                "emasImported": {
                    "type": "integer"
                },
                "sessionsImported": {
                    "type": "integer"
                },
                "emasSkipped": {
                    "type": "integer"
                },
                "sessionsSkipped": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Cogni Tracker API",
	Description:      "Cognitive training analytics: check-ins, game sessions, reports and coaching",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
