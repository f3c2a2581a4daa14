// Package docs definisi swagger 2.0 untuk REST API routesearch, sesuai anotasi di pkg/server/rest/handlers.go.
// di-serve cmd/server lewat http-swagger di /swagger/*.
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
        "/search/route": {
            "post": {
                "description": "route search antara 2 intersection. endpoint bisa intersection id atau koordinat.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "route search antara 2 intersection pakai bfs, dfs, ucs, astar atau gbfs.",
                "parameters": [
                    {
                        "description": "request body route search",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.RouteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.RouteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/search/compare": {
            "post": {
                "description": "jalankan beberapa search strategy secara paralel di problem yang sama. default semua strategy.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "jalankan beberapa search strategy secara paralel.",
                "parameters": [
                    {
                        "description": "request body compare",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.CompareRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.CompareResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/search/intersections/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "detail intersection dan segment keluarnya.",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "intersection id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.IntersectionInfo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/search/facility": {
            "post": {
                "description": "facility location pakai random search, hill climbing, iterated local search, genetic algorithm atau simulated annealing.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "pilih station dari candidate di route document supaya rata-rata travel time minimal.",
                "parameters": [
                    {
                        "description": "request body facility location",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.FacilityRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.FacilityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        }
    },
    "definitions": {
        "datastructure.Coordinate": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "report.StepSummary": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "cost": {"type": "number"},
                "from": {"type": "integer"},
                "to": {"type": "integer"}
            }
        },
        "report.Summary": {
            "type": "object",
            "properties": {
                "elapsed_ms": {"type": "number"},
                "expanded_nodes": {"type": "integer"},
                "found": {"type": "boolean"},
                "generated_nodes": {"type": "integer"},
                "path": {"type": "array", "items": {"type": "integer"}},
                "polyline": {"type": "string"},
                "run_id": {"type": "string"},
                "solution_cost": {"type": "number"},
                "solution_length": {"type": "integer"},
                "status": {"type": "string"},
                "steps": {"type": "array", "items": {"$ref": "#/definitions/report.StepSummary"}},
                "strategy": {"type": "string"}
            }
        },
        "rest.CompareRequest": {
            "description": "request body untuk menjalankan beberapa strategy di problem yang sama",
            "type": "object",
            "properties": {
                "algorithm": {"type": "string"},
                "algorithms": {"type": "array", "items": {"type": "string"}},
                "avg_speed": {"type": "number"},
                "cost": {"type": "string"},
                "from": {"$ref": "#/definitions/rest.EndpointRequest"},
                "heuristic": {"type": "string"},
                "to": {"$ref": "#/definitions/rest.EndpointRequest"}
            }
        },
        "rest.CompareResponse": {
            "description": "response body compare, urutan sama dengan request",
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/report.Summary"}}
            }
        },
        "rest.EndpointRequest": {
            "description": "intersection id, atau koordinat yang di-snap ke intersection terdekat",
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "rest.ErrResponse": {
            "description": "model untuk error response",
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "error": {"type": "string"},
                "status": {"type": "string"},
                "validation": {"type": "array", "items": {"type": "string"}}
            }
        },
        "rest.FacilityRequest": {
            "description": "request body untuk facility location (penempatan station) pakai local search",
            "type": "object",
            "properties": {
                "algorithm": {"type": "string", "enum": ["rs", "hc", "ils", "ga", "sa"]},
                "network": {"type": "boolean"},
                "seed": {"type": "integer"},
                "stations": {"type": "integer", "minimum": 0}
            }
        },
        "rest.FacilityResponse": {
            "description": "response body facility location",
            "type": "object",
            "properties": {
                "algorithm": {"type": "string"},
                "elapsed_ms": {"type": "number"},
                "fitness": {"type": "number"},
                "fitness_time": {"type": "string"},
                "iterations": {"type": "integer"},
                "stations": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "rest.RouteRequest": {
            "description": "request body untuk route search antara 2 intersection",
            "type": "object",
            "properties": {
                "algorithm": {"type": "string"},
                "avg_speed": {"type": "number"},
                "cost": {"type": "string", "enum": ["time", "distance"]},
                "from": {"$ref": "#/definitions/rest.EndpointRequest"},
                "heuristic": {"type": "string", "enum": ["zero", "manhattan", "euclidean", "geodesic", "haversine"]},
                "to": {"$ref": "#/definitions/rest.EndpointRequest"}
            }
        },
        "rest.RouteResponse": {
            "description": "response body untuk route search",
            "type": "object",
            "properties": {
                "from_snap": {"$ref": "#/definitions/service.SnapInfo"},
                "result": {"$ref": "#/definitions/report.Summary"},
                "solution_cost_time": {"type": "string"},
                "to_snap": {"$ref": "#/definitions/service.SnapInfo"}
            }
        },
        "service.IntersectionInfo": {
            "type": "object",
            "properties": {
                "coordinate": {"$ref": "#/definitions/datastructure.Coordinate"},
                "id": {"type": "integer"},
                "neighbors": {"type": "array", "items": {"$ref": "#/definitions/service.Neighbor"}}
            }
        },
        "service.Neighbor": {
            "type": "object",
            "properties": {
                "distance": {"type": "number"},
                "id": {"type": "integer"},
                "speed": {"type": "number"},
                "street_name": {"type": "string"},
                "travel_time": {"type": "number"}
            }
        },
        "service.SnapInfo": {
            "type": "object",
            "properties": {
                "distance_m": {"type": "number"},
                "intersection": {"type": "integer"},
                "on_road": {"$ref": "#/definitions/datastructure.Coordinate"}
            }
        }
    }
}`

// SwaggerInfo info API, host bisa diganti dari cmd/server sebelum di-serve.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "routesearch API",
	Description:      "uninformed & informed search di road network",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
