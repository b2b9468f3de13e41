// Package docs holds the OpenAPI description of the viewer endpoints.
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
        "/api/attributions": {
            "get": {
                "description": "Fiscal-year responsibility range of every president from the anchor onward",
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Fiscal attribution ranges",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.AttributionsResponse"}
                    }
                }
            }
        },
        "/api/averages": {
            "get": {
                "description": "Mean deficit as percent of GDP per president, in order of first appearance",
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Per-administration averages",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.AveragesResponse"}
                    }
                }
            }
        },
        "/api/warnings": {
            "get": {
                "description": "Raw rows that were skipped or coerced while loading",
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Parse warnings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.WarningsResponse"}
                    }
                }
            }
        },
        "/api/years": {
            "get": {
                "description": "Deficit as percent of GDP for each fiscal year with the responsible president",
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Merged fiscal-year series",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.YearsResponse"}
                    }
                }
            }
        },
        "/chart.png": {
            "get": {
                "description": "Per-year deficits colored by administration above the per-administration averages",
                "produces": ["image/png"],
                "tags": ["chart"],
                "summary": "Deficit chart",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "file"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.AttributionsResponse": {
            "type": "object",
            "properties": {
                "attributions": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/models.FiscalAttribution"}
                }
            }
        },
        "models.AveragesResponse": {
            "type": "object",
            "properties": {
                "averages": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/models.PresidentAverage"}
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.FiscalAttribution": {
            "type": "object",
            "properties": {
                "end_fiscal_year_exclusive": {"type": "integer"},
                "president": {"type": "string"},
                "start_fiscal_year": {"type": "integer"}
            }
        },
        "models.MergedYearRecord": {
            "type": "object",
            "properties": {
                "deficit_pct_gdp": {"type": "number"},
                "fiscal_year": {"type": "integer"},
                "president": {"type": "string"}
            }
        },
        "models.PresidentAverage": {
            "type": "object",
            "properties": {
                "deficit_pct_gdp": {"type": "number"},
                "president": {"type": "string"},
                "years": {"type": "integer"}
            }
        },
        "models.Warning": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.WarningsResponse": {
            "type": "object",
            "properties": {
                "warnings": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/models.Warning"}
                }
            }
        },
        "models.YearsResponse": {
            "type": "object",
            "properties": {
                "cutoff_year": {"type": "integer"},
                "years": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/models.MergedYearRecord"}
                }
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
	Title:            "US budget deficits by administration",
	Description:      "Fiscal-year deficits as a percent of GDP attributed to the responsible president.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
