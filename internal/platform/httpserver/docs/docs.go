// Package docs registers the OpenAPI document served at /swagger/doc.json.
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
        "/api/companies/register": {
            "post": {
                "tags": ["companies"],
                "summary": "Register a company pending admin verification"
            }
        },
        "/api/companies/{company_id}/verify": {
            "post": {
                "tags": ["companies"],
                "summary": "Approve or reject a company (admin)"
            }
        },
        "/api/internships": {
            "get": {
                "tags": ["internships"],
                "summary": "List internships with company and application counts"
            },
            "post": {
                "tags": ["internships"],
                "summary": "Post an internship (company)"
            }
        },
        "/api/internships/{internship_id}": {
            "get": {
                "tags": ["internships"],
                "summary": "Fetch a single internship"
            }
        },
        "/api/applications": {
            "get": {
                "tags": ["applications"],
                "summary": "List applications visible to the caller"
            },
            "post": {
                "tags": ["applications"],
                "summary": "Apply to an internship (student)"
            }
        },
        "/api/applications/{application_id}/status": {
            "patch": {
                "tags": ["applications"],
                "summary": "Decide an application (owning company or admin)"
            }
        },
        "/api/reviews": {
            "post": {
                "tags": ["reviews"],
                "summary": "Review a company after an accepted application"
            }
        },
        "/api/companies/{company_id}/rating": {
            "get": {
                "tags": ["reviews"],
                "summary": "Aggregate rating for a company"
            }
        },
        "/api/admin/stats": {
            "get": {
                "tags": ["admin"],
                "summary": "Marketplace dashboard statistics (admin)"
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "InternHub API",
	Description:      "Role-based internship marketplace backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
